package warehouse

import (
	"fmt"

	"github.com/andrescamacho/starlane-logistics/internal/domain/finance"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/pkg/utils"
)

// Options configure stock substitution
type Options struct {
	// UseAmmoByType allows compatible ammunition of another rack size to be converted
	UseAmmoByType bool
}

// Conversion records shots drawn from a compatible ammunition entry
type Conversion struct {
	From       AmmoType
	Consumed   int
	Equivalent int
}

// Withdrawal is the detailed result of removing ammunition
type Withdrawal struct {
	Requested   int
	Delivered   int
	FromExact   int
	Conversions []Conversion

	// Surplus is converted shots returned to stock as the requested type
	Surplus int

	// Loss is the rounds consumed but too few to make one more shot. Always less
	// than one rack of the requested type.
	Loss int
}

// Shortfall returns how many requested shots could not be supplied
func (w Withdrawal) Shortfall() int {
	return w.Requested - w.Delivered
}

// Quartermaster manages the warehouse, stock in transit and purchases
type Quartermaster struct {
	warehouse *Warehouse
	funds     finance.Funds
	options   Options
	inTransit []*Part
}

// NewQuartermaster creates a quartermaster over warehouse. funds may be nil when
// buying and selling are not used.
func NewQuartermaster(warehouse *Warehouse, funds finance.Funds, options Options) *Quartermaster {
	if warehouse == nil {
		warehouse = NewWarehouse()
	}
	return &Quartermaster{warehouse: warehouse, funds: funds, options: options}
}

// Warehouse returns the stock on hand
func (q *Quartermaster) Warehouse() *Warehouse {
	return q.warehouse
}

// InTransit returns shipments that have not arrived yet
func (q *Quartermaster) InTransit() []*Part {
	return append([]*Part(nil), q.inTransit...)
}

// AddPart stores part, merging it with an identical (type, quality) entry
func (q *Quartermaster) AddPart(part *Part) *Part {
	return q.warehouse.Add(part)
}

// RemovePart takes quantity of (partType, quality) from stock
func (q *Quartermaster) RemovePart(partType string, quality shared.Rating, quantity int) error {
	return q.warehouse.Remove(Key{Type: partType, Quality: quality}, quantity)
}

// AddAmmo stores shots of ammoType
func (q *Quartermaster) AddAmmo(ammoType AmmoType, quality shared.Rating, shots int) (*Part, error) {
	storage, err := NewAmmoStorage(ammoType, quality, shots)
	if err != nil {
		return nil, err
	}
	return q.warehouse.Add(storage), nil
}

// AmmoAvailable returns the shots of ammoType obtainable right now, counting
// convertible stock when substitution is enabled
func (q *Quartermaster) AmmoAvailable(ammoType AmmoType) int {
	total := 0
	for _, entry := range q.warehouse.ammoEntries(func(t AmmoType) bool { return t.Name == ammoType.Name }) {
		total += entry.Quantity
	}
	if !q.options.UseAmmoByType {
		return total
	}
	rounds := 0
	for _, entry := range q.warehouse.ammoEntries(ammoType.IsCompatible) {
		rounds += entry.Quantity * entry.Ammo.RackSize
	}
	if ammoType.RackSize <= 0 {
		return total
	}
	return total + utils.FloorDiv(rounds, ammoType.RackSize)
}

// RemoveAmmo withdraws up to shotsNeeded shots of ammoType and returns how many were supplied
func (q *Quartermaster) RemoveAmmo(ammoType AmmoType, shotsNeeded int) int {
	return q.WithdrawAmmo(ammoType, shotsNeeded).Delivered
}

// WithdrawAmmo drains exact stock first, then converts compatible stock in stock
// order. Rounds left over from one entry count towards the next, so rounding loses
// less than one ammoType rack over the whole withdrawal. Converted shots beyond the
// request go back into stock as ammoType.
func (q *Quartermaster) WithdrawAmmo(ammoType AmmoType, shotsNeeded int) Withdrawal {
	result := Withdrawal{Requested: shotsNeeded}
	if shotsNeeded <= 0 {
		return result
	}
	remaining := shotsNeeded

	for _, entry := range q.warehouse.ammoEntries(func(t AmmoType) bool { return t.Name == ammoType.Name }) {
		if remaining == 0 {
			break
		}
		taken := utils.Min(entry.Quantity, remaining)
		q.warehouse.take(entry, taken)
		remaining -= taken
		result.FromExact += taken
	}

	if remaining > 0 && q.options.UseAmmoByType && ammoType.RackSize > 0 {
		var surplusQuality shared.Rating
		carry := 0
		for _, entry := range q.warehouse.ammoEntries(ammoType.IsCompatible) {
			if remaining == 0 {
				break
			}
			conversion, leftover := convert(entry, ammoType, remaining, carry)
			if conversion.Consumed == 0 {
				continue
			}
			q.warehouse.take(entry, conversion.Consumed)
			result.Conversions = append(result.Conversions, conversion)
			carry = leftover

			if conversion.Equivalent > remaining {
				result.Surplus += conversion.Equivalent - remaining
				surplusQuality = entry.Quality
				remaining = 0
			} else {
				remaining -= conversion.Equivalent
			}
		}
		result.Loss = carry
		if result.Surplus > 0 {
			if storage, err := NewAmmoStorage(ammoType, surplusQuality, result.Surplus); err == nil {
				q.warehouse.Add(storage)
			}
		}
	}

	result.Delivered = shotsNeeded - remaining
	return result
}

// convert works out how much of entry to consume towards need shots of target, given
// carry rounds already freed by earlier entries. It returns the rounds left over.
// When entry cannot cover need, only the shots that make whole target shots are taken.
func convert(entry *Part, target AmmoType, need, carry int) (Conversion, int) {
	from := *entry.Ammo
	rFrom, rTo := from.RackSize, target.RackSize

	consumed := utils.CeilDiv(need*rTo-carry, rFrom)
	if consumed > entry.Quantity {
		equivalent := utils.FloorDiv(entry.Quantity*rFrom+carry, rTo)
		if equivalent == 0 {
			return Conversion{From: from}, carry
		}
		consumed = utils.CeilDiv(equivalent*rTo-carry, rFrom)
	}
	rounds := consumed*rFrom + carry
	equivalent := rounds / rTo
	return Conversion{From: from, Consumed: consumed, Equivalent: equivalent}, rounds - equivalent*rTo
}

// BuyPart pays cost and ships part, arriving after transitDays. It reports false
// when the purchase cannot be paid for.
func (q *Quartermaster) BuyPart(part *Part, cost int64, transitDays int) bool {
	if part == nil || q.funds == nil {
		return false
	}
	if !q.funds.CanAfford(cost) {
		return false
	}
	description := fmt.Sprintf("Purchase of %s", part)
	if err := q.funds.Debit(cost, finance.TransactionTypePartPurchase, description, part.ID.String()); err != nil {
		return false
	}
	q.Deliver(part, transitDays)
	return true
}

// SellPart removes quantity of (partType, quality) and credits unitPrice for each
func (q *Quartermaster) SellPart(partType string, quality shared.Rating, quantity int, unitPrice int64) bool {
	if q.funds == nil || unitPrice < 0 {
		return false
	}
	key := Key{Type: partType, Quality: quality}
	entry := q.warehouse.Find(key)
	if entry == nil {
		return false
	}
	relatedID := entry.ID.String()
	if err := q.warehouse.Remove(key, quantity); err != nil {
		return false
	}
	description := fmt.Sprintf("Sale of %d %s", quantity, key)
	return q.funds.Credit(unitPrice*int64(quantity), finance.TransactionTypePartSale, description, relatedID) == nil
}

// Deliver queues part to arrive in transitDays; non-positive transit stores it at once
func (q *Quartermaster) Deliver(part *Part, transitDays int) {
	if part == nil || part.Quantity <= 0 {
		return
	}
	if transitDays <= 0 {
		q.warehouse.Add(part)
		return
	}
	part.DaysToArrival = transitDays
	q.inTransit = append(q.inTransit, part)
}

// AdvanceDay moves shipments one day closer and stocks the ones that arrive
func (q *Quartermaster) AdvanceDay() []*Part {
	var arrived []*Part
	pending := q.inTransit[:0]
	for _, part := range q.inTransit {
		part.DaysToArrival--
		if part.DaysToArrival <= 0 {
			arrived = append(arrived, part)
			continue
		}
		pending = append(pending, part)
	}
	q.inTransit = pending
	for _, part := range arrived {
		q.warehouse.Add(part)
	}
	return arrived
}
