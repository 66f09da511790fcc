package warehouse

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
)

// AmmoType identifies a kind of ammunition. Types of the same family with different
// rack sizes can be converted into one another.
type AmmoType struct {
	Name     string
	Family   string
	RackSize int
}

// IsCompatible reports whether other can stand in for t after conversion
func (t AmmoType) IsCompatible(other AmmoType) bool {
	return t.Family != "" && t.Family == other.Family && t.RackSize != other.RackSize &&
		t.RackSize > 0 && other.RackSize > 0
}

func (t AmmoType) String() string {
	return fmt.Sprintf("%s (%s/%d)", t.Name, t.Family, t.RackSize)
}

// Key identifies fungible stock
type Key struct {
	Type    string
	Quality shared.Rating
}

func (k Key) String() string {
	return fmt.Sprintf("%s[%s]", k.Type, k.Quality)
}

// Part is one stock entry. For ammunition Quantity counts shots.
type Part struct {
	ID            uuid.UUID
	Type          string
	Quality       shared.Rating
	Quantity      int
	UnitCost      int64
	Ammo          *AmmoType
	DaysToArrival int
}

// NewPart creates a spare part entry
func NewPart(partType string, quality shared.Rating, quantity int, unitCost int64) (*Part, error) {
	if partType == "" {
		return nil, shared.NewValidationError("type", "cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewValidationError("quantity", "must be positive")
	}
	if !quality.IsValid() {
		return nil, shared.NewValidationError("quality", "unknown rating")
	}
	return &Part{ID: uuid.New(), Type: partType, Quality: quality, Quantity: quantity, UnitCost: unitCost}, nil
}

// NewAmmoStorage creates an ammunition entry holding shots of ammoType
func NewAmmoStorage(ammoType AmmoType, quality shared.Rating, shots int) (*Part, error) {
	if ammoType.RackSize <= 0 {
		return nil, shared.NewValidationError("rack_size", "must be positive")
	}
	part, err := NewPart(ammoType.Name, quality, shots, 0)
	if err != nil {
		return nil, err
	}
	ammo := ammoType
	part.Ammo = &ammo
	return part, nil
}

// Key returns the merge key of the entry
func (p *Part) Key() Key {
	return Key{Type: p.Type, Quality: p.Quality}
}

// IsAmmo reports whether the entry is ammunition
func (p *Part) IsAmmo() bool {
	return p.Ammo != nil
}

// IsPresent reports whether the entry has arrived
func (p *Part) IsPresent() bool {
	return p.DaysToArrival <= 0
}

// Clone copies the entry with a new id and quantity
func (p *Part) Clone(quantity int) *Part {
	clone := *p
	clone.ID = uuid.New()
	clone.Quantity = quantity
	if p.Ammo != nil {
		ammo := *p.Ammo
		clone.Ammo = &ammo
	}
	return &clone
}

func (p *Part) String() string {
	return fmt.Sprintf("%s x%d", p.Key(), p.Quantity)
}
