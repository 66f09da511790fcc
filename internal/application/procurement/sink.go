package procurement

import (
	"github.com/andrescamacho/starlane-logistics/internal/domain/warehouse"
)

// QuartermasterSink ships deliveries into a quartermaster's in-transit queue
type QuartermasterSink struct {
	quartermaster *warehouse.Quartermaster
}

var _ DeliverySink = (*QuartermasterSink)(nil)

// NewQuartermasterSink creates a sink feeding quartermaster
func NewQuartermasterSink(quartermaster *warehouse.Quartermaster) *QuartermasterSink {
	return &QuartermasterSink{quartermaster: quartermaster}
}

// Receive converts the delivery payload into stock and queues it
func (s *QuartermasterSink) Receive(delivery Delivery) {
	part, err := PartFromDelivery(delivery)
	if err != nil {
		return
	}
	s.quartermaster.Deliver(part, delivery.TransitDays)
}

// PartFromDelivery builds the stock entry a delivery turns into
func PartFromDelivery(delivery Delivery) (*warehouse.Part, error) {
	payload := delivery.Payload
	units := payload.Units
	if units <= 0 {
		units = 1
	}
	partType := payload.PartType
	if partType == "" {
		partType = delivery.Name
	}

	if payload.IsAmmo() {
		return warehouse.NewAmmoStorage(warehouse.AmmoType{
			Name:     partType,
			Family:   payload.AmmoFamily,
			RackSize: payload.RackSize,
		}, payload.Quality, units)
	}
	return warehouse.NewPart(partType, payload.Quality, units, delivery.Cost/int64(units))
}
