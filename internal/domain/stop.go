package domain

// Semantic role of a node in the flattened location list.
type StopType string

const (
	StopDriver  StopType = "driver"
	StopPickup  StopType = "pickup"
	StopDropoff StopType = "dropoff"
	StopUnknown StopType = "unknown"
)

// A node of the flattened problem. Index addresses the distance matrix row;
// the type and owning passenger are resolved once at flattening time so no
// later stage has to re-derive a role from raw coordinates.
type Stop struct {
	Index     int
	Location  Coordinates
	Type      StopType
	Passenger int // passenger ordinal owning this stop; -1 for the driver
}

// Pickup/dropoff node indices derived 1:1 from a passenger.
// Pickup < Dropoff always holds under the flattening order.
type PickupDeliveryPair struct {
	Pickup  int
	Dropoff int
}

// Planned visitation order. Stops[0] is always the driver node.
type Route struct {
	Stops           []Stop
	Locations       []Stop // all N flattened nodes in index order
	TotalDistanceKm float64
}

// Flatten expands a Problem into its node list and pickup/delivery pairs.
// Order is deterministic: index 0 is the driver, then for each passenger in
// input order its pickup followed by its dropoff.
func Flatten(p Problem) ([]Stop, []PickupDeliveryPair) {
	stops := make([]Stop, 0, p.NodeCount())
	stops = append(stops, Stop{Index: 0, Location: p.Driver, Type: StopDriver, Passenger: -1})

	pairs := make([]PickupDeliveryPair, 0, len(p.Passengers))
	for i, pass := range p.Passengers {
		pickupIdx := len(stops)
		stops = append(stops, Stop{Index: pickupIdx, Location: pass.Pickup, Type: StopPickup, Passenger: i})

		dropoffIdx := len(stops)
		stops = append(stops, Stop{Index: dropoffIdx, Location: pass.Dropoff, Type: StopDropoff, Passenger: i})

		pairs = append(pairs, PickupDeliveryPair{Pickup: pickupIdx, Dropoff: dropoffIdx})
	}

	return stops, pairs
}
