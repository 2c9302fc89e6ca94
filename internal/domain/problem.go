package domain

// Represents a rider with a paired pickup and dropoff point.
// Name and addresses are display metadata only; planning never reads them.
type Passenger struct {
	Pickup         Coordinates
	Dropoff        Coordinates
	Name           string
	PickupAddress  string
	DropoffAddress string
}

// A single-vehicle ride-share planning request: the driver's current
// position plus the passengers to pick up and drop off.
//
// A Problem is immutable during planning. The driver always flattens to
// node index 0.
type Problem struct {
	Driver     Coordinates
	Passengers []Passenger
}

// Number of nodes the problem flattens to: driver + pickup/dropoff per passenger.
func (p Problem) NodeCount() int { return 1 + 2*len(p.Passengers) }

// A persisted planning problem with its storage identity.
type StoredProblem struct {
	ID      int64
	Problem Problem
}
