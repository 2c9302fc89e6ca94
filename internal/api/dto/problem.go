package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"ride-route-service/internal/domain"
)

// ErrMalformedLocation rejects a whole problem when any coordinate pair is
// missing or malformed; a silently skipped node would break index alignment.
var ErrMalformedLocation = errors.New("malformed location")

// Location is a wire coordinate pair. Order matters: [longitude, latitude].
type Location [2]float64

func (l *Location) UnmarshalJSON(b []byte) error {
	var raw []float64
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedLocation, err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("%w: expected [lon, lat], got %d elements", ErrMalformedLocation, len(raw))
	}
	for _, v := range raw {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite coordinate", ErrMalformedLocation)
		}
	}
	l[0], l[1] = raw[0], raw[1]
	return nil
}

func (l Location) toDomain() domain.Coordinates {
	return domain.Coordinates{Lon: l[0], Lat: l[1]}
}

func locationFromDomain(c domain.Coordinates) Location {
	return Location{c.Lon, c.Lat}
}

type Passenger struct {
	Pickup         *Location `json:"pickup"`
	Dropoff        *Location `json:"dropoff"`
	Name           string    `json:"name,omitempty"`
	PickupAddress  string    `json:"pickup_address,omitempty"`
	DropoffAddress string    `json:"dropoff_address,omitempty"`
}

type Problem struct {
	Driver     Location    `json:"driver"`
	Passengers []Passenger `json:"passengers"`
}

type SolveRequest struct {
	Problem
	Strategy string `json:"strategy,omitempty"`
}

// ToDomain validates the wire problem and converts it.
// A passenger with a missing pickup or dropoff fails the whole request.
func (p Problem) ToDomain() (domain.Problem, error) {
	out := domain.Problem{
		Driver:     p.Driver.toDomain(),
		Passengers: make([]domain.Passenger, 0, len(p.Passengers)),
	}

	for i, pass := range p.Passengers {
		if pass.Pickup == nil {
			return domain.Problem{}, fmt.Errorf("%w: passenger %d has no pickup", ErrMalformedLocation, i)
		}
		if pass.Dropoff == nil {
			return domain.Problem{}, fmt.Errorf("%w: passenger %d has no dropoff", ErrMalformedLocation, i)
		}
		out.Passengers = append(out.Passengers, domain.Passenger{
			Pickup:         pass.Pickup.toDomain(),
			Dropoff:        pass.Dropoff.toDomain(),
			Name:           pass.Name,
			PickupAddress:  pass.PickupAddress,
			DropoffAddress: pass.DropoffAddress,
		})
	}

	return out, nil
}

// ProblemFromDomain converts a domain problem to its wire shape.
func ProblemFromDomain(p domain.Problem) Problem {
	out := Problem{
		Driver:     locationFromDomain(p.Driver),
		Passengers: make([]Passenger, 0, len(p.Passengers)),
	}
	for _, pass := range p.Passengers {
		pickup := locationFromDomain(pass.Pickup)
		dropoff := locationFromDomain(pass.Dropoff)
		out.Passengers = append(out.Passengers, Passenger{
			Pickup:         &pickup,
			Dropoff:        &dropoff,
			Name:           pass.Name,
			PickupAddress:  pass.PickupAddress,
			DropoffAddress: pass.DropoffAddress,
		})
	}
	return out
}

type StoredProblem struct {
	ID int64 `json:"id"`
	Problem
}

type ListProblemsResponse struct {
	Problems []StoredProblem `json:"problems"`
}
