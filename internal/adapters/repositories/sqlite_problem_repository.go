package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"ride-route-service/internal/domain"
)

// SQLite-backed implementation of the ProblemRepository port.
// Problems are stored as JSON payloads in the external wire shape, so seeds
// and API captures can be loaded interchangeably.
type SqliteProblemRepository struct{ DB *sql.DB }

func NewSqliteProblemRepository(db *sql.DB) *SqliteProblemRepository {
	return &SqliteProblemRepository{DB: db}
}

type problemRecord struct {
	Driver     [2]float64        `json:"driver"`
	Passengers []passengerRecord `json:"passengers"`
}

type passengerRecord struct {
	Pickup         [2]float64 `json:"pickup"`
	Dropoff        [2]float64 `json:"dropoff"`
	Name           string     `json:"name,omitempty"`
	PickupAddress  string     `json:"pickup_address,omitempty"`
	DropoffAddress string     `json:"dropoff_address,omitempty"`
}

func toProblemRecord(p domain.Problem) problemRecord {
	rec := problemRecord{
		Driver:     [2]float64{p.Driver.Lon, p.Driver.Lat},
		Passengers: make([]passengerRecord, 0, len(p.Passengers)),
	}
	for _, pass := range p.Passengers {
		rec.Passengers = append(rec.Passengers, passengerRecord{
			Pickup:         [2]float64{pass.Pickup.Lon, pass.Pickup.Lat},
			Dropoff:        [2]float64{pass.Dropoff.Lon, pass.Dropoff.Lat},
			Name:           pass.Name,
			PickupAddress:  pass.PickupAddress,
			DropoffAddress: pass.DropoffAddress,
		})
	}
	return rec
}

func (r problemRecord) toDomain() domain.Problem {
	p := domain.Problem{
		Driver:     domain.Coordinates{Lon: r.Driver[0], Lat: r.Driver[1]},
		Passengers: make([]domain.Passenger, 0, len(r.Passengers)),
	}
	for _, pass := range r.Passengers {
		p.Passengers = append(p.Passengers, domain.Passenger{
			Pickup:         domain.Coordinates{Lon: pass.Pickup[0], Lat: pass.Pickup[1]},
			Dropoff:        domain.Coordinates{Lon: pass.Dropoff[0], Lat: pass.Dropoff[1]},
			Name:           pass.Name,
			PickupAddress:  pass.PickupAddress,
			DropoffAddress: pass.DropoffAddress,
		})
	}
	return p
}

// Store a problem and return its assigned id.
func (s *SqliteProblemRepository) SaveProblem(ctx context.Context, problem domain.Problem) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("sqlite problem repository: DB is nil")
	}

	payload, err := json.Marshal(toProblemRecord(problem))
	if err != nil {
		return 0, fmt.Errorf("save problem: marshal payload: %w", err)
	}

	res, err := s.DB.ExecContext(ctx, `INSERT INTO problems (payload) VALUES (?);`, payload)
	if err != nil {
		return 0, fmt.Errorf("save problem: insert: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("save problem: last insert id: %w", err)
	}
	return id, nil
}

// Return all stored problems in insertion order.
func (s *SqliteProblemRepository) ListProblems(ctx context.Context) ([]domain.StoredProblem, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite problem repository: DB is nil")
	}

	query := `
	SELECT
		problem_id,
		payload
	FROM problems
	ORDER BY problem_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list problems: query problems table: %w", err)
	}
	defer rows.Close()

	problems := make([]domain.StoredProblem, 0, 16)
	for rows.Next() {
		var id int64
		var payload []byte
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("list problems: scan row: %w", err)
		}

		var rec problemRecord
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("list problems: parse payload for id=%d: %w", id, err)
		}

		problems = append(problems, domain.StoredProblem{ID: id, Problem: rec.toDomain()})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list problems: row iteration: %w", err)
	}

	return problems, nil
}
