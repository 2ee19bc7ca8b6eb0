package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhalloway/tripflow/internal/common"
	"github.com/jhalloway/tripflow/internal/model"
)

// TripRecord is one saved plan.
type TripRecord struct {
	CreatedAt         time.Time
	ID                string
	TripID            string
	TripType          string
	Strategy          string
	TotalBudget       string
	TotalCost         string
	TaxSavings        string
	RequestJSON       string
	ItineraryJSON     string
	DurationDays      int
	OptimizationScore float64
}

// Itinerary decodes the stored itinerary.
func (r *TripRecord) Itinerary() (*model.TripItinerary, error) {
	var itinerary model.TripItinerary
	if err := json.Unmarshal([]byte(r.ItineraryJSON), &itinerary); err != nil {
		return nil, fmt.Errorf("failed to decode stored itinerary: %w", err)
	}
	return &itinerary, nil
}

// SaveItinerary persists a planned trip and returns the record ID.
func (s *SQLiteStorage) SaveItinerary(ctx context.Context, req *model.TripRequest, strategy model.OptimizationStrategy, itinerary *model.TripItinerary) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}
	if itinerary == nil {
		return "", errors.New("itinerary cannot be nil")
	}

	requestJSON, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}
	itineraryJSON, err := json.Marshal(itinerary)
	if err != nil {
		return "", fmt.Errorf("failed to encode itinerary: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO trips (
			id, trip_id, trip_type, strategy,
			total_budget, total_cost, tax_savings,
			duration_days, optimization_score,
			request_json, itinerary_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		itinerary.TripID,
		string(itinerary.TripType),
		string(strategy),
		itinerary.TotalBudget.StringFixed(2),
		itinerary.TotalCost.StringFixed(2),
		itinerary.TaxSavings.StringFixed(2),
		itinerary.TotalDurationDays,
		itinerary.OptimizationScore,
		string(requestJSON),
		string(itineraryJSON),
	)
	if err != nil {
		return "", fmt.Errorf("failed to save itinerary: %w", err)
	}

	return id, nil
}

// ListTrips returns saved plans, newest first.
func (s *SQLiteStorage) ListTrips(ctx context.Context, limit int) ([]TripRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, trip_id, trip_type, strategy,
			total_budget, total_cost, tax_savings,
			duration_days, optimization_score,
			request_json, itinerary_json, created_at
		FROM trips
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []TripRecord
	for rows.Next() {
		record, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}

	return records, nil
}

// GetTrip fetches a single saved plan by record ID or trip ID.
func (s *SQLiteStorage) GetTrip(ctx context.Context, id string) (*TripRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, trip_id, trip_type, strategy,
			total_budget, total_cost, tax_savings,
			duration_days, optimization_score,
			request_json, itinerary_json, created_at
		FROM trips
		WHERE id = ? OR trip_id = ?
		ORDER BY created_at DESC
		LIMIT 1`, id, id)

	record, err := scanTrip(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("trip %q: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (TripRecord, error) {
	var record TripRecord
	err := row.Scan(
		&record.ID,
		&record.TripID,
		&record.TripType,
		&record.Strategy,
		&record.TotalBudget,
		&record.TotalCost,
		&record.TaxSavings,
		&record.DurationDays,
		&record.OptimizationScore,
		&record.RequestJSON,
		&record.ItineraryJSON,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TripRecord{}, err
		}
		return TripRecord{}, fmt.Errorf("failed to scan trip row: %w", err)
	}
	return record, nil
}
