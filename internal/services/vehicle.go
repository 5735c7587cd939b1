package services

import (
	"context"
	"time"

	"goa.design/clue/log"

	"fortiercars/internal/database"
	"fortiercars/internal/domain"
	"fortiercars/internal/metrics"
)

// VehicleService implements the vehicle catalog.
type VehicleService struct {
	store *database.Store
	now   func() time.Time
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(store *database.Store, now func() time.Time) *VehicleService {
	return &VehicleService{store: store, now: now}
}

// List returns catalog entries, newest first.
func (s *VehicleService) List(ctx context.Context, p *domain.VehicleListParams) ([]domain.Vehicle, error) {
	filter := database.Filter{}
	if p.Category != nil {
		filter["category"] = string(*p.Category)
	}
	if p.AvailableOnly {
		filter["is_available"] = true
	}
	if p.FeaturedOnly {
		filter["is_featured"] = true
	}

	recs, err := s.store.Vehicles.Find(ctx, database.Query{
		Filter: filter,
		Sort:   database.Sort{Field: "created_at", Desc: true},
		Limit:  listLimit(p.Limit, DefaultListLimit),
	})
	if err != nil {
		return nil, Internal(ctx, "Failed to retrieve vehicles", err)
	}
	return recs, nil
}

// Get returns one vehicle by id.
func (s *VehicleService) Get(ctx context.Context, id string) (*domain.Vehicle, error) {
	rec, err := s.store.Vehicles.FindOne(ctx, database.Filter{"id": id})
	if err != nil {
		return nil, storageError(ctx, err, "Vehicle not found", "Failed to retrieve vehicle")
	}
	return rec, nil
}

// Create adds an available vehicle to the catalog.
func (s *VehicleService) Create(ctx context.Context, p *domain.VehicleCreate) (*domain.Vehicle, error) {
	if err := domain.Validate(p); err != nil {
		log.Printf(ctx, "[VEHICLE] Create failed: validation error: %v", err)
		return nil, err
	}

	rec := domain.NewVehicle(p, s.now())
	if err := s.store.Vehicles.Insert(ctx, rec); err != nil {
		return nil, Internal(ctx, "Failed to create vehicle", err)
	}

	log.Printf(ctx, "[VEHICLE] Create successful: id=%s, %d %s %s", rec.ID, rec.Year, rec.Brand, rec.Model)
	metrics.RecordVehicleCreated(string(rec.Category))
	return rec, nil
}

// Update edits a catalog entry. Absent fields keep their stored value and updated_at moves only
// when something changes.
func (s *VehicleService) Update(ctx context.Context, id string, p *domain.VehicleUpdate) (*domain.Vehicle, error) {
	if err := domain.Validate(p); err != nil {
		return nil, err
	}

	rec, err := s.store.Vehicles.FindOneAndUpdate(ctx, database.Filter{"id": id}, p.Fields(s.now()))
	if err != nil {
		return nil, storageError(ctx, err, "Vehicle not found", "Failed to update vehicle")
	}

	log.Printf(ctx, "[VEHICLE] Update successful: id=%s", rec.ID)
	return rec, nil
}
