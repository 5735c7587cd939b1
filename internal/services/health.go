package services

import (
	"context"

	"goa.design/clue/log"

	"fortiercars/internal/database"
	"fortiercars/internal/domain"
)

// HealthService implements the health and status checks
type HealthService struct {
	store   *database.Store
	service string
}

// NewHealthService creates a new health service
func NewHealthService(store *database.Store, service string) *HealthService {
	return &HealthService{store: store, service: service}
}

// Status implements the API root status method
func (s *HealthService) Status(ctx context.Context) (*domain.APIStatus, error) {
	return &domain.APIStatus{
		Message: s.service,
		Status:  "operational",
	}, nil
}

// Check implements the health check method. A failed ping reports the database as unavailable
// rather than failing the request.
func (s *HealthService) Check(ctx context.Context) (*domain.Health, error) {
	res := &domain.Health{
		Status:   "healthy",
		Service:  s.service,
		Database: "connected",
	}
	if err := s.store.Ping(ctx); err != nil {
		log.Errorf(ctx, err, "[HEALTH] Database ping failed")
		res.Status = "degraded"
		res.Database = "unavailable"
		return res, nil
	}
	if _, err := database.RecordPoolStats(s.store.DB()); err != nil {
		log.Errorf(ctx, err, "[HEALTH] Failed to read pool stats")
	}
	return res, nil
}
