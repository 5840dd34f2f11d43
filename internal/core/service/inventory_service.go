package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ADBranches/cse340/internal/core/domain"
	"github.com/ADBranches/cse340/internal/core/ports"
)

// InventoryService handles vehicle browsing and staff inventory management.
type InventoryService struct {
	repo   ports.InventoryRepository
	logger zerolog.Logger
}

func NewInventoryService(repo ports.InventoryRepository, logger zerolog.Logger) *InventoryService {
	return &InventoryService{repo: repo, logger: logger}
}

func (s *InventoryService) GetVehicle(ctx context.Context, id int) (*domain.Vehicle, error) {
	return s.repo.GetVehicle(ctx, id)
}

// ListByClassification returns the classification and its vehicles. The
// classification lookup doubles as the title source for the listing view.
func (s *InventoryService) ListByClassification(ctx context.Context, classificationID int) (*domain.Classification, []domain.Vehicle, error) {
	classification, err := s.repo.GetClassification(ctx, classificationID)
	if err != nil {
		return nil, nil, err
	}

	vehicles, err := s.repo.ListByClassification(ctx, classificationID)
	if err != nil {
		return nil, nil, err
	}

	return classification, vehicles, nil
}

func (s *InventoryService) ListClassifications(ctx context.Context) ([]domain.Classification, error) {
	return s.repo.ListClassifications(ctx)
}

func (s *InventoryService) AddClassification(ctx context.Context, name string) (*domain.Classification, error) {
	created, err := s.repo.AddClassification(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("classification", created.Name).Msg("classification added")
	return created, nil
}

func (s *InventoryService) AddVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	created, err := s.repo.AddVehicle(ctx, vehicle)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("inv_id", created.ID).
		Str("make", created.Make).
		Str("model", created.Model).
		Msg("vehicle added")
	return created, nil
}
