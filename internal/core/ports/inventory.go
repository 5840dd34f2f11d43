package ports

import (
	"context"

	"github.com/ADBranches/cse340/internal/core/domain"
)

// InventoryRepository defines persistence for vehicles and classifications.
type InventoryRepository interface {
	GetVehicle(ctx context.Context, id int) (*domain.Vehicle, error)
	ListByClassification(ctx context.Context, classificationID int) ([]domain.Vehicle, error)
	GetClassification(ctx context.Context, id int) (*domain.Classification, error)
	ListClassifications(ctx context.Context) ([]domain.Classification, error)
	AddClassification(ctx context.Context, name string) (*domain.Classification, error)
	AddVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
}

// InventoryService exposes inventory browsing and staff management.
type InventoryService interface {
	GetVehicle(ctx context.Context, id int) (*domain.Vehicle, error)
	ListByClassification(ctx context.Context, classificationID int) (*domain.Classification, []domain.Vehicle, error)
	ListClassifications(ctx context.Context) ([]domain.Classification, error)
	AddClassification(ctx context.Context, name string) (*domain.Classification, error)
	AddVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
}
