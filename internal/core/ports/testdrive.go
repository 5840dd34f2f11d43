package ports

import (
	"context"

	"github.com/ADBranches/cse340/internal/core/domain"
)

// TestDriveRepository defines persistence for test-drive requests.
type TestDriveRepository interface {
	Create(ctx context.Context, request *domain.TestDriveRequest) (*domain.TestDriveRequest, error)
	ListAll(ctx context.Context) ([]domain.TestDriveSummary, error)
	ListByAccount(ctx context.Context, accountID int) ([]domain.TestDriveSummary, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

// TestDriveService exposes request submission and staff management.
type TestDriveService interface {
	// Request creates a pending test-drive request for the given account.
	// preferredDate must be an ISO date (2006-01-02); validation guarantees
	// the shape before the service runs.
	Request(ctx context.Context, vehicleID, accountID int, preferredDate, preferredTime, phone, message string) (*domain.TestDriveRequest, error)
	ListAll(ctx context.Context) ([]domain.TestDriveSummary, error)
	ListByAccount(ctx context.Context, accountID int) ([]domain.TestDriveSummary, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}
