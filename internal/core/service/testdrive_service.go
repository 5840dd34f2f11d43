package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ADBranches/cse340/internal/core/domain"
	"github.com/ADBranches/cse340/internal/core/ports"
)

// TestDriveService handles test-drive request submission and management.
type TestDriveService struct {
	repo   ports.TestDriveRepository
	logger zerolog.Logger
}

func NewTestDriveService(repo ports.TestDriveRepository, logger zerolog.Logger) *TestDriveService {
	return &TestDriveService{repo: repo, logger: logger}
}

// Request creates a pending request. preferredDate has already passed the
// ISO-date shape check in validation.
func (s *TestDriveService) Request(ctx context.Context, vehicleID, accountID int, preferredDate, preferredTime, phone, message string) (*domain.TestDriveRequest, error) {
	date, err := time.Parse("2006-01-02", preferredDate)
	if err != nil {
		return nil, fmt.Errorf("parse preferred date %q: %w", preferredDate, err)
	}

	created, err := s.repo.Create(ctx, &domain.TestDriveRequest{
		VehicleID:     vehicleID,
		AccountID:     accountID,
		PreferredDate: date,
		PreferredTime: preferredTime,
		ContactPhone:  phone,
		Message:       message,
		Status:        domain.TestDrivePending,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("testdrive_id", created.ID).
		Int("inv_id", vehicleID).
		Int("account_id", accountID).
		Msg("test drive requested")
	return created, nil
}

func (s *TestDriveService) ListAll(ctx context.Context) ([]domain.TestDriveSummary, error) {
	return s.repo.ListAll(ctx)
}

func (s *TestDriveService) ListByAccount(ctx context.Context, accountID int) ([]domain.TestDriveSummary, error) {
	return s.repo.ListByAccount(ctx, accountID)
}

// UpdateStatus moves a request to a new status (Pending -> Confirmed, ...).
func (s *TestDriveService) UpdateStatus(ctx context.Context, id int, status string) error {
	if !domain.ValidTestDriveStatus(status) {
		return domain.ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
