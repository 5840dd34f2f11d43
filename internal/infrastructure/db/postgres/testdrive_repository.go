package postgres

import (
	"context"
	"fmt"

	"github.com/ADBranches/cse340/internal/core/domain"
)

// TestDriveRepository implements ports.TestDriveRepository on PostgreSQL.
type TestDriveRepository struct {
	db DB
}

func NewTestDriveRepository(db DB) *TestDriveRepository {
	return &TestDriveRepository{db: db}
}

func (r *TestDriveRepository) Create(ctx context.Context, request *domain.TestDriveRequest) (*domain.TestDriveRequest, error) {
	query := `
		INSERT INTO public.testdrive_request (inv_id, account_id, preferred_date, preferred_time, contact_phone, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING testdrive_id, inv_id, account_id, preferred_date, preferred_time, contact_phone, message, status, created_at
	`

	var created domain.TestDriveRequest
	err := r.db.QueryRow(ctx, query,
		request.VehicleID, request.AccountID, request.PreferredDate,
		request.PreferredTime, request.ContactPhone, request.Message,
	).Scan(
		&created.ID, &created.VehicleID, &created.AccountID, &created.PreferredDate,
		&created.PreferredTime, &created.ContactPhone, &created.Message,
		&created.Status, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create test drive request: %w", err)
	}
	return &created, nil
}

// ListAll joins vehicle and account fields for the staff management view.
func (r *TestDriveRepository) ListAll(ctx context.Context) ([]domain.TestDriveSummary, error) {
	query := `
		SELECT t.testdrive_id, t.inv_id, t.account_id, t.preferred_date, t.preferred_time,
		       t.contact_phone, t.message, t.status, t.created_at,
		       i.inv_make, i.inv_model, i.inv_year, i.inv_image,
		       a.account_firstname, a.account_lastname, a.account_email
		FROM public.testdrive_request AS t
		JOIN public.inventory AS i ON t.inv_id = i.inv_id
		JOIN public.account AS a ON t.account_id = a.account_id
		ORDER BY t.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list test drive requests: %w", err)
	}
	defer rows.Close()

	var requests []domain.TestDriveSummary
	for rows.Next() {
		var s domain.TestDriveSummary
		if err := rows.Scan(
			&s.ID, &s.VehicleID, &s.AccountID, &s.PreferredDate, &s.PreferredTime,
			&s.ContactPhone, &s.Message, &s.Status, &s.CreatedAt,
			&s.VehicleMake, &s.VehicleModel, &s.VehicleYear, &s.VehicleImage,
			&s.FirstName, &s.LastName, &s.Email,
		); err != nil {
			return nil, fmt.Errorf("scan test drive request: %w", err)
		}
		requests = append(requests, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list test drive requests: %w", err)
	}
	return requests, nil
}

// ListByAccount returns one user's requests with vehicle display fields.
func (r *TestDriveRepository) ListByAccount(ctx context.Context, accountID int) ([]domain.TestDriveSummary, error) {
	query := `
		SELECT t.testdrive_id, t.inv_id, t.account_id, t.preferred_date, t.preferred_time,
		       t.contact_phone, t.message, t.status, t.created_at,
		       i.inv_make, i.inv_model, i.inv_year, i.inv_image
		FROM public.testdrive_request AS t
		JOIN public.inventory AS i ON t.inv_id = i.inv_id
		WHERE t.account_id = $1
		ORDER BY t.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list test drive requests: %w", err)
	}
	defer rows.Close()

	var requests []domain.TestDriveSummary
	for rows.Next() {
		var s domain.TestDriveSummary
		if err := rows.Scan(
			&s.ID, &s.VehicleID, &s.AccountID, &s.PreferredDate, &s.PreferredTime,
			&s.ContactPhone, &s.Message, &s.Status, &s.CreatedAt,
			&s.VehicleMake, &s.VehicleModel, &s.VehicleYear, &s.VehicleImage,
		); err != nil {
			return nil, fmt.Errorf("scan test drive request: %w", err)
		}
		requests = append(requests, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list test drive requests: %w", err)
	}
	return requests, nil
}

func (r *TestDriveRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `
		UPDATE public.testdrive_request
		SET status = $1
		WHERE testdrive_id = $2
	`

	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update test drive status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTestDriveNotFound
	}
	return nil
}
