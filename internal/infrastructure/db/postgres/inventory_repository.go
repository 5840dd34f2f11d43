package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ADBranches/cse340/internal/core/domain"
)

// InventoryRepository implements ports.InventoryRepository on PostgreSQL.
type InventoryRepository struct {
	db DB
}

func NewInventoryRepository(db DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) GetVehicle(ctx context.Context, id int) (*domain.Vehicle, error) {
	query := `
		SELECT i.inv_id, i.classification_id, i.inv_make, i.inv_model, i.inv_description,
		       i.inv_image, i.inv_thumbnail, i.inv_price, i.inv_year, i.inv_miles, i.inv_color,
		       c.classification_name
		FROM public.inventory AS i
		JOIN public.classification AS c
		  ON i.classification_id = c.classification_id
		WHERE i.inv_id = $1
	`

	var v domain.Vehicle
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.ClassificationID, &v.Make, &v.Model, &v.Description,
		&v.Image, &v.Thumbnail, &v.Price, &v.Year, &v.Miles, &v.Color,
		&v.ClassificationName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return &v, nil
}

func (r *InventoryRepository) ListByClassification(ctx context.Context, classificationID int) ([]domain.Vehicle, error) {
	query := `
		SELECT inv_id, classification_id, inv_make, inv_model, inv_description,
		       inv_image, inv_thumbnail, inv_price, inv_year, inv_miles, inv_color
		FROM public.inventory
		WHERE classification_id = $1
		ORDER BY inv_make, inv_model
	`

	rows, err := r.db.Query(ctx, query, classificationID)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(
			&v.ID, &v.ClassificationID, &v.Make, &v.Model, &v.Description,
			&v.Image, &v.Thumbnail, &v.Price, &v.Year, &v.Miles, &v.Color,
		); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *InventoryRepository) GetClassification(ctx context.Context, id int) (*domain.Classification, error) {
	query := `
		SELECT classification_id, classification_name
		FROM public.classification
		WHERE classification_id = $1
	`

	var c domain.Classification
	if err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClassificationNotFound
		}
		return nil, fmt.Errorf("get classification: %w", err)
	}
	return &c, nil
}

func (r *InventoryRepository) ListClassifications(ctx context.Context) ([]domain.Classification, error) {
	query := `
		SELECT classification_id, classification_name
		FROM public.classification
		ORDER BY classification_name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list classifications: %w", err)
	}
	defer rows.Close()

	var classifications []domain.Classification
	for rows.Next() {
		var c domain.Classification
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan classification: %w", err)
		}
		classifications = append(classifications, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list classifications: %w", err)
	}
	return classifications, nil
}

func (r *InventoryRepository) AddClassification(ctx context.Context, name string) (*domain.Classification, error) {
	query := `
		INSERT INTO public.classification (classification_name)
		VALUES ($1)
		RETURNING classification_id, classification_name
	`

	var c domain.Classification
	if err := r.db.QueryRow(ctx, query, name).Scan(&c.ID, &c.Name); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrClassificationExists
		}
		return nil, fmt.Errorf("add classification: %w", err)
	}
	return &c, nil
}

func (r *InventoryRepository) AddVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	query := `
		INSERT INTO public.inventory (classification_id, inv_make, inv_model, inv_description,
		                              inv_image, inv_thumbnail, inv_price, inv_year, inv_miles, inv_color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING inv_id
	`

	created := *vehicle
	err := r.db.QueryRow(ctx, query,
		vehicle.ClassificationID, vehicle.Make, vehicle.Model, vehicle.Description,
		vehicle.Image, vehicle.Thumbnail, vehicle.Price, vehicle.Year, vehicle.Miles, vehicle.Color,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("add vehicle: %w", err)
	}
	return &created, nil
}
