package repository

import (
	"context"
	"fmt"

	"fablab-booking/internal/data/entity"
	"fablab-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type HallRepository interface {
	Create(ctx context.Context, hall *entity.Hall) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hall, error)
	FindAll(ctx context.Context, availableOnly bool) ([]*entity.Hall, error)
	Update(ctx context.Context, hall *entity.Hall) error
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
}

type hallRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHallRepository(db database.PgxIface, log *zap.Logger) HallRepository {
	return &hallRepository{
		db:  db,
		log: log.With(zap.String("repository", "hall")),
	}
}

const hallColumns = `id, name, description, capacity, equipment_included, images,
	hourly_rate, is_available, location, rules, booked_dates, created_at, updated_at`

func scanHall(row pgx.Row) (*entity.Hall, error) {
	var hall entity.Hall
	err := row.Scan(
		&hall.ID,
		&hall.Name,
		&hall.Description,
		&hall.Capacity,
		&hall.Equipment,
		&hall.Images,
		&hall.HourlyRate,
		&hall.IsAvailable,
		&hall.Location,
		&hall.Rules,
		&hall.BookedDates,
		&hall.CreatedAt,
		&hall.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &hall, nil
}

func (r *hallRepository) Create(ctx context.Context, hall *entity.Hall) error {
	query := `
		INSERT INTO halls (id, name, description, capacity, equipment_included, images,
			hourly_rate, is_available, location, rules, booked_dates, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		hall.ID,
		hall.Name,
		hall.Description,
		hall.Capacity,
		hall.Equipment,
		hall.Images,
		hall.HourlyRate,
		hall.IsAvailable,
		hall.Location,
		hall.Rules,
		hall.BookedDates,
		hall.CreatedAt,
		hall.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create hall",
			zap.Error(err),
			zap.String("name", hall.Name),
		)
		return fmt.Errorf("create hall %s: %w", hall.Name, err)
	}

	return nil
}

func (r *hallRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hall, error) {
	query := `SELECT ` + hallColumns + ` FROM halls WHERE id = $1`

	hall, err := scanHall(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hall by ID",
			zap.Error(err),
			zap.String("hall_id", id.String()),
		)
		return nil, fmt.Errorf("find hall by ID %s: %w", id.String(), err)
	}

	return hall, nil
}

func (r *hallRepository) FindAll(ctx context.Context, availableOnly bool) ([]*entity.Hall, error) {
	query := `SELECT ` + hallColumns + ` FROM halls`
	if availableOnly {
		query += ` WHERE is_available`
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list halls", zap.Error(err))
		return nil, fmt.Errorf("list halls: %w", err)
	}
	defer rows.Close()

	var halls []*entity.Hall
	for rows.Next() {
		hall, err := scanHall(rows)
		if err != nil {
			r.log.Error("Failed to scan hall row", zap.Error(err))
			return nil, fmt.Errorf("scan hall row: %w", err)
		}
		halls = append(halls, hall)
	}

	return halls, nil
}

func (r *hallRepository) Update(ctx context.Context, hall *entity.Hall) error {
	query := `
		UPDATE halls
		SET name = $2, description = $3, capacity = $4, equipment_included = $5,
		    images = $6, hourly_rate = $7, is_available = $8, location = $9,
		    rules = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		hall.ID,
		hall.Name,
		hall.Description,
		hall.Capacity,
		hall.Equipment,
		hall.Images,
		hall.HourlyRate,
		hall.IsAvailable,
		hall.Location,
		hall.Rules,
		hall.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update hall",
			zap.Error(err),
			zap.String("hall_id", hall.ID.String()),
		)
		return fmt.Errorf("update hall %s: %w", hall.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hall %s not found", hall.ID.String())
	}

	return nil
}

func (r *hallRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	query := `UPDATE halls SET is_available = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, available)
	if err != nil {
		r.log.Error("Failed to set hall availability",
			zap.Error(err),
			zap.String("hall_id", id.String()),
			zap.Bool("available", available),
		)
		return fmt.Errorf("set hall %s availability: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hall %s not found", id.String())
	}

	return nil
}
