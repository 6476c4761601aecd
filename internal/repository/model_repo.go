package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/restevesd/arnes/internal/models"
)

var ErrModelNotFound = errors.New("model not found")

// ModelRepository reads trained regression models from PostgreSQL
type ModelRepository struct {
	pool *pgxpool.Pool
}

// NewModelRepository creates a new ModelRepository
func NewModelRepository(pool *pgxpool.Pool) *ModelRepository {
	return &ModelRepository{pool: pool}
}

// Describe names the source for logs and the model info endpoint
func (r *ModelRepository) Describe() string {
	return "postgres:boot_size_model"
}

// GetByName retrieves a model artifact by name
func (r *ModelRepository) GetByName(ctx context.Context, name string) (*models.RegressionModel, error) {
	query := `
		SELECT name, formula, feature, intercept, coefficient, min_input, max_input, trained_at
		FROM boot_size_model
		WHERE name = $1
	`
	m := &models.RegressionModel{}
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&m.Name, &m.Formula, &m.Feature, &m.Intercept, &m.Coefficient, &m.MinInput, &m.MaxInput, &m.TrainedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get model: %w", err)
	}
	return m, nil
}

// LoadModel satisfies the estimator's model source contract
func (r *ModelRepository) LoadModel(ctx context.Context, name string) (*models.RegressionModel, error) {
	return r.GetByName(ctx, name)
}
