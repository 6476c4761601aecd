package cli

import (
	"context"
	"fmt"

	"github.com/restevesd/arnes/config"
	"github.com/restevesd/arnes/internal/database"
	"github.com/restevesd/arnes/internal/estimator"
	"github.com/restevesd/arnes/internal/handlers"
	"github.com/restevesd/arnes/internal/modelserver"
	"github.com/restevesd/arnes/internal/repository"
	"github.com/restevesd/arnes/internal/services"
)

// backend is an estimator that can also describe its model
type backend interface {
	services.Estimator
	handlers.ModelDescriber
}

// newBackend picks the estimator the configuration asks for: a remote model server,
// a model stored in PostgreSQL, or a YAML artifact on disk. The returned cleanup
// releases any database pool.
func newBackend(ctx context.Context, cfg *config.Config) (backend, func(), error) {
	switch cfg.ModelBackend() {
	case "remote":
		return modelserver.NewClient(cfg.ModelServerURL), func() {}, nil
	case "postgres":
		db, err := database.New(ctx, cfg.PGURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		repo := repository.NewModelRepository(db.Pool)
		return estimator.NewModelEstimator(repo, cfg.ModelName, nil), db.Close, nil
	default:
		source := estimator.NewFileSource(cfg.ModelDir)
		return estimator.NewModelEstimator(source, cfg.ModelName, nil), func() {}, nil
	}
}
