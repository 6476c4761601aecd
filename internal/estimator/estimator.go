package estimator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/restevesd/arnes/internal/cache"
	"github.com/restevesd/arnes/internal/models"
	"github.com/restevesd/arnes/internal/repository"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// loadTimeout bounds a shared model load once it no longer follows the caller's context
const loadTimeout = 30 * time.Second

// ModelSource loads a serialized regression model by resource name
type ModelSource interface {
	LoadModel(ctx context.Context, name string) (*models.RegressionModel, error)
	Describe() string
}

// ModelEstimator predicts boot sizes from a locally evaluated regression model.
// The model is loaded on first use and shared read-only afterwards. Concurrent
// first calls share a single load; a failed load is retried on the next call.
type ModelEstimator struct {
	source ModelSource
	name   string
	cache  *cache.ModelCache
	group  singleflight.Group
}

// NewModelEstimator creates a ModelEstimator for the named artifact
func NewModelEstimator(source ModelSource, name string, modelCache *cache.ModelCache) *ModelEstimator {
	if modelCache == nil {
		modelCache = cache.NewModelCache()
	}
	return &ModelEstimator{
		source: source,
		name:   name,
		cache:  modelCache,
	}
}

// Predict returns the estimated boot size for a harness size in cm
func (e *ModelEstimator) Predict(ctx context.Context, harnessSize float64) (float64, error) {
	m, err := e.Model(ctx)
	if err != nil {
		return 0, err
	}

	bootSize, err := m.Predict(harnessSize)
	if err != nil {
		return 0, &Error{Op: "estimator.predict", Kind: KindRejected, Resource: e.name, Err: err}
	}
	return bootSize, nil
}

// Warm loads the model ahead of the first prediction
func (e *ModelEstimator) Warm(ctx context.Context) error {
	_, err := e.Model(ctx)
	return err
}

// Model returns the loaded model, loading it if needed.
// The shared load is detached from the caller's cancellation, so a caller that gives up
// returns early without failing the others waiting on the same load.
func (e *ModelEstimator) Model(ctx context.Context) (*models.RegressionModel, error) {
	if m, ok := e.cache.Get(e.name); ok {
		return m, nil
	}

	ch := e.group.DoChan(e.name, func() (interface{}, error) {
		// Another caller may have finished loading while we waited on the group
		if m, ok := e.cache.Get(e.name); ok {
			return m, nil
		}

		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		m, err := e.source.LoadModel(loadCtx, e.name)
		if err != nil {
			return nil, e.loadError(err)
		}
		if err := m.Validate(); err != nil {
			return nil, &Error{Op: "estimator.load", Kind: KindCorrupt, Resource: e.name, Err: err}
		}

		e.cache.Set(e.name, m)
		log.WithFields(log.Fields{
			"model":  e.name,
			"source": e.source.Describe(),
		}).Infof("Loaded model %q (%s)", m.Name, m.Formula)
		return m, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*models.RegressionModel), nil
	case <-ctx.Done():
		return nil, &Error{Op: "estimator.load", Kind: KindUnavailable, Resource: e.name, Err: ctx.Err()}
	}
}

// Info reports the loaded model's metadata
func (e *ModelEstimator) Info(ctx context.Context) (*models.ModelInfoResponse, error) {
	m, err := e.Model(ctx)
	if err != nil {
		return nil, err
	}
	info := &models.ModelInfoResponse{
		Source:      e.source.Describe(),
		Name:        m.Name,
		Formula:     m.Formula,
		Feature:     m.Feature,
		Intercept:   m.Intercept,
		Coefficient: m.Coefficient,
		TrainedAt:   m.TrainedAt,
	}
	if loadedAt := e.cache.LoadedAt(e.name); !loadedAt.IsZero() {
		info.LoadedAt = &loadedAt
	}
	return info, nil
}

func (e *ModelEstimator) loadError(err error) error {
	var ee *Error
	if errors.As(err, &ee) {
		return err
	}
	if errors.Is(err, repository.ErrModelNotFound) {
		return &Error{Op: "estimator.load", Kind: KindNotFound, Resource: e.name, Err: err}
	}
	return &Error{Op: "estimator.load", Kind: KindUnavailable, Resource: e.name, Err: fmt.Errorf("failed to load from %s: %w", e.source.Describe(), err)}
}
