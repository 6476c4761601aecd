package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/restevesd/arnes/internal/models"
	log "github.com/sirupsen/logrus"
)

const (
	// MaxHarnessSize is the largest accepted harness measurement, in cm
	MaxHarnessSize = 100.0
)

// Estimator maps a harness size in cm to a predicted boot size
type Estimator interface {
	Predict(ctx context.Context, harnessSize float64) (float64, error)
}

// ValidatedInput holds user input that passed validation
type ValidatedInput struct {
	HarnessSize float64
	BootSize    float64
}

// AdvisorService compares a customer's boot size against the size estimated from their dog's harness
type AdvisorService struct {
	estimator Estimator
	catalog   *Catalog
}

// NewAdvisorService creates a new AdvisorService
func NewAdvisorService(estimator Estimator, catalog *Catalog) *AdvisorService {
	if catalog == nil {
		catalog = CatalogFor(DefaultLocale)
	}
	return &AdvisorService{
		estimator: estimator,
		catalog:   catalog,
	}
}

// Catalog returns the message catalog used for advisories
func (s *AdvisorService) Catalog() *Catalog {
	return s.catalog
}

// Validate checks the harness size and parses the raw boot size text.
// Checks run in order harness range, empty boot text, boot format, boot sign.
func Validate(harnessSize float64, bootSizeRaw string) (ValidatedInput, error) {
	if math.IsNaN(harnessSize) || harnessSize <= 0 || harnessSize > MaxHarnessSize {
		return ValidatedInput{}, &ValidationError{
			Field: "harness_size",
			Value: strconv.FormatFloat(harnessSize, 'g', -1, 64),
			Err:   ErrInvalidHarness,
		}
	}

	trimmed := strings.TrimSpace(bootSizeRaw)
	if trimmed == "" {
		return ValidatedInput{}, &ValidationError{Field: "boot_size", Value: bootSizeRaw, Err: ErrEmptyBootInput}
	}

	bootSize, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(bootSize) || math.IsInf(bootSize, 0) {
		return ValidatedInput{}, &ValidationError{Field: "boot_size", Value: bootSizeRaw, Err: ErrInvalidBootFormat}
	}
	if bootSize <= 0 {
		return ValidatedInput{}, &ValidationError{Field: "boot_size", Value: bootSizeRaw, Err: ErrInvalidBoot}
	}

	return ValidatedInput{HarnessSize: harnessSize, BootSize: bootSize}, nil
}

// RoundSize rounds a boot size to the nearest whole size, halves to even
// (6.5 -> 6, 7.5 -> 8). Values beyond the int range saturate instead of overflowing.
func RoundSize(size float64) int {
	r := math.RoundToEven(size)
	if r >= float64(math.MaxInt) {
		return math.MaxInt
	}
	if r <= float64(math.MinInt) {
		return math.MinInt
	}
	return int(r)
}

// ClassifyCode grades a selected size against the estimate. Equality is checked first.
func ClassifyCode(estimated, selected int) models.AdviceCode {
	if selected == estimated {
		return models.AdviceMatch
	}

	if selected < estimated {
		if estimated-selected == 1 {
			return models.AdviceSlightlySmall
		}
		return models.AdviceTooSmall
	}

	if selected-estimated == 1 {
		return models.AdviceSlightlyLarge
	}
	return models.AdviceTooLarge
}

// Classify builds the advisory for an estimated and a selected size
func (s *AdvisorService) Classify(estimated, selected int) models.Advisory {
	code := ClassifyCode(estimated, selected)
	return models.Advisory{
		Severity:        code.Severity(),
		Code:            code,
		Message:         s.catalog.Advice(code, selected, estimated),
		RecommendedSize: estimated,
		SelectedSize:    selected,
		EstimatedSize:   estimated,
	}
}

// Advise validates the input, asks the estimator for the expected boot size and classifies the selection.
// Invalid input returns a *ValidationError without calling the estimator. Estimator failures
// return an error matching ErrPredictionUnavailable that also wraps the estimator's error.
func (s *AdvisorService) Advise(ctx context.Context, harnessSize float64, bootSizeRaw string) (models.Advisory, error) {
	defer TrackTime("Advise", time.Now())

	input, err := Validate(harnessSize, bootSizeRaw)
	if err != nil {
		return models.Advisory{}, err
	}

	predicted, err := s.estimator.Predict(ctx, input.HarnessSize)
	if err != nil {
		return models.Advisory{}, fmt.Errorf("%w: %w", ErrPredictionUnavailable, err)
	}

	estimated := RoundSize(predicted)
	selected := RoundSize(input.BootSize)

	advisory := s.Classify(estimated, selected)
	log.WithFields(log.Fields{
		"harness_size": input.HarnessSize,
		"predicted":    predicted,
		"estimated":    estimated,
		"selected":     selected,
		"code":         advisory.Code,
	}).Debug("Classified boot size")

	return advisory, nil
}
