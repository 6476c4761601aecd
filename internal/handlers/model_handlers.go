package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/restevesd/arnes/internal/middleware"
	"github.com/restevesd/arnes/internal/models"
	"github.com/restevesd/arnes/internal/services"
	log "github.com/sirupsen/logrus"
)

// ModelDescriber reports which model backs the estimator
type ModelDescriber interface {
	Info(ctx context.Context) (*models.ModelInfoResponse, error)
}

// ModelHandler exposes metadata about the loaded model
type ModelHandler struct {
	describer ModelDescriber
	catalog   *services.Catalog
}

// NewModelHandler creates a new ModelHandler
func NewModelHandler(describer ModelDescriber, catalog *services.Catalog) *ModelHandler {
	if catalog == nil {
		catalog = services.CatalogFor(services.DefaultLocale)
	}
	return &ModelHandler{
		describer: describer,
		catalog:   catalog,
	}
}

// Get handles GET /model
// @Summary Describe the boot size model
// @Description Report the source and coefficients of the model used for estimates
// @Tags model
// @Produce json
// @Success 200 {object} models.ModelInfoResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /model [get]
func (h *ModelHandler) Get(c *gin.Context) {
	info, err := h.describer.Info(c.Request.Context())
	if err != nil {
		log.WithField("request_id", middleware.GetRequestID(c)).Errorf("Model unavailable: %v", err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "model_unavailable",
			Message: h.catalog.ErrorMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, info)
}
