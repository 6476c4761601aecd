package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/restevesd/arnes/internal/middleware"
	"github.com/restevesd/arnes/internal/models"
	"github.com/restevesd/arnes/internal/services"
	log "github.com/sirupsen/logrus"
)

// AdviceHandler handles boot size check endpoints
type AdviceHandler struct {
	advisorSvc *services.AdvisorService
}

// NewAdviceHandler creates a new AdviceHandler
func NewAdviceHandler(advisorSvc *services.AdvisorService) *AdviceHandler {
	return &AdviceHandler{
		advisorSvc: advisorSvc,
	}
}

// Check handles POST /advice
// @Summary Check a boot size
// @Description Estimate the boot size for a harness measurement and grade the customer's selected size against it
// @Tags advice
// @Accept json
// @Produce json
// @Param request body models.AdviceRequest true "Harness size (cm) and selected boot size"
// @Success 200 {object} models.AdviceResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /advice [post]
func (h *AdviceHandler) Check(c *gin.Context) {
	var req models.AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	advisory, err := h.advisorSvc.Advise(c.Request.Context(), *req.HarnessSize, req.BootSize)
	if err != nil {
		catalog := h.advisorSvc.Catalog()

		var ve *services.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   services.ErrorCode(err),
				Message: catalog.ErrorMessage(err),
			})
			return
		}
		if errors.Is(err, services.ErrPredictionUnavailable) {
			log.WithField("request_id", middleware.GetRequestID(c)).Errorf("Advice unavailable: %v", err)
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Error:   services.ErrorCode(err),
				Message: catalog.ErrorMessage(err),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.AdviceResponse{
		HarnessSize: *req.HarnessSize,
		Advisory:    advisory,
	})
}
