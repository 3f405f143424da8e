package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "clinica/internal/errors"
	"clinica/internal/service"
)

// ReferenceHandler serves the static lookup tables.
type ReferenceHandler struct {
	referenceService service.ReferenceService
}

// NewReferenceHandler creates a new reference handler.
func NewReferenceHandler(referenceService service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

// ListDiagnoses godoc
// @Summary List diagnoses
// @Tags reference
// @Produce json
// @Success 200 {array} model.Diagnosis
// @Failure 500 {object} errors.ErrorResponse
// @Router /diagnosis [get]
func (h *ReferenceHandler) ListDiagnoses(c echo.Context) error {
	diagnoses, err := h.referenceService.ListDiagnoses(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, diagnoses)
}

// ListSymptoms godoc
// @Summary List symptoms
// @Tags reference
// @Produce json
// @Success 200 {array} model.Symptom
// @Failure 500 {object} errors.ErrorResponse
// @Router /symptoms [get]
func (h *ReferenceHandler) ListSymptoms(c echo.Context) error {
	symptoms, err := h.referenceService.ListSymptoms(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, symptoms)
}
