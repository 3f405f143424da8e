package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "clinica/internal/errors"
	"clinica/internal/model"
	"clinica/internal/service"
)

// InspectionHandler handles inspection endpoints.
type InspectionHandler struct {
	inspectionService service.InspectionService
}

// NewInspectionHandler creates a new inspection handler.
func NewInspectionHandler(inspectionService service.InspectionService) *InspectionHandler {
	return &InspectionHandler{inspectionService: inspectionService}
}

// InspectionAddRequest represents an inspection creation request.
type InspectionAddRequest struct {
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Prescription string `json:"prescription"`
	PlaceID      uint   `json:"place_id" validate:"required"`
	DoctorID     uint   `json:"doctor_id" validate:"required"`
	PatientID    uint   `json:"patient_id" validate:"required"`
	DiagnosisID  uint   `json:"diagnosis_id" validate:"required"`
	SymptomID    uint   `json:"symptom_id" validate:"required"`
}

// ListForPatient godoc
// @Summary List inspections for a patient
// @Tags inspections
// @Produce json
// @Param patient_id path int true "Patient ID"
// @Success 200 {array} model.InspectionView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /inspections/{patient_id} [get]
func (h *InspectionHandler) ListForPatient(c echo.Context) error {
	patientID, err := strconv.Atoi(c.Param("patient_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
	}

	views, err := h.inspectionService.ListForPatient(c.Request().Context(), uint(patientID))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, views)
}

// AddInspection godoc
// @Summary Create an inspection
// @Tags inspections
// @Accept json
// @Produce json
// @Param request body InspectionAddRequest true "Inspection fields"
// @Success 201 {object} model.Inspection
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /inspections/add [post]
func (h *InspectionHandler) AddInspection(c echo.Context) error {
	var req InspectionAddRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date")
	}

	inspection := &model.Inspection{
		Date:         date,
		Prescription: req.Prescription,
		PlaceID:      req.PlaceID,
		DoctorID:     req.DoctorID,
		PatientID:    req.PatientID,
		DiagnosisID:  req.DiagnosisID,
		SymptomID:    req.SymptomID,
	}

	created, err := h.inspectionService.AddInspection(c.Request().Context(), inspection)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}
