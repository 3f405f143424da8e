package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	apperrors "clinica/internal/errors"
	"clinica/internal/model"
	"clinica/internal/service"
)

// PatientHandler handles patient endpoints.
type PatientHandler struct {
	patientService service.PatientService
}

// NewPatientHandler creates a new patient handler.
func NewPatientHandler(patientService service.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

// PatientAddRequest represents a patient creation request.
type PatientAddRequest struct {
	Surname     string `json:"surname" validate:"required"`
	Name        string `json:"name" validate:"required"`
	MiddleName  string `json:"middle_name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	Age         int    `json:"age" validate:"gte=0"`
	SexID       uint   `json:"sex_id" validate:"required"`
}

// DeleteResponse reports how many rows a delete removed.
type DeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

// ListPatients godoc
// @Summary List patients with resolved sex names
// @Tags patients
// @Produce json
// @Success 200 {array} model.PatientView
// @Failure 500 {object} errors.ErrorResponse
// @Router /patients [get]
func (h *PatientHandler) ListPatients(c echo.Context) error {
	views, err := h.patientService.ListPatients(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, views)
}

// GetPatient godoc
// @Summary Get patient by id
// @Tags patients
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} model.Patient
// @Failure 400 {object} errors.ErrorResponse
// @Router /patients/{id} [get]
func (h *PatientHandler) GetPatient(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	patient, err := h.patientService.GetPatient(c.Request().Context(), uint(id))
	if err != nil {
		// A missing patient answers with a JSON null body, not a 404.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, patient)
}

// AddPatient godoc
// @Summary Create a patient
// @Tags patients
// @Accept json
// @Produce json
// @Param request body PatientAddRequest true "Patient fields"
// @Success 201 {object} model.Patient
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /patients/add [post]
func (h *PatientHandler) AddPatient(c echo.Context) error {
	var req PatientAddRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patient := &model.Patient{
		Surname:     req.Surname,
		Name:        req.Name,
		MiddleName:  req.MiddleName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Age:         req.Age,
		SexID:       req.SexID,
	}

	created, err := h.patientService.AddPatient(c.Request().Context(), patient)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// DeletePatient godoc
// @Summary Delete a patient by id
// @Tags patients
// @Produce json
// @Param ID_patient query int true "Patient ID"
// @Success 200 {object} DeleteResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /patients/delete [delete]
func (h *PatientHandler) DeletePatient(c echo.Context) error {
	id, err := strconv.Atoi(c.QueryParam("ID_patient"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid ID_patient")
	}

	count, err := h.patientService.DeletePatient(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, DeleteResponse{Deleted: count})
}

// SearchPatients godoc
// @Summary Search patients by surname fragment
// @Tags patients
// @Produce json
// @Param surname path string true "Surname fragment"
// @Success 200 {array} model.Patient
// @Failure 500 {object} errors.ErrorResponse
// @Router /patients/search/{surname} [get]
func (h *PatientHandler) SearchPatients(c echo.Context) error {
	patients, err := h.patientService.SearchBySurname(c.Request().Context(), c.Param("surname"))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, patients)
}
