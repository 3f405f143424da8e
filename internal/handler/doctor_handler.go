package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "clinica/internal/errors"
	"clinica/internal/model"
	"clinica/internal/service"
)

// DoctorHandler handles doctor endpoints.
type DoctorHandler struct {
	doctorService service.DoctorService
}

// NewDoctorHandler creates a new doctor handler.
func NewDoctorHandler(doctorService service.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctorService: doctorService}
}

// DoctorAddRequest represents a doctor creation request.
type DoctorAddRequest struct {
	Surname     string `json:"surname" validate:"required"`
	Name        string `json:"name" validate:"required"`
	MiddleName  string `json:"middle_name"`
	PhoneNumber string `json:"phone_number"`
	Experience  int    `json:"experience" validate:"gte=0"`
	SectionID   uint   `json:"section_id" validate:"required"`
}

// ListDoctors godoc
// @Summary List doctors
// @Tags doctors
// @Produce json
// @Success 200 {array} model.Doctor
// @Failure 500 {object} errors.ErrorResponse
// @Router /doctors [get]
func (h *DoctorHandler) ListDoctors(c echo.Context) error {
	doctors, err := h.doctorService.ListDoctors(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, doctors)
}

// GetDoctor godoc
// @Summary Get doctor by id
// @Tags doctors
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 200 {object} model.Doctor
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /doctors/{id} [get]
func (h *DoctorHandler) GetDoctor(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	doctor, err := h.doctorService.GetDoctor(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, doctor)
}

// AddDoctor godoc
// @Summary Create a doctor
// @Tags doctors
// @Accept json
// @Produce json
// @Param request body DoctorAddRequest true "Doctor fields"
// @Success 201 {object} model.Doctor
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /doctors/add [post]
func (h *DoctorHandler) AddDoctor(c echo.Context) error {
	var req DoctorAddRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	doctor := &model.Doctor{
		Surname:     req.Surname,
		Name:        req.Name,
		MiddleName:  req.MiddleName,
		PhoneNumber: req.PhoneNumber,
		Experience:  req.Experience,
		SectionID:   req.SectionID,
	}

	created, err := h.doctorService.AddDoctor(c.Request().Context(), doctor)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// DeleteDoctor godoc
// @Summary Delete a doctor by id
// @Tags doctors
// @Produce json
// @Param ID_doctor query int true "Doctor ID"
// @Success 200 {object} DeleteResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /doctors/delete [delete]
func (h *DoctorHandler) DeleteDoctor(c echo.Context) error {
	id, err := strconv.Atoi(c.QueryParam("ID_doctor"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid ID_doctor")
	}

	count, err := h.doctorService.DeleteDoctor(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, DeleteResponse{Deleted: count})
}
