package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"clinica/internal/config"
	"clinica/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	inspectionHandler *handler.InspectionHandler,
	referenceHandler *handler.ReferenceHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Auth routes
	e.POST("/register", authHandler.Register)
	e.POST("/token", authHandler.Login)
	e.POST("/refresh", authHandler.Refresh)
	e.POST("/logout", authHandler.Logout)
	e.GET("/users", authHandler.ListUsers)

	// Public read routes
	e.GET("/patients", patientHandler.ListPatients)
	e.GET("/patients/search/:surname", patientHandler.SearchPatients)
	e.GET("/patients/:id", patientHandler.GetPatient)
	e.GET("/doctors", doctorHandler.ListDoctors)
	e.GET("/doctors/:id", doctorHandler.GetDoctor)
	e.GET("/diagnosis", referenceHandler.ListDiagnoses)
	e.GET("/symptoms", referenceHandler.ListSymptoms)
	e.GET("/inspections/:patient_id", inspectionHandler.ListForPatient)

	// Mutating routes require a verified bearer token.
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.POST("/patients/add", patientHandler.AddPatient)
	secured.DELETE("/patients/delete", patientHandler.DeletePatient)
	secured.POST("/doctors/add", doctorHandler.AddDoctor)
	secured.DELETE("/doctors/delete", doctorHandler.DeleteDoctor)
	secured.POST("/inspections/add", inspectionHandler.AddInspection)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
