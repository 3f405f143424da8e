package main

import (
	"log"
	"net/http"
	"os"
	"time"

	_ "clinica/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"clinica/internal/auth"
	"clinica/internal/cache"
	"clinica/internal/config"
	"clinica/internal/db"
	"clinica/internal/handler"
	"clinica/internal/model"
	"clinica/internal/repository"
	"clinica/internal/router"
	"clinica/internal/service"
)

// @title Clinic Registry API
// @version 1.0
// @description Clinic registry API with patients, doctors, inspections and JWT authentication.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Inspection{},
			&model.Patient{},
			&model.Doctor{},
			&model.User{},
			&model.Sex{},
			&model.Section{},
			&model.Place{},
			&model.Diagnosis{},
			&model.Symptom{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Sex{},
		&model.Section{},
		&model.Place{},
		&model.Diagnosis{},
		&model.Symptom{},
		&model.User{},
		&model.Patient{},
		&model.Doctor{},
		&model.Inspection{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	patientRepo := repository.NewPatientRepository(gormDB)
	doctorRepo := repository.NewDoctorRepository(gormDB)
	inspectionRepo := repository.NewInspectionRepository(gormDB)
	lookupRepo := repository.NewLookupRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	patientService := service.NewPatientService(patientRepo, cacheClient)
	doctorService := service.NewDoctorService(doctorRepo)
	inspectionService := service.NewInspectionService(inspectionRepo)
	referenceService := service.NewReferenceService(lookupRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	patientHandler := handler.NewPatientHandler(patientService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	inspectionHandler := handler.NewInspectionHandler(inspectionService)
	referenceHandler := handler.NewReferenceHandler(referenceService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		patientHandler,
		doctorHandler,
		inspectionHandler,
		referenceHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
