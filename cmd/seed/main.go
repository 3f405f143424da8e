package main

import (
	"log"

	"gorm.io/gorm"

	"clinica/internal/config"
	"clinica/internal/db"
	"clinica/internal/model"
)

// Reference data the API expects to exist. The tables are read-only
// from the API's perspective; this is the only writer.
var (
	sexes    = []string{"Male", "Female"}
	sections = []string{"Therapy", "Surgery", "Cardiology", "Neurology", "Pediatrics"}
	places   = []string{"Consulting room", "Inpatient ward", "Home visit", "Emergency room"}

	diagnoses = []string{
		"Acute respiratory infection",
		"Hypertension",
		"Gastritis",
		"Migraine",
		"Bronchitis",
		"Angina pectoris",
	}

	symptoms = []string{
		"Fever, cough",
		"Headache, dizziness",
		"Abdominal pain, nausea",
		"Chest pain, shortness of breath",
		"Sore throat, runny nose",
	}
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.Sex{},
		&model.Section{},
		&model.Place{},
		&model.Diagnosis{},
		&model.Symptom{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	created := 0
	created += seedNames(gormDB, "sexes", sexes, func(name string) interface{} { return &model.Sex{Name: name} })
	created += seedNames(gormDB, "sections", sections, func(name string) interface{} { return &model.Section{Name: name} })
	created += seedNames(gormDB, "places", places, func(name string) interface{} { return &model.Place{Name: name} })
	created += seedNames(gormDB, "diagnoses", diagnoses, func(name string) interface{} { return &model.Diagnosis{Name: name} })
	created += seedNames(gormDB, "symptoms", symptoms, func(name string) interface{} { return &model.Symptom{Name: name} })

	log.Printf("Seed completed successfully, %d new rows created", created)
}

// seedNames inserts each name if it is not already present and returns
// how many rows were newly created.
func seedNames(gormDB *gorm.DB, table string, names []string, build func(string) interface{}) int {
	created := 0
	for _, name := range names {
		row := build(name)
		res := gormDB.Where("name = ?", name).FirstOrCreate(row)
		if res.Error != nil {
			log.Fatalf("Failed to seed %s row %q: %v", table, name, res.Error)
		}
		if res.RowsAffected > 0 {
			created++
		}
	}
	log.Printf("  - %s: %d created", table, created)
	return created
}
