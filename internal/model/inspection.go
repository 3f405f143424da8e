package model

import "time"

// Inspection records a single medical inspection: one patient seen by
// one doctor at one place, with the diagnosis, the symptom set and a
// free-text prescription.
type Inspection struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Date         time.Time `json:"date" gorm:"type:date;not null"`
	Prescription string    `json:"prescription" gorm:"size:1024"`
	PlaceID      uint      `json:"place_id" gorm:"index;not null"`
	DoctorID     uint      `json:"doctor_id" gorm:"index;not null"`
	PatientID    uint      `json:"patient_id" gorm:"index;not null"`
	DiagnosisID  uint      `json:"diagnosis_id" gorm:"index;not null"`
	SymptomID    uint      `json:"symptom_id" gorm:"index;not null"`
}

// TableName overrides the default table name.
func (Inspection) TableName() string { return "inspections" }
