package model

// Static reference data. These tables are read-only from the API's
// perspective and are loaded by cmd/seed.

// Sex is a patient sex lookup row.
type Sex struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:64;not null"`
}

// TableName overrides gorm's pluralization.
func (Sex) TableName() string { return "sexes" }

// Section is a hospital section lookup row.
type Section struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:255;not null"`
}

// TableName overrides gorm's pluralization.
func (Section) TableName() string { return "sections" }

// Place is an inspection place lookup row.
type Place struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:255;not null"`
}

// TableName overrides gorm's pluralization.
func (Place) TableName() string { return "places" }

// Diagnosis is a diagnosis lookup row.
type Diagnosis struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:255;not null"`
}

// TableName overrides gorm's pluralization.
func (Diagnosis) TableName() string { return "diagnoses" }

// Symptom is a symptom-set lookup row.
type Symptom struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:255;not null"`
}

// TableName overrides gorm's pluralization.
func (Symptom) TableName() string { return "symptoms" }
