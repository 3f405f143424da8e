package repository

import (
	"context"

	"gorm.io/gorm"

	"clinica/internal/model"
)

// LookupRepository reads the static reference tables.
type LookupRepository interface {
	ListDiagnoses(ctx context.Context) ([]model.Diagnosis, error)
	ListSymptoms(ctx context.Context) ([]model.Symptom, error)
}

type lookupRepository struct {
	db *gorm.DB
}

// NewLookupRepository creates a new lookup repository.
func NewLookupRepository(db *gorm.DB) LookupRepository {
	return &lookupRepository{db: db}
}

func (r *lookupRepository) ListDiagnoses(ctx context.Context) ([]model.Diagnosis, error) {
	var diagnoses []model.Diagnosis
	if err := r.db.WithContext(ctx).Order("id").Find(&diagnoses).Error; err != nil {
		return nil, err
	}
	return diagnoses, nil
}

func (r *lookupRepository) ListSymptoms(ctx context.Context) ([]model.Symptom, error) {
	var symptoms []model.Symptom
	if err := r.db.WithContext(ctx).Order("id").Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}
