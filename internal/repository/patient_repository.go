package repository

import (
	"context"

	"gorm.io/gorm"

	"clinica/internal/model"
)

// PatientRepository defines patient persistence operations.
type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	FindByID(ctx context.Context, id uint) (*model.Patient, error)
	ListWithSex(ctx context.Context) ([]model.PatientView, error)
	SearchBySurname(ctx context.Context, surname string) ([]model.Patient, error)
	DeleteByID(ctx context.Context, id uint) (int64, error)
}

type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository creates a new patient repository.
func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db: db}
}

// Create inserts a patient and refreshes it with the generated id.
func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

// FindByID finds a patient by id.
func (r *patientRepository) FindByID(ctx context.Context, id uint) (*model.Patient, error) {
	var patient model.Patient
	if err := r.db.WithContext(ctx).First(&patient, id).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

// ListWithSex joins patients with the sexes lookup and projects each
// row flat, ordered by patient id ascending.
func (r *patientRepository) ListWithSex(ctx context.Context) ([]model.PatientView, error) {
	var views []model.PatientView
	err := r.db.WithContext(ctx).
		Model(&model.Patient{}).
		Select("patients.id, patients.surname, patients.name, patients.middle_name, sexes.name AS sex, patients.age, patients.phone_number, patients.address").
		Joins("JOIN sexes ON sexes.id = patients.sex_id").
		Order("patients.id").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// SearchBySurname matches patients whose surname contains the given
// fragment. MySQL's default collation makes the match case-insensitive.
func (r *patientRepository) SearchBySurname(ctx context.Context, surname string) ([]model.Patient, error) {
	var patients []model.Patient
	err := r.db.WithContext(ctx).
		Where("surname LIKE ?", "%"+surname+"%").
		Order("id").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

// DeleteByID removes a patient and reports how many rows were removed.
// A missing id deletes zero rows and is not an error.
func (r *patientRepository) DeleteByID(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Patient{}, id)
	return res.RowsAffected, res.Error
}
