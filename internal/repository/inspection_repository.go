package repository

import (
	"context"

	"gorm.io/gorm"

	"clinica/internal/model"
)

// InspectionRepository defines inspection persistence operations.
type InspectionRepository interface {
	Create(ctx context.Context, inspection *model.Inspection) error
	ListForPatient(ctx context.Context, patientID uint) ([]model.InspectionView, error)
}

type inspectionRepository struct {
	db *gorm.DB
}

// NewInspectionRepository creates a new inspection repository.
func NewInspectionRepository(db *gorm.DB) InspectionRepository {
	return &inspectionRepository{db: db}
}

func (r *inspectionRepository) Create(ctx context.Context, inspection *model.Inspection) error {
	return r.db.WithContext(ctx).Create(inspection).Error
}

// ListForPatient inner-joins inspections with every linked lookup and
// projects the rows flat. Inner-join semantics are deliberate: an
// inspection with a dangling reference is excluded, not surfaced as an
// error. No pagination; the full result set is returned.
func (r *inspectionRepository) ListForPatient(ctx context.Context, patientID uint) ([]model.InspectionView, error) {
	var views []model.InspectionView
	err := r.db.WithContext(ctx).
		Model(&model.Inspection{}).
		Select("inspections.id, places.name AS place, inspections.date, doctors.surname AS doctor, patients.surname AS patient, diagnoses.name AS diagnosis, symptoms.name AS symptoms, inspections.prescription").
		Joins("JOIN places ON places.id = inspections.place_id").
		Joins("JOIN doctors ON doctors.id = inspections.doctor_id").
		Joins("JOIN patients ON patients.id = inspections.patient_id").
		Joins("JOIN diagnoses ON diagnoses.id = inspections.diagnosis_id").
		Joins("JOIN symptoms ON symptoms.id = inspections.symptom_id").
		Where("inspections.patient_id = ?", patientID).
		Order("inspections.id").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}
