package service

import (
	"context"

	"clinica/internal/model"
	"clinica/internal/repository"
)

// InspectionService exposes inspection operations.
type InspectionService interface {
	ListForPatient(ctx context.Context, patientID uint) ([]model.InspectionView, error)
	AddInspection(ctx context.Context, inspection *model.Inspection) (*model.Inspection, error)
}

type inspectionService struct {
	repo repository.InspectionRepository
}

// NewInspectionService builds an InspectionService.
func NewInspectionService(repo repository.InspectionRepository) InspectionService {
	return &inspectionService{repo: repo}
}

// ListForPatient returns the flat inspection history for one patient.
// A patient with no inspections yields an empty slice, not an error.
func (s *inspectionService) ListForPatient(ctx context.Context, patientID uint) ([]model.InspectionView, error) {
	return s.repo.ListForPatient(ctx, patientID)
}

func (s *inspectionService) AddInspection(ctx context.Context, inspection *model.Inspection) (*model.Inspection, error) {
	if err := s.repo.Create(ctx, inspection); err != nil {
		return nil, err
	}
	return inspection, nil
}
