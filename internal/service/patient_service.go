package service

import (
	"context"
	"encoding/json"
	"time"

	"clinica/internal/cache"
	"clinica/internal/model"
	"clinica/internal/repository"
)

const (
	patientListCacheKey = "patients:list"
	patientListCacheTTL = 5 * time.Minute
)

// PatientService exposes patient operations.
type PatientService interface {
	ListPatients(ctx context.Context) ([]model.PatientView, error)
	GetPatient(ctx context.Context, id uint) (*model.Patient, error)
	AddPatient(ctx context.Context, patient *model.Patient) (*model.Patient, error)
	DeletePatient(ctx context.Context, id uint) (int64, error)
	SearchBySurname(ctx context.Context, surname string) ([]model.Patient, error)
}

type patientService struct {
	repo  repository.PatientRepository
	cache *cache.Client
}

// NewPatientService builds a PatientService with repository and cache.
func NewPatientService(repo repository.PatientRepository, cache *cache.Client) PatientService {
	return &patientService{repo: repo, cache: cache}
}

// ListPatients returns the flat patient projection, cached briefly.
func (s *patientService) ListPatients(ctx context.Context) ([]model.PatientView, error) {
	if data, _ := s.cache.Get(ctx, patientListCacheKey); data != nil {
		var cached []model.PatientView
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	views, err := s.repo.ListWithSex(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(views); err == nil {
		_ = s.cache.Set(ctx, patientListCacheKey, payload, patientListCacheTTL)
	}
	return views, nil
}

func (s *patientService) GetPatient(ctx context.Context, id uint) (*model.Patient, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *patientService) AddPatient(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, patientListCacheKey)
	return patient, nil
}

// DeletePatient removes a patient by id; a zero count is success.
func (s *patientService) DeletePatient(ctx context.Context, id uint) (int64, error) {
	count, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		_ = s.cache.Delete(ctx, patientListCacheKey)
	}
	return count, nil
}

func (s *patientService) SearchBySurname(ctx context.Context, surname string) ([]model.Patient, error) {
	return s.repo.SearchBySurname(ctx, surname)
}
