package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "clinica/internal/errors"
	"clinica/internal/model"
	"clinica/internal/repository"
)

// DoctorService exposes doctor operations.
type DoctorService interface {
	ListDoctors(ctx context.Context) ([]model.Doctor, error)
	GetDoctor(ctx context.Context, id uint) (*model.Doctor, error)
	AddDoctor(ctx context.Context, doctor *model.Doctor) (*model.Doctor, error)
	DeleteDoctor(ctx context.Context, id uint) (int64, error)
}

type doctorService struct {
	repo repository.DoctorRepository
}

// NewDoctorService builds a DoctorService.
func NewDoctorService(repo repository.DoctorRepository) DoctorService {
	return &doctorService{repo: repo}
}

func (s *doctorService) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	return s.repo.List(ctx)
}

// GetDoctor returns the doctor or a typed not-found failure.
func (s *doctorService) GetDoctor(ctx context.Context, id uint) (*model.Doctor, error) {
	doctor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDoctorNotFound
		}
		return nil, err
	}
	return doctor, nil
}

func (s *doctorService) AddDoctor(ctx context.Context, doctor *model.Doctor) (*model.Doctor, error) {
	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

// DeleteDoctor removes a doctor by id; a zero count is success.
func (s *doctorService) DeleteDoctor(ctx context.Context, id uint) (int64, error) {
	return s.repo.DeleteByID(ctx, id)
}
