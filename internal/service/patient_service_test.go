package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"clinica/internal/cache"
	"clinica/internal/model"
)

// MockPatientRepository is a mock implementation of PatientRepository.
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *model.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, id uint) (*model.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientRepository) ListWithSex(ctx context.Context) ([]model.PatientView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PatientView), args.Error(1)
}

func (m *MockPatientRepository) SearchBySurname(ctx context.Context, surname string) ([]model.Patient, error) {
	args := m.Called(ctx, surname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Patient), args.Error(1)
}

func (m *MockPatientRepository) DeleteByID(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// A nil cache client behaves like a permanent miss, so services can be
// exercised without redis.
var noCache *cache.Client

func TestPatientService_ListPatients(t *testing.T) {
	views := []model.PatientView{
		{ID: 1, Surname: "Sidorov", Name: "Pavel", Sex: "Male", Age: 34},
		{ID: 2, Surname: "Smirnova", Name: "Olga", Sex: "Female", Age: 28},
	}

	mockRepo := new(MockPatientRepository)
	mockRepo.On("ListWithSex", mock.Anything).Return(views, nil)

	service := NewPatientService(mockRepo, noCache)
	got, err := service.ListPatients(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, views, got)
	mockRepo.AssertExpectations(t)
}

func TestPatientService_GetPatient_Missing(t *testing.T) {
	mockRepo := new(MockPatientRepository)
	mockRepo.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

	service := NewPatientService(mockRepo, noCache)
	patient, err := service.GetPatient(context.Background(), 7)

	assert.Nil(t, patient)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	mockRepo.AssertExpectations(t)
}

func TestPatientService_DeletePatient(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		setupMock     func(*MockPatientRepository)
		expectedCount int64
	}{
		{
			name: "existing patient deleted",
			id:   1,
			setupMock: func(m *MockPatientRepository) {
				m.On("DeleteByID", mock.Anything, uint(1)).Return(int64(1), nil)
			},
			expectedCount: 1,
		},
		{
			name: "missing patient is zero count, not an error",
			id:   999,
			setupMock: func(m *MockPatientRepository) {
				m.On("DeleteByID", mock.Anything, uint(999)).Return(int64(0), nil)
			},
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPatientRepository)
			tt.setupMock(mockRepo)

			service := NewPatientService(mockRepo, noCache)
			count, err := service.DeletePatient(context.Background(), tt.id)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCount, count)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPatientService_SearchBySurname(t *testing.T) {
	patients := []model.Patient{{ID: 1, Surname: "Sidorov", Name: "Pavel"}}

	mockRepo := new(MockPatientRepository)
	mockRepo.On("SearchBySurname", mock.Anything, "sido").Return(patients, nil)

	service := NewPatientService(mockRepo, noCache)
	got, err := service.SearchBySurname(context.Background(), "sido")

	assert.NoError(t, err)
	assert.Equal(t, patients, got)
	mockRepo.AssertExpectations(t)
}
