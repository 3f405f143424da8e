package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "clinica/internal/errors"
	"clinica/internal/model"
)

// MockDoctorRepository is a mock implementation of DoctorRepository.
type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, id uint) (*model.Doctor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) List(ctx context.Context) ([]model.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) DeleteByID(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestDoctorService_GetDoctor(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		setupMock     func(*MockDoctorRepository)
		expectedError error
	}{
		{
			name: "found doctor is returned",
			id:   1,
			setupMock: func(m *MockDoctorRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.Doctor{
					ID:      1,
					Surname: "Ivanova",
					Name:    "Anna",
				}, nil)
			},
			expectedError: nil,
		},
		{
			name: "missing doctor maps to not found",
			id:   99,
			setupMock: func(m *MockDoctorRepository) {
				m.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrDoctorNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockDoctorRepository)
			tt.setupMock(mockRepo)

			service := NewDoctorService(mockRepo)
			doctor, err := service.GetDoctor(context.Background(), tt.id)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, doctor)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, doctor)
				assert.Equal(t, tt.id, doctor.ID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestDoctorService_DeleteDoctor_MissingIDIsZeroCount(t *testing.T) {
	mockRepo := new(MockDoctorRepository)
	mockRepo.On("DeleteByID", mock.Anything, uint(42)).Return(int64(0), nil)

	service := NewDoctorService(mockRepo)
	count, err := service.DeleteDoctor(context.Background(), 42)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
	mockRepo.AssertExpectations(t)
}

func TestDoctorService_AddDoctor(t *testing.T) {
	mockRepo := new(MockDoctorRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Doctor")).Return(nil)

	service := NewDoctorService(mockRepo)
	doctor, err := service.AddDoctor(context.Background(), &model.Doctor{
		Surname:   "Petrov",
		Name:      "Dmitri",
		SectionID: 2,
	})

	assert.NoError(t, err)
	assert.NotNil(t, doctor)
	assert.Equal(t, "Petrov", doctor.Surname)
	mockRepo.AssertExpectations(t)
}
