package enrollment

import (
	"testing"
	"time"

	"mall/internal/models"
	"mall/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) List() ([]models.Enrollment, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) GetByID(id uint) (*models.Enrollment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) GetByEmail(email string) (*models.Enrollment, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) Create(enrollment *models.Enrollment) error {
	return m.Called(enrollment).Error(0)
}

func TestCreate_NewEmail(t *testing.T) {
	repo := new(MockEnrollmentRepository)
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc := &service{enrollments: repo, now: func() time.Time { return fixed }}

	repo.On("GetByEmail", "ana@x.com").Return(nil, repositories.ErrEnrollmentNotFound)
	repo.On("Create", mock.Anything).Return(nil)

	input := models.CreateEnrollmentInput{Name: "Ana Silva", Email: "ana@x.com", Course: "Direito"}
	enrollment, err := svc.Create(input)

	assert.NoError(t, err)
	assert.Equal(t, "Ana Silva", enrollment.Name)
	assert.Equal(t, "ana@x.com", enrollment.Email)
	assert.Equal(t, "Direito", enrollment.Course)
	assert.Equal(t, fixed, enrollment.EnrolledAt)

	repo.AssertExpectations(t)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo := new(MockEnrollmentRepository)
	svc := &service{enrollments: repo, now: time.Now}

	repo.On("GetByEmail", "ana@x.com").
		Return(&models.Enrollment{ID: 1, Email: "ana@x.com"}, nil)

	input := models.CreateEnrollmentInput{Name: "Ana Silva", Email: "ana@x.com", Course: "Direito"}
	enrollment, err := svc.Create(input)

	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Nil(t, enrollment)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreate_ConcurrentDuplicateHitsUniqueIndex(t *testing.T) {
	repo := new(MockEnrollmentRepository)
	svc := &service{enrollments: repo, now: time.Now}

	// The lookup sees no row, but a concurrent insert wins the race
	// and the unique index rejects this one.
	repo.On("GetByEmail", "ana@x.com").Return(nil, repositories.ErrEnrollmentNotFound)
	repo.On("Create", mock.Anything).Return(repositories.ErrDuplicateEnrollment)

	input := models.CreateEnrollmentInput{Name: "Ana Silva", Email: "ana@x.com", Course: "Direito"}
	enrollment, err := svc.Create(input)

	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Nil(t, enrollment)
	repo.AssertExpectations(t)
}

func TestCreate_LookupFailure(t *testing.T) {
	repo := new(MockEnrollmentRepository)
	svc := &service{enrollments: repo, now: time.Now}

	repo.On("GetByEmail", "ana@x.com").Return(nil, assert.AnError)

	input := models.CreateEnrollmentInput{Name: "Ana Silva", Email: "ana@x.com", Course: "Direito"}
	enrollment, err := svc.Create(input)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateEmail)
	assert.Nil(t, enrollment)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}
