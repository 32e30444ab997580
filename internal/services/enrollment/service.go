// Package enrollment registers students into courses, enforcing email
// uniqueness at creation.
package enrollment

import (
	"errors"
	"fmt"
	"time"

	"mall/internal/models"
	"mall/internal/repositories"
)

// ErrDuplicateEmail is returned when the email is already enrolled.
var ErrDuplicateEmail = errors.New("email already enrolled")

// Service manages enrollments.
type Service interface {
	Create(input models.CreateEnrollmentInput) (*models.Enrollment, error)
	GetByID(id uint) (*models.Enrollment, error)
	List() ([]models.Enrollment, error)
}

type service struct {
	enrollments repositories.EnrollmentRepository
	now         func() time.Time
}

// NewService creates the enrollment service.
func NewService(enrollments repositories.EnrollmentRepository) Service {
	if enrollments == nil {
		panic("enrollment repository is required")
	}
	return &service{enrollments: enrollments, now: time.Now}
}

func (s *service) Create(input models.CreateEnrollmentInput) (*models.Enrollment, error) {
	if _, err := s.enrollments.GetByEmail(input.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, repositories.ErrEnrollmentNotFound) {
		return nil, fmt.Errorf("failed to check enrollment email: %w", err)
	}

	enrollment := &models.Enrollment{
		Name:       input.Name,
		Email:      input.Email,
		Course:     input.Course,
		EnrolledAt: s.now().UTC(),
	}
	if err := s.enrollments.Create(enrollment); err != nil {
		// The email lookup above is racy; the unique index decides.
		if errors.Is(err, repositories.ErrDuplicateEnrollment) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return enrollment, nil
}

func (s *service) GetByID(id uint) (*models.Enrollment, error) {
	return s.enrollments.GetByID(id)
}

func (s *service) List() ([]models.Enrollment, error) {
	return s.enrollments.List()
}
