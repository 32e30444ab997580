package repositories

import (
	"errors"
	"fmt"

	"mall/internal/models"

	"gorm.io/gorm"
)

var (
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
	ErrDuplicateEnrollment = errors.New("enrollment email already exists")
)

// EnrollmentRepository defines persistence operations for enrollments.
type EnrollmentRepository interface {
	List() ([]models.Enrollment, error)
	GetByID(id uint) (*models.Enrollment, error)
	GetByEmail(email string) (*models.Enrollment, error)
	Create(enrollment *models.Enrollment) error
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) List() ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := r.db.Find(&enrollments).Error; err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	return enrollments, nil
}

func (r *enrollmentRepository) GetByID(id uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := r.db.First(&enrollment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) GetByEmail(email string) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := r.db.Where("email = ?", email).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("failed to get enrollment by email: %w", err)
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) Create(enrollment *models.Enrollment) error {
	if err := r.db.Create(enrollment).Error; err != nil {
		// The unique index on email is the authority; a concurrent
		// insert that slips past an earlier lookup lands here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEnrollment
		}
		return fmt.Errorf("failed to create enrollment: %w", err)
	}
	return nil
}
