package repositories

import (
	"errors"
	"fmt"

	"mall/internal/models"

	"gorm.io/gorm"
)

var ErrCardNotFound = errors.New("card not found")

// CardRepository defines persistence operations for credit cards.
type CardRepository interface {
	ListByUser(userID uint) ([]models.Card, error)
	GetByID(id uint) (*models.Card, error)
	GetByNumber(number string) (*models.Card, error)
	// FindForAuthorization resolves a card by the (owner, number, cvv)
	// triple. A wrong number and a wrong cvv are indistinguishable to
	// the caller.
	FindForAuthorization(userID uint, number, cvv string) (*models.Card, error)
	ExistsByUserAndNumber(userID uint, number string) (bool, error)
	Create(card *models.Card) error
	Save(card *models.Card) error
	Delete(id uint) error
}

type cardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) ListByUser(userID uint) ([]models.Card, error) {
	var cards []models.Card
	if err := r.db.Where("usuario_id = ?", userID).Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

func (r *cardRepository) GetByID(id uint) (*models.Card, error) {
	var card models.Card
	if err := r.db.First(&card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return &card, nil
}

func (r *cardRepository) GetByNumber(number string) (*models.Card, error) {
	var card models.Card
	if err := r.db.Where("numero = ?", number).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card by number: %w", err)
	}
	return &card, nil
}

func (r *cardRepository) FindForAuthorization(userID uint, number, cvv string) (*models.Card, error) {
	var card models.Card
	err := r.db.Where("usuario_id = ? AND numero = ? AND cvv = ?", userID, number, cvv).
		First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to find card for authorization: %w", err)
	}
	return &card, nil
}

func (r *cardRepository) ExistsByUserAndNumber(userID uint, number string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Card{}).
		Where("usuario_id = ? AND numero = ?", userID, number).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check card existence: %w", err)
	}
	return count > 0, nil
}

func (r *cardRepository) Create(card *models.Card) error {
	if err := r.db.Create(card).Error; err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}
	return nil
}

func (r *cardRepository) Save(card *models.Card) error {
	if err := r.db.Save(card).Error; err != nil {
		return fmt.Errorf("failed to save card: %w", err)
	}
	return nil
}

func (r *cardRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Card{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete card: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}
