// Package authorization implements the card authorization sequence:
// resolve the user, resolve the card by (user, number, cvv), check the
// expiry against the stored card, check funds, then debit the balance
// and mint an authorization code. Every failure is a hard stop with a
// distinct reason. There is no reservation or reversal step; a debit
// is immediate and final.
package authorization

import (
	"fmt"
	"time"

	"mall/internal/repositories"
	"mall/internal/validation"

	"github.com/google/uuid"
)

// Service authorizes card transactions.
type Service interface {
	Authorize(userID uint, req Request) (*Result, error)
}

type service struct {
	users repositories.UserRepository
	cards repositories.CardRepository
	now   func() time.Time
}

// NewService creates the authorization service.
func NewService(users repositories.UserRepository, cards repositories.CardRepository) Service {
	if users == nil {
		panic("user repository is required")
	}
	if cards == nil {
		panic("card repository is required")
	}
	return &service{users: users, cards: cards, now: time.Now}
}

func (s *service) Authorize(userID uint, req Request) (*Result, error) {
	now := s.now().UTC()

	if !req.Amount.IsPositive() {
		return declined(now, ReasonInvalidRequest, "Valor inválido"), nil
	}

	if _, err := s.users.GetByID(userID); err != nil {
		if err == repositories.ErrUserNotFound {
			return declined(now, ReasonUserNotFound, "Usuário não encontrado"), nil
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	// A wrong number and a wrong cvv fall into the same branch here.
	card, err := s.cards.FindForAuthorization(userID, req.Number, req.CVV)
	if err != nil {
		if err == repositories.ErrCardNotFound {
			return declined(now, ReasonCardNotFound, "Cartão não encontrado"), nil
		}
		return nil, fmt.Errorf("failed to resolve card: %w", err)
	}

	requestExpiry, err := validation.ParseExpiry(req.Expiry)
	if err != nil {
		return declined(now, ReasonExpiryMismatch, "Formato de data inválido. Use o formato MM/AAAA"), nil
	}

	// An expired card wins over a wrong supplied expiry.
	if card.Expiry.Before(now) {
		return declined(now, ReasonCardExpired, "Cartão expirado"), nil
	}
	if !card.Expiry.Equal(requestExpiry) {
		return declined(now, ReasonExpiryMismatch, "Validade incorreta"), nil
	}

	// Exact decimal comparison: amount equal to the balance authorizes.
	if card.Balance.LessThan(req.Amount) {
		return declined(now, ReasonInsufficientFunds, "Saldo insuficiente"), nil
	}

	card.Balance = card.Balance.Sub(req.Amount)
	if err := s.cards.Save(card); err != nil {
		return nil, fmt.Errorf("failed to persist debit: %w", err)
	}

	code := uuid.New()
	return &Result{
		Status:    StatusAuthorized,
		Code:      &code,
		Timestamp: now,
		Message:   "Compra autorizada",
	}, nil
}

func declined(now time.Time, reason Reason, message string) *Result {
	return &Result{
		Status:    StatusNotAuthorized,
		Timestamp: now,
		Message:   message,
		Reason:    reason,
	}
}
