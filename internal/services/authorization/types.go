package authorization

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the outcome of an authorization attempt.
type Status string

const (
	StatusAuthorized    Status = "AUTHORIZED"
	StatusNotAuthorized Status = "NOT_AUTHORIZED"
)

// Reason identifies which check rejected the request. It is internal
// to the API; the wire response carries only the message string.
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonInvalidRequest    Reason = "INVALID_REQUEST"
	ReasonUserNotFound      Reason = "USER_NOT_FOUND"
	ReasonCardNotFound      Reason = "CARD_NOT_FOUND"
	ReasonCardExpired       Reason = "CARD_EXPIRED"
	ReasonExpiryMismatch    Reason = "EXPIRY_MISMATCH"
	ReasonInsufficientFunds Reason = "INSUFFICIENT_FUNDS"
)

// Request is a transient authorization request. It is never persisted.
type Request struct {
	Number string          `json:"numero"`
	CVV    string          `json:"cvv"`
	Expiry string          `json:"dt_expiracao"`
	Amount decimal.Decimal `json:"valor"`
}

// Result is the outcome of one authorization attempt. The code is
// present only when authorized. Replaying an authorized request is not
// detected; it debits again and mints a new code.
type Result struct {
	Status    Status     `json:"status"`
	Code      *uuid.UUID `json:"codigo_autorizacao"`
	Timestamp time.Time  `json:"dt_transacao"`
	Message   string     `json:"message"`
	Reason    Reason     `json:"-"`
}

// Authorized reports whether the debit was committed.
func (r *Result) Authorized() bool {
	return r.Status == StatusAuthorized
}

// HTTPStatus maps the rejection reason to the API status code:
// missing entities are 404, business-rule rejections are 400.
func (r *Result) HTTPStatus() int {
	switch r.Reason {
	case ReasonNone:
		return http.StatusOK
	case ReasonUserNotFound, ReasonCardNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
