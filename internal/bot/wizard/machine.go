// Package wizard drives the conversational flows as an explicit
// finite-state machine. Each state owns one prompt and one validation;
// a failed validation re-prompts the same step and keeps every field
// already collected. Per-conversation state lives in the session
// store, suspended between turns.
package wizard

import (
	"context"
	"strings"

	"mall/internal/bot/faq"
	"mall/internal/bot/session"
	"mall/internal/models"
	"mall/internal/services/authorization"
)

// State identifies a wizard step.
type State string

const (
	StateMenu State = "menu"

	// Purchase flow.
	StatePurchaseTaxID       State = "purchase_tax_id"
	StatePurchaseCardNumber  State = "purchase_card_number"
	StatePurchasePrintedName State = "purchase_printed_name"
	StatePurchaseExpiry      State = "purchase_expiry"
	StatePurchaseCVV         State = "purchase_cvv"

	// Statement flow.
	StateStatementCardNumber  State = "statement_card_number"
	StateStatementPrintedName State = "statement_printed_name"
	StateStatementExpiry      State = "statement_expiry"
	StateStatementCVV         State = "statement_cvv"

	// Enrollment flow.
	StateEnrollName    State = "enroll_name"
	StateEnrollEmail   State = "enroll_email"
	StateEnrollCourse  State = "enroll_course"
	StateEnrollConfirm State = "enroll_confirm"
)

// Backend is the slice of the store API the wizard needs.
type Backend interface {
	FindUserByCPF(ctx context.Context, cpf string) (*models.User, error)
	GetCardByNumber(ctx context.Context, number string) (*models.Card, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	Authorize(ctx context.Context, userID uint, req authorization.Request) (*authorization.Result, error)
	CreateOrder(ctx context.Context, input models.CreateOrderInput) (*models.Order, error)
	ListOrdersByCard(ctx context.Context, cardID uint) ([]models.Order, error)
	CreateEnrollment(ctx context.Context, input models.CreateEnrollmentInput) (*models.Enrollment, error)
}

// SessionStore persists wizard sessions between turns.
type SessionStore interface {
	Get(ctx context.Context, conversationID string) (*session.Session, error)
	Save(ctx context.Context, conversationID string, sess *session.Session) error
	Clear(ctx context.Context, conversationID string) error
}

// stepFn handles one turn for one state: it validates the input,
// stores the field on success and moves the session forward.
type stepFn func(ctx context.Context, m *Machine, s *session.Session, input string) []string

// steps is the state table. Every reachable state must have an entry.
var steps = map[State]stepFn{
	StateMenu: handleMenu,

	StatePurchaseTaxID:       handlePurchaseTaxID,
	StatePurchaseCardNumber:  handlePurchaseCardNumber,
	StatePurchasePrintedName: handlePurchasePrintedName,
	StatePurchaseExpiry:      handlePurchaseExpiry,
	StatePurchaseCVV:         handlePurchaseCVV,

	StateStatementCardNumber:  handleStatementCardNumber,
	StateStatementPrintedName: handleStatementPrintedName,
	StateStatementExpiry:      handleStatementExpiry,
	StateStatementCVV:         handleStatementCVV,

	StateEnrollName:    handleEnrollName,
	StateEnrollEmail:   handleEnrollEmail,
	StateEnrollCourse:  handleEnrollCourse,
	StateEnrollConfirm: handleEnrollConfirm,
}

// prompts are the question texts shown when a state is entered or
// re-entered after a failed validation.
var prompts = map[State]string{
	StatePurchaseTaxID:       "Para finalizar a compra, preciso do seu CPF:",
	StatePurchaseCardNumber:  "Digite o número do seu cartão de crédito (16 dígitos):",
	StatePurchasePrintedName: "Digite o nome impresso no cartão:",
	StatePurchaseExpiry:      "Digite a data de validade do cartão (formato MM/AAAA):",
	StatePurchaseCVV:         "Digite o CVV do cartão (3 ou 4 dígitos):",

	StateStatementCardNumber:  "Para consultar seu extrato, digite o número do seu cartão (16 dígitos):",
	StateStatementPrintedName: "Digite o nome impresso no cartão:",
	StateStatementExpiry:      "Digite a data de validade do cartão (formato MM/AAAA):",
	StateStatementCVV:         "Digite o CVV do cartão (3 ou 4 dígitos):",

	StateEnrollName:   "Ótimo! Vamos começar sua matrícula. Qual é o seu nome completo?",
	StateEnrollEmail:  "Agora preciso do seu email:",
	StateEnrollCourse: "Escolha um dos cursos disponíveis:",
}

var defaultCourses = []string{
	"Engenharia",
	"Administração",
	"Direito",
	"Medicina",
	"Tecnologia da Informação",
}

// Machine runs the wizard over a backend and a session store.
type Machine struct {
	backend  Backend
	sessions SessionStore
	faq      *faq.Table
	courses  []string
}

// NewMachine creates the wizard machine.
func NewMachine(backend Backend, sessions SessionStore, table *faq.Table) *Machine {
	if backend == nil {
		panic("backend is required")
	}
	if sessions == nil {
		panic("session store is required")
	}
	if table == nil {
		table = faq.Default()
	}
	return &Machine{
		backend:  backend,
		sessions: sessions,
		faq:      table,
		courses:  defaultCourses,
	}
}

// Handle processes one inbound conversation turn and returns the
// replies to send back.
func (m *Machine) Handle(ctx context.Context, conversationID, text string) ([]string, error) {
	s, err := m.sessions.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if s.State == "" {
		s.State = string(StateMenu)
	}

	fn, ok := steps[State(s.State)]
	if !ok {
		// A stale session from an older deployment; start over.
		*s = session.Session{State: string(StateMenu)}
		fn = steps[StateMenu]
	}

	replies := fn(ctx, m, s, strings.TrimSpace(text))

	if err := m.sessions.Save(ctx, conversationID, s); err != nil {
		return nil, err
	}
	return replies, nil
}

// transition moves the session to a state and returns the messages to
// show, ending with the new state's prompt when it has one.
func transition(s *session.Session, next State, messages ...string) []string {
	s.State = string(next)
	if prompt, ok := prompts[next]; ok {
		messages = append(messages, prompt)
	}
	return messages
}

// retry keeps the session in its current state and re-asks only the
// failing step, preserving every field already validated.
func retry(s *session.Session, message string) []string {
	replies := []string{message}
	if prompt, ok := prompts[State(s.State)]; ok {
		replies = append(replies, prompt)
	}
	return replies
}

// abort drops the flow state and returns to the menu.
func abort(s *session.Session, messages ...string) []string {
	*s = session.Session{State: string(StateMenu)}
	return messages
}
