package wizard

import (
	"context"
	"strings"
	"testing"

	"mall/internal/bot/client"
	"mall/internal/bot/session"
	"mall/internal/models"
	"mall/internal/services/authorization"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend lets each test plug in just the calls its flow reaches.
type fakeBackend struct {
	findUserByCPF    func(cpf string) (*models.User, error)
	getCardByNumber  func(number string) (*models.Card, error)
	listProducts     func() ([]models.Product, error)
	getProduct       func(id string) (*models.Product, error)
	authorize        func(userID uint, req authorization.Request) (*authorization.Result, error)
	createOrder      func(input models.CreateOrderInput) (*models.Order, error)
	listOrdersByCard func(cardID uint) ([]models.Order, error)
	createEnrollment func(input models.CreateEnrollmentInput) (*models.Enrollment, error)
}

func (f *fakeBackend) FindUserByCPF(_ context.Context, cpf string) (*models.User, error) {
	return f.findUserByCPF(cpf)
}

func (f *fakeBackend) GetCardByNumber(_ context.Context, number string) (*models.Card, error) {
	return f.getCardByNumber(number)
}

func (f *fakeBackend) ListProducts(_ context.Context) ([]models.Product, error) {
	return f.listProducts()
}

func (f *fakeBackend) GetProduct(_ context.Context, id string) (*models.Product, error) {
	return f.getProduct(id)
}

func (f *fakeBackend) Authorize(_ context.Context, userID uint, req authorization.Request) (*authorization.Result, error) {
	return f.authorize(userID, req)
}

func (f *fakeBackend) CreateOrder(_ context.Context, input models.CreateOrderInput) (*models.Order, error) {
	return f.createOrder(input)
}

func (f *fakeBackend) ListOrdersByCard(_ context.Context, cardID uint) ([]models.Order, error) {
	return f.listOrdersByCard(cardID)
}

func (f *fakeBackend) CreateEnrollment(_ context.Context, input models.CreateEnrollmentInput) (*models.Enrollment, error) {
	return f.createEnrollment(input)
}

// memoryStore is an in-process SessionStore for tests.
type memoryStore struct {
	sessions map[string]session.Session
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string]session.Session)}
}

func (s *memoryStore) Get(_ context.Context, conversationID string) (*session.Session, error) {
	sess := s.sessions[conversationID]
	return &sess, nil
}

func (s *memoryStore) Save(_ context.Context, conversationID string, sess *session.Session) error {
	s.sessions[conversationID] = *sess
	return nil
}

func (s *memoryStore) Clear(_ context.Context, conversationID string) error {
	delete(s.sessions, conversationID)
	return nil
}

func (s *memoryStore) state(conversationID string) State {
	return State(s.sessions[conversationID].State)
}

var testProduct = models.Product{
	ID:       "prod-1",
	Category: "eletronicos",
	Name:     "Notebook Gamer",
	Price:    decimal.RequireFromString("4500.00"),
}

func purchaseBackend() *fakeBackend {
	return &fakeBackend{
		findUserByCPF: func(cpf string) (*models.User, error) {
			if cpf == "529.982.247-25" || cpf == "52998224725" {
				return &models.User{ID: 1, Name: "Ana Silva"}, nil
			}
			return nil, client.ErrNotFound
		},
		getCardByNumber: func(number string) (*models.Card, error) {
			if number == "1111222233334444" {
				return &models.Card{ID: 7, UserID: 1, Number: number, PrintedName: "Ana Silva"}, nil
			}
			return nil, client.ErrNotFound
		},
		getProduct: func(id string) (*models.Product, error) {
			if id == testProduct.ID {
				p := testProduct
				return &p, nil
			}
			return nil, client.ErrNotFound
		},
		authorize: func(userID uint, req authorization.Request) (*authorization.Result, error) {
			code := uuid.New()
			return &authorization.Result{
				Status:  authorization.StatusAuthorized,
				Code:    &code,
				Message: "Compra autorizada",
			}, nil
		},
		createOrder: func(input models.CreateOrderInput) (*models.Order, error) {
			return &models.Order{ID: 42, UserID: input.UserID, CardID: input.CardID}, nil
		},
	}
}

func say(t *testing.T, m *Machine, conversationID, text string) []string {
	t.Helper()
	replies, err := m.Handle(context.Background(), conversationID, text)
	require.NoError(t, err)
	require.NotEmpty(t, replies)
	return replies
}

func TestHandle_UnknownInputShowsMenu(t *testing.T) {
	store := newMemoryStore()
	m := NewMachine(&fakeBackend{}, store, nil)

	replies := say(t, m, "c1", "bom dia")

	assert.Equal(t, "Desculpe, não entendi.", replies[0])
	assert.Contains(t, replies[1], "comprar <id do produto>")
	assert.Equal(t, StateMenu, store.state("c1"))
}

func TestHandle_FAQAnswer(t *testing.T) {
	m := NewMachine(&fakeBackend{}, newMemoryStore(), nil)

	replies := say(t, m, "c1", "como emitir boleto?")

	assert.Equal(t, []string{"Acesse o portal do aluno e clique em 'Financeiro'."}, replies)
}

func TestHandle_ListProducts(t *testing.T) {
	backend := &fakeBackend{
		listProducts: func() ([]models.Product, error) {
			return []models.Product{testProduct}, nil
		},
	}
	m := NewMachine(backend, newMemoryStore(), nil)

	replies := say(t, m, "c1", "produtos")

	assert.Contains(t, replies[0], "Notebook Gamer")
	assert.Contains(t, replies[0], "4500.00")
	assert.Contains(t, replies[0], "prod-1")
}

func TestHandle_PurchaseHappyPath(t *testing.T) {
	store := newMemoryStore()
	m := NewMachine(purchaseBackend(), store, nil)
	ctx := "c1"

	replies := say(t, m, ctx, "comprar prod-1")
	assert.Contains(t, replies[0], "Você escolheu Notebook Gamer")
	assert.Equal(t, StatePurchaseTaxID, store.state(ctx))

	replies = say(t, m, ctx, "529.982.247-25")
	assert.Contains(t, replies[0], "Seja bem-vindo(a) Ana Silva!")
	assert.Equal(t, StatePurchaseCardNumber, store.state(ctx))

	say(t, m, ctx, "1111 2222 3333 4444")
	assert.Equal(t, StatePurchasePrintedName, store.state(ctx))

	say(t, m, ctx, "ANA SILVA")
	assert.Equal(t, StatePurchaseExpiry, store.state(ctx))

	say(t, m, ctx, "12/2031")
	assert.Equal(t, StatePurchaseCVV, store.state(ctx))

	replies = say(t, m, ctx, "123")
	require.Len(t, replies, 2)
	assert.Contains(t, replies[0], "Processando sua compra")
	receipt := replies[1]
	assert.Contains(t, receipt, "Compra Realizada com Sucesso")
	assert.Contains(t, receipt, "Notebook Gamer")
	assert.Contains(t, receipt, "Pedido: #42")
	assert.Contains(t, receipt, "Cliente: Ana Silva")

	// The flow is done; the conversation is back at the menu.
	assert.Equal(t, StateMenu, store.state(ctx))
}

func TestHandle_InvalidInputRepromptsSameStep(t *testing.T) {
	store := newMemoryStore()
	m := NewMachine(purchaseBackend(), store, nil)
	ctx := "c1"

	say(t, m, ctx, "comprar prod-1")

	replies := say(t, m, ctx, "123")
	assert.Contains(t, replies[0], "CPF inválido")
	assert.Equal(t, StatePurchaseTaxID, store.state(ctx))
	// The chosen product survives the failed attempt.
	assert.Equal(t, "prod-1", store.sessions[ctx].ProductID)

	replies = say(t, m, ctx, "111.111.111-11")
	assert.Contains(t, replies[0], "CPF inválido")
	assert.Equal(t, StatePurchaseTaxID, store.state(ctx))

	// A valid CPF moves on with nothing lost.
	say(t, m, ctx, "529.982.247-25")
	assert.Equal(t, StatePurchaseCardNumber, store.state(ctx))
	assert.Equal(t, uint(1), store.sessions[ctx].UserID)
}

func TestHandle_CardOwnershipCheck(t *testing.T) {
	backend := purchaseBackend()
	backend.getCardByNumber = func(number string) (*models.Card, error) {
		return &models.Card{ID: 9, UserID: 2, Number: number, PrintedName: "Outra Pessoa"}, nil
	}
	store := newMemoryStore()
	m := NewMachine(backend, store, nil)
	ctx := "c1"

	say(t, m, ctx, "comprar prod-1")
	say(t, m, ctx, "529.982.247-25")

	replies := say(t, m, ctx, "1111222233334444")
	assert.Contains(t, replies[0], "não pertence ao usuário")
	assert.Equal(t, StatePurchaseCardNumber, store.state(ctx))
}

func TestHandle_PrintedNameMismatchReprompts(t *testing.T) {
	store := newMemoryStore()
	m := NewMachine(purchaseBackend(), store, nil)
	ctx := "c1"

	say(t, m, ctx, "comprar prod-1")
	say(t, m, ctx, "529.982.247-25")
	say(t, m, ctx, "1111222233334444")

	replies := say(t, m, ctx, "Maria Souza")
	assert.Contains(t, replies[0], "não confere")
	assert.Equal(t, StatePurchasePrintedName, store.state(ctx))
	// Card data collected earlier is kept for the retry.
	assert.Equal(t, "1111222233334444", store.sessions[ctx].CardNumber)
	assert.Equal(t, uint(7), store.sessions[ctx].CardID)
}

func TestHandle_DeclinedPaymentAbortsToMenu(t *testing.T) {
	backend := purchaseBackend()
	backend.authorize = func(userID uint, req authorization.Request) (*authorization.Result, error) {
		return &authorization.Result{
			Status:  authorization.StatusNotAuthorized,
			Message: "Saldo insuficiente",
		}, nil
	}
	store := newMemoryStore()
	m := NewMachine(backend, store, nil)
	ctx := "c1"

	say(t, m, ctx, "comprar prod-1")
	say(t, m, ctx, "529.982.247-25")
	say(t, m, ctx, "1111222233334444")
	say(t, m, ctx, "Ana Silva")
	say(t, m, ctx, "12/2031")

	replies := say(t, m, ctx, "123")
	require.Len(t, replies, 2)
	assert.Equal(t, "Pagamento não autorizado: Saldo insuficiente", replies[1])
	assert.Equal(t, StateMenu, store.state(ctx))
	assert.Empty(t, store.sessions[ctx].ProductID)
}

func TestHandle_OrderCreationFailureReported(t *testing.T) {
	backend := purchaseBackend()
	backend.createOrder = func(input models.CreateOrderInput) (*models.Order, error) {
		return nil, assert.AnError
	}
	store := newMemoryStore()
	m := NewMachine(backend, store, nil)
	ctx := "c1"

	say(t, m, ctx, "comprar prod-1")
	say(t, m, ctx, "529.982.247-25")
	say(t, m, ctx, "1111222233334444")
	say(t, m, ctx, "Ana Silva")
	say(t, m, ctx, "12/2031")

	replies := say(t, m, ctx, "123")
	assert.Equal(t, "Erro ao registrar o pedido.", replies[len(replies)-1])
	assert.Equal(t, StateMenu, store.state(ctx))
}

func TestHandle_UnknownProduct(t *testing.T) {
	m := NewMachine(purchaseBackend(), newMemoryStore(), nil)

	replies := say(t, m, "c1", "comprar nope")

	assert.Contains(t, replies[0], "Produto não encontrado")
}

func TestHandle_StatementFlow(t *testing.T) {
	backend := purchaseBackend()
	backend.listOrdersByCard = func(cardID uint) ([]models.Order, error) {
		assert.Equal(t, uint(7), cardID)
		return []models.Order{
			{ID: 42, ProductName: "Notebook Gamer", Total: decimal.RequireFromString("4500.00"), Status: "Confirmado"},
		}, nil
	}
	store := newMemoryStore()
	m := NewMachine(backend, store, nil)
	ctx := "c1"

	say(t, m, ctx, "extrato")
	assert.Equal(t, StateStatementCardNumber, store.state(ctx))

	say(t, m, ctx, "1111222233334444")
	say(t, m, ctx, "Ana Silva")
	say(t, m, ctx, "12/2031")

	replies := say(t, m, ctx, "123")
	statement := strings.Join(replies, "\n")
	assert.Contains(t, statement, "Extrato de compras")
	assert.Contains(t, statement, "Pedido #42")
	assert.Contains(t, statement, "Notebook Gamer")
	assert.Equal(t, StateMenu, store.state(ctx))
}

func TestHandle_StatementEmpty(t *testing.T) {
	backend := purchaseBackend()
	backend.listOrdersByCard = func(cardID uint) ([]models.Order, error) {
		return nil, nil
	}
	store := newMemoryStore()
	m := NewMachine(backend, store, nil)
	ctx := "c1"

	say(t, m, ctx, "extrato")
	say(t, m, ctx, "1111222233334444")
	say(t, m, ctx, "Ana Silva")
	say(t, m, ctx, "12/2031")

	replies := say(t, m, ctx, "123")
	assert.Equal(t, []string{"Nenhuma compra encontrada para este cartão."}, replies)
}

func TestHandle_EnrollmentFlow(t *testing.T) {
	backend := &fakeBackend{
		createEnrollment: func(input models.CreateEnrollmentInput) (*models.Enrollment, error) {
			assert.Equal(t, "Ana Silva", input.Name)
			assert.Equal(t, "ana@x.com", input.Email)
			assert.Equal(t, "Direito", input.Course)
			return &models.Enrollment{ID: 5, Name: input.Name, Email: input.Email, Course: input.Course}, nil
		},
	}
	store := newMemoryStore()
	m := NewMachine(backend, store, nil)
	ctx := "c1"

	say(t, m, ctx, "quero me matricular")
	assert.Equal(t, StateEnrollName, store.state(ctx))

	say(t, m, ctx, "Ana Silva")
	assert.Equal(t, StateEnrollEmail, store.state(ctx))

	replies := say(t, m, ctx, "ana@x.com")
	assert.Contains(t, strings.Join(replies, "\n"), "Direito")
	assert.Equal(t, StateEnrollCourse, store.state(ctx))

	// Course matching is case insensitive.
	replies = say(t, m, ctx, "direito")
	assert.Contains(t, replies[0], "Confirme seus dados")
	assert.Equal(t, StateEnrollConfirm, store.state(ctx))

	replies = say(t, m, ctx, "sim")
	assert.Contains(t, replies[0], "Matrícula realizada com sucesso")
	assert.Contains(t, replies[0], "Protocolo: 5")
	assert.Equal(t, StateMenu, store.state(ctx))
}

func TestHandle_EnrollmentCancelled(t *testing.T) {
	store := newMemoryStore()
	m := NewMachine(&fakeBackend{}, store, nil)
	ctx := "c1"

	say(t, m, ctx, "matricula")
	say(t, m, ctx, "Ana Silva")
	say(t, m, ctx, "ana@x.com")
	say(t, m, ctx, "Medicina")

	replies := say(t, m, ctx, "não")
	assert.Equal(t, []string{"Matrícula cancelada."}, replies)
	assert.Equal(t, StateMenu, store.state(ctx))
}

func TestHandle_EnrollmentDuplicateEmail(t *testing.T) {
	backend := &fakeBackend{
		createEnrollment: func(input models.CreateEnrollmentInput) (*models.Enrollment, error) {
			return nil, client.ErrConflict
		},
	}
	store := newMemoryStore()
	m := NewMachine(backend, store, nil)
	ctx := "c1"

	say(t, m, ctx, "matricula")
	say(t, m, ctx, "Ana Silva")
	say(t, m, ctx, "ana@x.com")
	say(t, m, ctx, "Medicina")

	replies := say(t, m, ctx, "sim")
	assert.Equal(t, []string{"Este email já possui uma matrícula cadastrada."}, replies)
	assert.Equal(t, StateMenu, store.state(ctx))
}

func TestHandle_EnrollmentUnknownCourseReprompts(t *testing.T) {
	store := newMemoryStore()
	m := NewMachine(&fakeBackend{}, store, nil)
	ctx := "c1"

	say(t, m, ctx, "matricula")
	say(t, m, ctx, "Ana Silva")
	say(t, m, ctx, "ana@x.com")

	replies := say(t, m, ctx, "Astrologia")
	assert.Contains(t, replies[0], "Curso não disponível")
	assert.Equal(t, StateEnrollCourse, store.state(ctx))
	assert.Equal(t, "ana@x.com", store.sessions[ctx].Email)
}

func TestHandle_StaleStateResetsToMenu(t *testing.T) {
	store := newMemoryStore()
	store.sessions["c1"] = session.Session{State: "old_state_gone"}
	m := NewMachine(&fakeBackend{}, store, nil)

	replies := say(t, m, "c1", "ajuda")

	assert.Equal(t, []string{menuText}, replies)
	assert.Equal(t, StateMenu, store.state("c1"))
}
