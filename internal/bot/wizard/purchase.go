package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mall/internal/bot/client"
	"mall/internal/bot/session"
	"mall/internal/models"
	"mall/internal/services/authorization"
	"mall/internal/validation"
)

func handlePurchaseTaxID(ctx context.Context, m *Machine, s *session.Session, input string) []string {
	if !validation.CPF(input) {
		return retry(s, "CPF inválido. Por favor, digite um CPF válido.")
	}

	user, err := m.backend.FindUserByCPF(ctx, input)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return retry(s, "CPF não encontrado no sistema. Verifique se o CPF está correto ou entre em contato conosco para cadastro.")
		}
		return abort(s, "Não foi possível validar o CPF no momento. Tente novamente mais tarde.")
	}

	s.CPF = validation.Digits(input)
	s.UserID = user.ID
	s.UserName = user.Name
	welcome := fmt.Sprintf("Seja bem-vindo(a) %s!", user.Name)
	return transition(s, StatePurchaseCardNumber, welcome)
}

func handlePurchaseCardNumber(ctx context.Context, m *Machine, s *session.Session, input string) []string {
	number := strings.ReplaceAll(input, " ", "")
	if !validation.CardNumber(number) {
		return retry(s, "Número de cartão inválido. O cartão deve ter exatamente 16 dígitos.")
	}

	card, err := m.backend.GetCardByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return retry(s, "Cartão não encontrado no sistema. Verifique o número e tente novamente.")
		}
		return abort(s, "Não foi possível consultar o cartão no momento. Tente novamente mais tarde.")
	}
	if card.UserID != s.UserID {
		return retry(s, "Este cartão não pertence ao usuário informado.")
	}

	s.CardNumber = number
	s.CardID = card.ID
	s.CardPrintedName = card.PrintedName
	return transition(s, StatePurchasePrintedName)
}

func handlePurchasePrintedName(_ context.Context, _ *Machine, s *session.Session, input string) []string {
	if !validation.PrintedName(input) {
		return retry(s, "Por favor, digite o nome completo como aparece no cartão.")
	}
	if !validation.PrintedNameMatches(input, s.CardPrintedName) {
		return retry(s, "O nome impresso no cartão não confere com os dados cadastrados. Verifique e tente novamente.")
	}
	return transition(s, StatePurchaseExpiry)
}

func handlePurchaseExpiry(_ context.Context, _ *Machine, s *session.Session, input string) []string {
	if !validation.Expiry(input) {
		return retry(s, "Data de validade inválida ou cartão vencido. Use o formato MM/AAAA e certifique-se de que o cartão não está vencido.")
	}
	s.Expiry = strings.TrimSpace(input)
	return transition(s, StatePurchaseCVV)
}

func handlePurchaseCVV(ctx context.Context, m *Machine, s *session.Session, input string) []string {
	if !validation.CVV(input) {
		return retry(s, "CVV inválido. Digite 3 ou 4 dígitos.")
	}
	return m.processPurchase(ctx, s, input)
}

// processPurchase is the terminal purchase step: authorize the debit,
// then create the order. The two calls are independent; a failed order
// creation after a successful debit is reported but not reversed.
func (m *Machine) processPurchase(ctx context.Context, s *session.Session, cvv string) []string {
	processing := "Processando sua compra... Por favor, aguarde."

	product, err := m.backend.GetProduct(ctx, s.ProductID)
	if err != nil {
		return abort(s, processing, "Erro: Produto não encontrado. Tente novamente.")
	}

	result, err := m.backend.Authorize(ctx, s.UserID, authorization.Request{
		Number: s.CardNumber,
		CVV:    cvv,
		Expiry: s.Expiry,
		Amount: product.Price,
	})
	if err != nil {
		return abort(s, processing, "Pagamento não autorizado: Erro na comunicação com o banco")
	}
	if !result.Authorized() {
		return abort(s, processing, "Pagamento não autorizado: "+result.Message)
	}

	order, err := m.backend.CreateOrder(ctx, models.CreateOrderInput{
		UserID:    s.UserID,
		ProductID: product.ID,
		Total:     product.Price,
		CardID:    s.CardID,
	})
	if err != nil {
		return abort(s, processing, "Erro ao registrar o pedido.")
	}

	code := "N/A"
	if result.Code != nil {
		code = result.Code.String()
	}
	receipt := fmt.Sprintf(
		"✅ Compra Realizada com Sucesso!\n"+
			"Produto: %s\n"+
			"Valor: R$ %s\n"+
			"Pedido: #%d\n"+
			"Autorização: %s\n"+
			"Cliente: %s",
		product.Name, product.Price.StringFixed(2), order.ID, code, s.UserName,
	)
	return abort(s, processing, receipt)
}
