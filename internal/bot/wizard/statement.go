package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mall/internal/bot/client"
	"mall/internal/bot/session"
	"mall/internal/validation"
)

func handleStatementCardNumber(ctx context.Context, m *Machine, s *session.Session, input string) []string {
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

	s.CardNumber = number
	s.CardID = card.ID
	s.CardPrintedName = card.PrintedName
	return transition(s, StateStatementPrintedName)
}

func handleStatementPrintedName(_ context.Context, _ *Machine, s *session.Session, input string) []string {
	if !validation.PrintedName(input) {
		return retry(s, "Por favor, digite o nome completo como aparece no cartão.")
	}
	if !validation.PrintedNameMatches(input, s.CardPrintedName) {
		return retry(s, "O nome impresso no cartão não confere com os dados cadastrados.")
	}
	return transition(s, StateStatementExpiry)
}

func handleStatementExpiry(_ context.Context, _ *Machine, s *session.Session, input string) []string {
	if !validation.Expiry(input) {
		return retry(s, "Data de validade inválida ou cartão vencido. Use o formato MM/AAAA e certifique-se de que o cartão não está vencido.")
	}
	s.Expiry = strings.TrimSpace(input)
	return transition(s, StateStatementCVV)
}

func handleStatementCVV(ctx context.Context, m *Machine, s *session.Session, input string) []string {
	if !validation.CVV(input) {
		return retry(s, "CVV inválido. Digite 3 ou 4 dígitos.")
	}
	return m.showStatement(ctx, s)
}

// showStatement is the terminal statement step: it only reads existing
// orders, never creating new state.
func (m *Machine) showStatement(ctx context.Context, s *session.Session) []string {
	orders, err := m.backend.ListOrdersByCard(ctx, s.CardID)
	if err != nil {
		return abort(s, "Não foi possível consultar o extrato no momento. Tente novamente mais tarde.")
	}
	if len(orders) == 0 {
		return abort(s, "Nenhuma compra encontrada para este cartão.")
	}

	var b strings.Builder
	b.WriteString("Extrato de compras:\n")
	for _, o := range orders {
		fmt.Fprintf(&b, "• Pedido #%d — %s — R$ %s — %s (%s)\n",
			o.ID, o.ProductName, o.Total.StringFixed(2), o.Status,
			o.OrderDate.Format("02/01/2006"))
	}
	return abort(s, b.String())
}
