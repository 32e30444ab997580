package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mall/internal/bot/client"
	"mall/internal/bot/session"
)

const menuText = "Posso ajudar com:\n" +
	"• produtos — ver o catálogo\n" +
	"• comprar <id do produto> — comprar um produto\n" +
	"• extrato — consultar as compras do seu cartão\n" +
	"• matrícula — realizar uma matrícula\n" +
	"Ou envie sua dúvida."

var enrollmentKeywords = []string{
	"quero me matricular",
	"matricula",
	"matrícula",
	"inscrever",
	"inscrição",
	"fazer matricula",
	"realizar matricula",
	"me matricular",
	"nova matricula",
	"iniciar matricula",
}

func handleMenu(ctx context.Context, m *Machine, s *session.Session, input string) []string {
	message := strings.ToLower(input)

	switch {
	case message == "produtos" || message == "consultar produtos":
		return m.listProducts(ctx)

	case strings.HasPrefix(message, "comprar "):
		productID := strings.TrimSpace(input[len("comprar "):])
		return m.startPurchase(ctx, s, productID)

	case message == "extrato":
		return transition(s, StateStatementCardNumber)

	case isEnrollmentRequest(message):
		return transition(s, StateEnrollName)

	case message == "menu" || message == "ajuda":
		return []string{menuText}
	}

	if answer, ok := m.faq.Answer(message); ok {
		return []string{answer}
	}
	return []string{"Desculpe, não entendi.", menuText}
}

func (m *Machine) listProducts(ctx context.Context) []string {
	products, err := m.backend.ListProducts(ctx)
	if err != nil {
		return []string{"Não foi possível consultar o catálogo no momento. Tente novamente mais tarde."}
	}
	if len(products) == 0 {
		return []string{"Nenhum produto disponível no momento."}
	}

	var b strings.Builder
	b.WriteString("Produtos disponíveis:\n")
	for _, p := range products {
		fmt.Fprintf(&b, "• %s — R$ %s (id: %s)\n", p.Name, p.Price.StringFixed(2), p.ID)
	}
	b.WriteString("Para comprar, digite: comprar <id do produto>")
	return []string{b.String()}
}

func (m *Machine) startPurchase(ctx context.Context, s *session.Session, productID string) []string {
	if productID == "" {
		return []string{"Informe o produto: comprar <id do produto>"}
	}

	product, err := m.backend.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return []string{"Produto não encontrado. Digite 'produtos' para ver o catálogo."}
		}
		return []string{"Não foi possível consultar o produto no momento. Tente novamente mais tarde."}
	}

	s.ProductID = product.ID
	welcome := fmt.Sprintf("Você escolheu %s por R$ %s.", product.Name, product.Price.StringFixed(2))
	return transition(s, StatePurchaseTaxID, welcome)
}

func isEnrollmentRequest(message string) bool {
	for _, keyword := range enrollmentKeywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	return false
}
