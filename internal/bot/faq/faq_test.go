package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswer_ExactMatch(t *testing.T) {
	table := Default()

	answer, ok := table.Answer("Como emitir boleto?")
	assert.True(t, ok)
	assert.Equal(t, "Acesse o portal do aluno e clique em 'Financeiro'.", answer)

	answer, ok = table.Answer("  QUAL O CALENDÁRIO ACADÊMICO?  ")
	assert.True(t, ok)
	assert.Equal(t, "O calendário está disponível em: www.exemplo.edu/calendario", answer)
}

func TestAnswer_KeywordMatch(t *testing.T) {
	table := Default()

	answer, ok := table.Answer("preciso do boleto da mensalidade")
	assert.True(t, ok)
	assert.Equal(t, "Acesse o portal do aluno e clique em 'Financeiro'.", answer)

	answer, ok = table.Answer("falar com a secretaria")
	assert.True(t, ok)
	assert.Equal(t, "secretaria@exemplo.edu", answer)
}

func TestAnswer_QuestionWordsAreNotKeywords(t *testing.T) {
	table := New(map[string]string{
		"qual o telefone?": "(11) 5555-0100",
	})

	// "qual" alone must not trigger the entry.
	_, ok := table.Answer("qual é o seu nome")
	assert.False(t, ok)

	answer, ok := table.Answer("me passa o telefone da loja")
	assert.True(t, ok)
	assert.Equal(t, "(11) 5555-0100", answer)
}

func TestAnswer_NoMatch(t *testing.T) {
	table := Default()

	_, ok := table.Answer("bom dia")
	assert.False(t, ok)

	_, ok = table.Answer("")
	assert.False(t, ok)

	_, ok = table.Answer("   ")
	assert.False(t, ok)
}
