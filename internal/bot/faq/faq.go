// Package faq answers frequently asked questions from a static
// keyword table built once at process start. The table is never
// mutated afterwards.
package faq

import "strings"

// Table maps known questions to canned answers.
type Table struct {
	entries map[string]string
}

// Default builds the standard FAQ table.
func Default() *Table {
	return New(map[string]string{
		"qual o calendário acadêmico?": "O calendário está disponível em: www.exemplo.edu/calendario",
		"como emitir boleto?":          "Acesse o portal do aluno e clique em 'Financeiro'.",
		"quais os horários de aula?":   "De segunda a sexta, das 19h às 22h.",
		"secretaria":                   "secretaria@exemplo.edu",
		"calendario":                   "O calendário está disponível em: www.exemplo.edu/calendario",
		"boleto":                       "Acesse o portal do aluno e clique em 'Financeiro'.",
		"horarios":                     "De segunda a sexta, das 19h às 22h.",
	})
}

// New builds a table from a question → answer mapping.
func New(entries map[string]string) *Table {
	copied := make(map[string]string, len(entries))
	for q, a := range entries {
		copied[strings.ToLower(strings.TrimSpace(q))] = a
	}
	return &Table{entries: copied}
}

var questionWords = map[string]bool{
	"qual":   true,
	"como":   true,
	"quais":  true,
	"onde":   true,
	"quando": true,
}

// Answer looks the message up: first an exact match, then by keyword
// containment against each known question.
func (t *Table) Answer(message string) (string, bool) {
	message = strings.ToLower(strings.TrimSpace(message))
	if message == "" {
		return "", false
	}

	if answer, ok := t.entries[message]; ok {
		return answer, true
	}

	for question, answer := range t.entries {
		if containsKeyword(message, question) {
			return answer, true
		}
	}
	return "", false
}

func containsKeyword(message, question string) bool {
	for _, word := range strings.Fields(question) {
		word = strings.Trim(word, "?.,!")
		if len(word) <= 3 || questionWords[word] {
			continue
		}
		if strings.Contains(message, word) {
			return true
		}
	}
	return false
}
