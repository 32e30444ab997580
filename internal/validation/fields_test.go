package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCardNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"sixteen digits", "1111222233334444", true},
		{"fifteen digits", "111122223333444", false},
		{"seventeen digits", "11112222333344445", false},
		{"letters mixed in", "1111a22233334444", false},
		{"empty", "", false},
		{"digits with spaces", "1111 2222 3333 4444", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CardNumber(tt.input))
		})
	}
}

func TestCVV(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"three digits", "123", true},
		{"four digits", "1234", true},
		{"two digits", "12", false},
		{"five digits", "12345", false},
		{"letters", "12a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CVV(tt.input))
		})
	}
}

func TestCPF(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"eleven digits", "12345678901", true},
		{"formatted", "123.456.789-01", true},
		{"ten digits", "1234567890", false},
		{"twelve digits", "123456789012", false},
		{"all identical", "11111111111", false},
		{"all identical formatted", "111.111.111-11", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CPF(tt.input))
		})
	}
}

func TestPrintedName(t *testing.T) {
	assert.True(t, PrintedName("Ana Silva"))
	assert.True(t, PrintedName("  Ana   Maria   Silva  "))
	assert.False(t, PrintedName("Ana"))
	assert.False(t, PrintedName(""))
	assert.False(t, PrintedName("   "))
}

func TestPrintedNameMatches(t *testing.T) {
	tests := []struct {
		name     string
		supplied string
		stored   string
		want     bool
	}{
		{"exact", "Ana Silva", "Ana Silva", true},
		{"case insensitive", "ANA SILVA", "ana silva", true},
		{"extra whitespace", "  Ana   Silva ", "Ana Silva", true},
		{"different name", "Ana Souza", "Ana Silva", false},
		{"missing token", "Ana", "Ana Silva", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrintedNameMatches(tt.supplied, tt.stored))
		})
	}
}

func TestParseExpiry(t *testing.T) {
	normalized, err := ParseExpiry("12/2026")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), normalized)

	normalized, err = ParseExpiry("02/2024")
	assert.NoError(t, err)
	// 2024 is a leap year.
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), normalized)

	for _, input := range []string{"13/2026", "00/2026", "1/2026", "12-2026", "12/26", "abc", ""} {
		_, err := ParseExpiry(input)
		assert.ErrorIs(t, err, ErrInvalidExpiry, "input %q", input)
	}
}

func TestExpiryAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"future year", "12/2026", true},
		{"current month", "06/2025", true},
		{"previous month", "05/2025", false},
		{"past year", "01/2020", false},
		{"bad format", "6/2025", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpiryAt(tt.input, now))
		})
	}
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("ana@x.com"))
	assert.True(t, Email("ana.silva@exemplo.edu.br"))
	assert.False(t, Email("ana@x"))
	assert.False(t, Email("ana x@x.com"))
	assert.False(t, Email("ana.x.com"))
}

func TestValidator(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())

	v.Required("nome", "  ")
	assert.False(t, v.Valid())
	assert.Equal(t, "O campo 'nome' é obrigatório", v.First())

	v2 := New()
	v2.Required("nome", "Ana Silva")
	assert.True(t, v2.Valid())
	assert.Empty(t, v2.First())
}
