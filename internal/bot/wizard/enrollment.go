package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mall/internal/bot/client"
	"mall/internal/bot/session"
	"mall/internal/models"
	"mall/internal/validation"
)

func handleEnrollName(_ context.Context, _ *Machine, s *session.Session, input string) []string {
	if !validation.PrintedName(input) {
		return retry(s, "Por favor, digite seu nome completo (mínimo 2 palavras).")
	}
	s.Name = strings.TrimSpace(input)
	greeting := fmt.Sprintf("Perfeito, %s!", s.Name)
	return transition(s, StateEnrollEmail, greeting)
}

func handleEnrollEmail(_ context.Context, m *Machine, s *session.Session, input string) []string {
	if !validation.Email(strings.TrimSpace(input)) {
		return retry(s, "Por favor, digite um email válido (exemplo: seuemail@exemplo.com).")
	}
	s.Email = strings.TrimSpace(input)
	return transition(s, StateEnrollCourse, m.courseList())
}

func handleEnrollCourse(_ context.Context, m *Machine, s *session.Session, input string) []string {
	course, ok := m.matchCourse(input)
	if !ok {
		return retry(s, "Curso não disponível.\n"+m.courseList())
	}
	s.Course = course

	summary := fmt.Sprintf(
		"Confirme seus dados:\nNome: %s\nEmail: %s\nCurso: %s\n\nDigite 'sim' para confirmar ou 'não' para cancelar.",
		s.Name, s.Email, s.Course,
	)
	return transition(s, StateEnrollConfirm, summary)
}

func handleEnrollConfirm(ctx context.Context, m *Machine, s *session.Session, input string) []string {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "sim", "s":
		return m.submitEnrollment(ctx, s)
	case "não", "nao", "n":
		return abort(s, "Matrícula cancelada.")
	default:
		return retry(s, "Digite 'sim' para confirmar ou 'não' para cancelar.")
	}
}

func (m *Machine) submitEnrollment(ctx context.Context, s *session.Session) []string {
	enrollment, err := m.backend.CreateEnrollment(ctx, models.CreateEnrollmentInput{
		Name:   s.Name,
		Email:  s.Email,
		Course: s.Course,
	})
	if err != nil {
		if errors.Is(err, client.ErrConflict) {
			return abort(s, "Este email já possui uma matrícula cadastrada.")
		}
		return abort(s, "Não foi possível concluir a matrícula no momento. Tente novamente mais tarde.")
	}

	confirmation := fmt.Sprintf(
		"✅ Matrícula realizada com sucesso!\nProtocolo: %d\nCurso: %s\nEm breve você receberá mais informações no email %s.",
		enrollment.ID, enrollment.Course, enrollment.Email,
	)
	return abort(s, confirmation)
}

func (m *Machine) matchCourse(input string) (string, bool) {
	wanted := strings.ToLower(strings.TrimSpace(input))
	for _, course := range m.courses {
		if strings.ToLower(course) == wanted {
			return course, true
		}
	}
	return "", false
}

func (m *Machine) courseList() string {
	var b strings.Builder
	b.WriteString("Cursos disponíveis:\n")
	for _, course := range m.courses {
		b.WriteString("• " + course + "\n")
	}
	b.WriteString("Digite o nome do curso desejado:")
	return b.String()
}
