// Package bot exposes the conversational surface: one message
// endpoint that feeds turns into the wizard machine.
package bot

import (
	"log"

	"mall/internal/bot/wizard"
	"mall/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// Message is one inbound conversation turn.
type Message struct {
	ConversationID string `json:"conversation_id"`
	Text           string `json:"text"`
}

// MessageHandler routes conversation turns to the wizard.
type MessageHandler struct {
	machine *wizard.Machine
}

func NewMessageHandler(machine *wizard.Machine) *MessageHandler {
	return &MessageHandler{machine: machine}
}

// Post handles POST /api/messages.
func (h *MessageHandler) Post(c *fiber.Ctx) error {
	var msg Message
	if err := c.BodyParser(&msg); err != nil {
		return response.BadRequest(c, "Dados JSON inválidos")
	}
	if msg.ConversationID == "" {
		return response.BadRequest(c, "O campo 'conversation_id' é obrigatório")
	}

	replies, err := h.machine.Handle(c.Context(), msg.ConversationID, msg.Text)
	if err != nil {
		log.Printf("failed to handle turn for conversation %s: %v", msg.ConversationID, err)
		return response.ServerError(c, "Desculpe, ocorreu um erro. Tente novamente.")
	}

	return c.JSON(fiber.Map{"replies": replies})
}
