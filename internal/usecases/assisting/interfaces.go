package assisting

import (
	"context"

	"github.com/nachobar3/perfectstore-app/internal/domain"
)

// Assister atiende la conversación del asistente comercial.
type Assister interface {
	// Chat arma el contexto de negocio del momento, lo inyecta en las
	// instrucciones de sistema y reenvía la conversación completa al
	// gateway. Devuelve la respuesta del asistente como texto.
	Chat(ctx context.Context, messages []domain.ChatMessage) (string, error)
}
