// Package assistant envuelve el cliente de OpenAI detrás de una interfaz
// chica. El gateway no conoce el negocio: recibe las instrucciones y los
// turnos de conversación ya armados y devuelve texto.
package assistant

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/nachobar3/perfectstore-app/internal/config"
	"github.com/nachobar3/perfectstore-app/internal/domain"
)

type Gateway interface {
	// Generate envía las instrucciones de sistema más la conversación
	// completa y devuelve la respuesta del modelo como texto plano.
	Generate(ctx context.Context, instructions string, messages []domain.ChatMessage) (string, error)
}

type OpenAIGateway struct {
	client    *openai.Client
	model     string
	maxTokens int
}

func NewGateway(cfg *config.Config) Gateway {
	client := openai.NewClient(option.WithAPIKey(cfg.Assistant.APIKey))

	return &OpenAIGateway{
		client:    &client,
		model:     cfg.Assistant.Model,
		maxTokens: cfg.Assistant.MaxTokens,
	}
}

func (g *OpenAIGateway) Generate(ctx context.Context, instructions string, messages []domain.ChatMessage) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(g.model),
		MaxTokens: openai.Int(int64(g.maxTokens)),
		Messages:  buildMessages(instructions, messages),
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("error del cliente de OpenAI: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("respuesta sin contenido del modelo %s", g.model)
	}

	return resp.Choices[0].Message.Content, nil
}

// buildMessages arma la lista de mensajes: las instrucciones van siempre
// primero y cada turno conserva su rol original. Roles desconocidos se
// tratan como usuario.
func buildMessages(instructions string, messages []domain.ChatMessage) []openai.ChatCompletionMessageParamUnion {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)+1)
	params = append(params, openai.SystemMessage(instructions))

	for _, message := range messages {
		switch message.Role {
		case domain.ChatRoleAssistant:
			params = append(params, openai.AssistantMessage(message.Content))
		default:
			params = append(params, openai.UserMessage(message.Content))
		}
	}

	return params
}
