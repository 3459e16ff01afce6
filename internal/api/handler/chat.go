package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/nachobar3/perfectstore-app/internal/domain"
	"github.com/nachobar3/perfectstore-app/internal/usecases/assisting"
	"github.com/nachobar3/perfectstore-app/pkg/apiErrors"
)

// ChatRequest es el cuerpo del pedido del asistente: la conversación completa
// viaja en cada turno
type ChatRequest struct {
	Messages []domain.ChatMessage `json:"messages"`
}

// ChatResponse es la respuesta del asistente
type ChatResponse struct {
	Message string `json:"message"`
}

// Chat recibe la conversación y devuelve la respuesta del asistente comercial
func Chat(service assisting.Assister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request ChatRequest
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "El cuerpo del pedido no es un JSON válido", nil)
			return
		}

		if len(request.Messages) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "La conversación no tiene mensajes", nil)
			return
		}

		answer, err := service.Chat(r.Context(), request.Messages)
		if err != nil {
			logrus.Error("Error al procesar la conversación:", err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(ChatResponse{Message: answer})
		if err != nil {
			logrus.Error("Error al enviar la respuesta del asistente:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
			return
		}
	}
}
