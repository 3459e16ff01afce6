package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/nachobar3/perfectstore-app/internal/domain"
	"github.com/nachobar3/perfectstore-app/internal/usecases/authenticating"
	"github.com/nachobar3/perfectstore-app/pkg/apiErrors"
)

// CreateUserRequest es el cuerpo del pedido de alta de usuario
type CreateUserRequest struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int    `json:"role_id"`
}

// ListUsers devuelve todos los usuarios del tablero
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUser()
		if err != nil {
			logrus.Error("Error al listar usuarios:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al listar usuarios", nil)
			return
		}

		for _, user := range users {
			user.PasswordHash = ""
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(users)
		if err != nil {
			logrus.Error("Error al enviar la respuesta de usuarios:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
			return
		}
	}
}

// CreateUser da de alta un nuevo usuario del tablero
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request CreateUserRequest
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "El cuerpo del pedido no es un JSON válido", nil)
			return
		}

		if request.Email == "" || request.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Email y contraseña son obligatorios", nil)
			return
		}

		user := &domain.User{
			Name:         request.Name,
			Lastname:     request.Lastname,
			Email:        request.Email,
			PasswordHash: request.Password,
			RoleID:       request.RoleID,
			Active:       true,
		}

		created, err := service.CreateUser(user)
		if err != nil {
			switch {
			case errors.Is(err, authenticating.ErrUserAlreadyExists):
				apiErrors.WriteError(w, apiErrors.ErrUserAlreadyExists, "El email ya está registrado", nil)
			case errors.Is(err, authenticating.ErrWeakPassword):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			default:
				logrus.Error("Error al crear el usuario:", err)
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al crear el usuario", nil)
			}
			return
		}

		created.PasswordHash = ""

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}
