package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/nachobar3/perfectstore-app/internal/domain"
	"github.com/nachobar3/perfectstore-app/internal/usecases/authenticating"
	"github.com/nachobar3/perfectstore-app/pkg/apiErrors"
	"github.com/nachobar3/perfectstore-app/pkg/middleware"
)

// LoginRequest es el cuerpo del pedido de login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest es el cuerpo del pedido de cambio de contraseña
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Login autentica al usuario y devuelve un token JWT
func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request LoginRequest
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "El cuerpo del pedido no es un JSON válido", nil)
			return
		}

		if request.Email == "" || request.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Email y contraseña son obligatorios", nil)
			return
		}

		token, err := service.LoginUser(request.Email, request.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"token": token})
	}
}

// handleLoginError traduce los errores de autenticación a la respuesta de la API
func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		logrus.Warn("Login rechazado: ", authErr.Error())
	}

	switch {
	case authenticating.IsCredentialsError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciales inválidas", nil)
	case errors.Is(err, authenticating.ErrUserNotFound):
		// No distinguimos usuario inexistente de contraseña incorrecta
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciales inválidas", nil)
	default:
		logrus.Error("Error al autenticar al usuario:", err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al autenticar al usuario", nil)
	}
}

// GetMe devuelve el perfil del usuario autenticado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
			return
		}

		user, err := service.GetUserProfile(claims.UserID)
		if err != nil {
			if errors.Is(err, authenticating.ErrUserNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuario no encontrado", nil)
				return
			}

			logrus.Error("Error al obtener el perfil del usuario:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al obtener el perfil del usuario", nil)
			return
		}

		user.PasswordHash = ""

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(user)
	}
}

// ChangePassword cambia la contraseña del usuario autenticado
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
			return
		}

		var request ChangePasswordRequest
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "El cuerpo del pedido no es un JSON válido", nil)
			return
		}

		if request.CurrentPassword == "" || request.NewPassword == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "La contraseña actual y la nueva son obligatorias", nil)
			return
		}

		err = service.ChangePassword(claims.UserID, request.CurrentPassword, request.NewPassword)
		if err != nil {
			switch {
			case errors.Is(err, authenticating.ErrInvalidCredentials):
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "La contraseña actual es incorrecta", nil)
			case errors.Is(err, authenticating.ErrWeakPassword):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			default:
				logrus.Error("Error al cambiar la contraseña:", err)
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al cambiar la contraseña", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Contraseña actualizada"})
	}
}
