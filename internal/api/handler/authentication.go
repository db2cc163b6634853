package handler

import (
	"net/http"

	"github.com/vfg2006/visibility-audit-api/internal/domain"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/authenticating"
	"github.com/vfg2006/visibility-audit-api/pkg/apiErrors"
	"github.com/vfg2006/visibility-audit-api/pkg/log"
	"github.com/vfg2006/visibility-audit-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Name      string  `json:"name"`
	Lastname  string  `json:"lastname"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	RoleID    int     `json:"role_id"`
	PartnerID *string `json:"partner_id"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			if authenticating.IsCredentialsError(err) {
				// mesma resposta para email e senha errados
				log.ForContext(r.Context()).WithError(err).Info("Login recusado")
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
				return
			}
			writeServiceError(w, r, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), userClaims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao obter dados do usuário")
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}

// CreateUser cadastra administradores, parceiros e clientes
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		user, err := service.CreateUser(r.Context(), &domain.User{
			Name:         req.Name,
			Lastname:     req.Lastname,
			Email:        req.Email,
			PasswordHash: req.Password,
			RoleID:       req.RoleID,
			PartnerID:    req.PartnerID,
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar usuário")
			return
		}

		writeJSON(w, r, http.StatusCreated, user)
	}
}
