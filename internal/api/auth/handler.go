package auth

import (
	"context"
	"net/http"

	"estoque/internal/api/respond"
	"estoque/internal/domain"
	"estoque/internal/pkg/logger"
)

// AuthService define o contrato de login.
type AuthService interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.TokenResponse, error)
}

// CredentialsValidator valida o corpo do login.
type CredentialsValidator interface {
	ValidateCredentials(body []byte) (domain.Credentials, error)
}

// Handler agrupa os métodos de Handler de autenticação.
type Handler struct {
	Service   AuthService
	Validator CredentialsValidator
	Logger    logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc AuthService, v CredentialsValidator, log logger.Logger) *Handler {
	return &Handler{Service: svc, Validator: v, Logger: log}
}

// LoginHandler lida com a requisição POST /login.
// @Summary Autentica o operador
// @Description Confere usuário e senha e devolve um token JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body domain.Credentials true "Usuário e senha"
// @Success 200 {object} domain.TokenResponse "Token de acesso"
// @Failure 400 {object} domain.ErrorResponse "Credenciais ausentes"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Router /login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	body, err := respond.ReadBody(w, r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	creds, err := h.Validator.ValidateCredentials(body)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	resp, err := h.Service.Login(r.Context(), creds)
	respond.Handle(w, r, h.Logger, resp, err, http.StatusOK)
}
