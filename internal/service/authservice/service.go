package authservice

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"estoque/internal/domain"
	apperror "estoque/internal/errors"
	"estoque/internal/pkg/logger"
)

// TokenService é o contrato da camada de token (internal/pkg/token).
type TokenService interface {
	GenerateToken(username string) (string, time.Time, error)
}

// Service autentica a credencial estática configurada e emite JWTs.
type Service struct {
	username     string
	passwordHash []byte
	tokens       TokenService
	logger       logger.Logger
}

// NewService cria o serviço de autenticação a partir do usuário e do hash bcrypt da senha.
func NewService(username string, passwordHash []byte, tokens TokenService, log logger.Logger) *Service {
	return &Service{
		username:     username,
		passwordHash: passwordHash,
		tokens:       tokens,
		logger:       log,
	}
}

// HashPassword gera o hash bcrypt de uma senha em texto puro.
func HashPassword(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("falha ao gerar hash da senha: %w", err)
	}
	return hash, nil
}

// ResolvePasswordHash devolve o hash configurado ou, na falta dele, o hash da senha em texto puro.
func ResolvePasswordHash(hash, password string) ([]byte, error) {
	if hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("AUTH_PASSWORD_HASH não é um hash bcrypt válido: %w", err)
		}
		return []byte(hash), nil
	}
	return HashPassword(password)
}

// Login confere as credenciais e devolve um token de acesso.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (domain.TokenResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(s.username)) == 1
	// A senha é conferida mesmo quando o usuário não confere.
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(creds.Password))

	if !userOK || passErr != nil {
		s.logger.Warn("Tentativa de login com credenciais inválidas.", map[string]interface{}{"username": creds.Username})
		return domain.TokenResponse{}, apperror.NewUnauthorizedError("Credenciais inválidas!")
	}

	tok, expiresAt, err := s.tokens.GenerateToken(s.username)
	if err != nil {
		s.logger.Error("Falha ao gerar token de autenticação.", err)
		return domain.TokenResponse{}, apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	s.logger.Info("Login realizado com sucesso.", map[string]interface{}{"username": s.username})
	return domain.TokenResponse{AccessToken: tok, ExpiresAt: expiresAt}, nil
}
