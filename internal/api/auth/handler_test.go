package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"estoque/internal/api/auth"
	"estoque/internal/domain"
	apperror "estoque/internal/errors"
	"estoque/internal/pkg/logger"
	"estoque/internal/validator"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, creds domain.Credentials) (domain.TokenResponse, error) {
	args := m.Called(ctx, creds)
	return args.Get(0).(domain.TokenResponse), args.Error(1)
}

func login(h *auth.Handler, body string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.LoginHandler(rr, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body)))
	return rr
}

func TestLoginHandler(t *testing.T) {
	svc := new(MockAuthService)
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.On("Login", mock.Anything, domain.Credentials{Username: "admin", Password: "secret"}).
		Return(domain.TokenResponse{AccessToken: "tok", ExpiresAt: exp}, nil)
	svc.On("Login", mock.Anything, domain.Credentials{Username: "admin", Password: "errada"}).
		Return(domain.TokenResponse{}, apperror.NewUnauthorizedError("Credenciais inválidas!"))
	h := auth.NewHandler(svc, validator.New(), logger.NewNop())

	rr := login(h, `{"username":"admin","password":"secret"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"access_token":"tok","expires_at":"2030-01-01T00:00:00Z"}`, rr.Body.String())

	rr = login(h, `{"username":"admin","password":"errada"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Credenciais inválidas!")

	rr = login(h, `{"username":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNumberOfCalls(t, "Login", 2)
}
