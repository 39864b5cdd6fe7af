package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roster/internal/delivery/http/middleware"
	"roster/internal/delivery/http/validator"
	"roster/internal/domain/entity"
	mockUC "roster/internal/mocks/usecase"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Login_Integration(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(authUC, logger)

	account := &entity.Account{
		ID:           uuid.New(),
		Handle:       "tester",
		Email:        "tester@example.com",
		Role:         entity.RoleUser,
		IsActive:     true,
		PasswordHash: "$2a$10$secret_hash",
	}

	authUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Run(func(ctx context.Context, input *usecase.LoginInput) {
			assert.Equal(t, "tester@example.com", input.Email)
			assert.Equal(t, "secret-password-1", input.Password)
		}).
		Return(&usecase.LoginOutput{
			Token:   "0123456789abcdef0123456789abcdef01234567",
			Account: account,
		}, nil)

	e := echo.New()
	e.Validator = validator.New()
	body := `{"email":"tester@example.com","password":"secret-password-1"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, "0123456789abcdef0123456789abcdef01234567")
	assert.Contains(t, responseBody, "tester@example.com")

	// Credential material never leaves the server.
	assert.NotContains(t, responseBody, "secret_hash")
}

func TestAuthHandler_Login_RejectsMalformedEmail(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(authUC, logger)

	e := echo.New()
	e.Validator = validator.New()
	body := `{"email":"not-an-email","password":"secret-password-1"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Validation failures bubble up as errors for the error middleware.
	assert.Error(t, h.Login(c))
}

func TestAuthHandler_Logout_Integration(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(authUC, logger)

	account := &entity.Account{ID: uuid.New(), Email: "tester@example.com", IsActive: true}
	authUC.EXPECT().Logout(mock.Anything, account.ID).Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextAccountKey, account)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Successfully logged out")
}

func TestAuthHandler_Logout_RequiresAuthentication(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(authUC, logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
