package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roster/internal/delivery/http/validator"
	domainerrors "roster/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postCreateUserProfile(t *testing.T, body string) error {
	t.Helper()

	// Validation fails before any use case is reached, so the handler
	// only needs its logger.
	h := &ProfileHandler{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/profiles/user", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return h.CreateUserProfile(c)
}

func TestProfileHandler_CreateUserProfile_RequiresDateOfBirth(t *testing.T) {
	body := `{
		"account": {"handle": "tester", "email": "tester@example.com", "password": "secret-password-1"},
		"first_name": "Test",
		"last_name": "User",
		"email": "tester@example.com",
		"gender": "other"
	}`

	err := postCreateUserProfile(t, body)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "DateOfBirth")
}

func TestProfileHandler_CreateUserProfile_RejectsMalformedDateOfBirth(t *testing.T) {
	body := `{
		"account": {"handle": "tester", "email": "tester@example.com", "password": "secret-password-1"},
		"first_name": "Test",
		"last_name": "User",
		"email": "tester@example.com",
		"gender": "other",
		"date_of_birth": "15/06/1990"
	}`

	err := postCreateUserProfile(t, body)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}
