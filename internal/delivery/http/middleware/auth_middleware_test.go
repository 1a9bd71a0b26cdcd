package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mockservice "spotlight/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func invokeAuthenticate(t *testing.T, m *AuthMiddleware, authHeader string) (echo.Context, *httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, m.Authenticate(next)(c))

	return c, rec, nextCalled
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	verifier := mockservice.NewMockTokenVerifier(t)
	verifier.EXPECT().Verify(mock.Anything, "good-token").Return("user-a", nil)

	m := NewAuthMiddleware(verifier)

	c, _, nextCalled := invokeAuthenticate(t, m, "Bearer good-token")

	assert.True(t, nextCalled)
	assert.Equal(t, "user-a", c.Get("userID"))
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	verifier := mockservice.NewMockTokenVerifier(t)

	m := NewAuthMiddleware(verifier)

	_, rec, nextCalled := invokeAuthenticate(t, m, "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	verifier.AssertNotCalled(t, "Verify")
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	verifier := mockservice.NewMockTokenVerifier(t)

	m := NewAuthMiddleware(verifier)

	_, rec, nextCalled := invokeAuthenticate(t, m, "Basic dXNlcjpwYXNz")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	verifier.AssertNotCalled(t, "Verify")
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	verifier := mockservice.NewMockTokenVerifier(t)
	verifier.EXPECT().Verify(mock.Anything, "bad-token").Return("", errors.New("token is expired"))

	m := NewAuthMiddleware(verifier)

	_, rec, nextCalled := invokeAuthenticate(t, m, "Bearer bad-token")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
