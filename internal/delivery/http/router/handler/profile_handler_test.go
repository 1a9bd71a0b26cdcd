package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"spotlight/internal/delivery/http/validator"
	"spotlight/internal/domain/entity"
	domainerrors "spotlight/internal/domain/errors"
	mockusecase "spotlight/internal/mocks/usecase"
	"spotlight/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestProfileHandler_GetCurrent_Success(t *testing.T) {
	uc := mockusecase.NewMockProfileUsecase(t)
	uc.EXPECT().CurrentProfile(mock.Anything).Return(&entity.Profile{
		Day:   entity.DayKey("8-30-2026"),
		IsSet: true,
		Content: entity.ProfileContent{
			Title: "Today's Profile",
		},
		Totals: entity.EngagementTotals{Views: 120, Hearts: 14, Crosses: 3},
	}, nil)

	handler := NewProfileHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodGet, "/profile/current", "")
	require.NoError(t, handler.GetCurrent(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"day":"8-30-2026"`)
	assert.Contains(t, rec.Body.String(), `"views":120`)
}

func TestProfileHandler_GetCurrent_NotFound(t *testing.T) {
	uc := mockusecase.NewMockProfileUsecase(t)
	uc.EXPECT().CurrentProfile(mock.Anything).Return(nil, domainerrors.ErrProfileNotFound)

	handler := NewProfileHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodGet, "/profile/current", "")
	require.NoError(t, handler.GetCurrent(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PROFILE_NOT_FOUND")
}

func TestProfileHandler_SetContent_Success(t *testing.T) {
	uc := mockusecase.NewMockProfileUsecase(t)
	uc.EXPECT().SetContent(mock.Anything, "user-a", mock.MatchedBy(func(input *usecase.SetContentInput) bool {
		return input.Title == "Winner Takes Today"
	})).Return(&entity.Profile{
		Day:     entity.DayKey("8-30-2026"),
		IsSet:   true,
		Content: entity.ProfileContent{Title: "Winner Takes Today"},
	}, nil)

	handler := NewProfileHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodPut, "/profile/content", `{"title":"Winner Takes Today"}`)
	c.Set("userID", "user-a")
	require.NoError(t, handler.SetContent(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Winner Takes Today")
}

func TestProfileHandler_SetContent_NotWinner(t *testing.T) {
	uc := mockusecase.NewMockProfileUsecase(t)
	uc.EXPECT().SetContent(mock.Anything, "user-b", mock.Anything).
		Return(nil, domainerrors.ErrNotAuctionWinner)

	handler := NewProfileHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodPut, "/profile/content", `{"title":"Not Mine"}`)
	c.Set("userID", "user-b")
	require.NoError(t, handler.SetContent(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_AUCTION_WINNER")
}

func TestProfileHandler_SetContent_ValidationError(t *testing.T) {
	uc := mockusecase.NewMockProfileUsecase(t)

	handler := NewProfileHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// Title is required
	c, rec := newTestContext(t, http.MethodPut, "/profile/content", `{"mediaUrl":"https://example.com/a.png"}`)
	c.Set("userID", "user-a")
	require.NoError(t, handler.SetContent(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "SetContent")
}

func TestProfileHandler_SetContent_MissingUserID(t *testing.T) {
	uc := mockusecase.NewMockProfileUsecase(t)

	handler := NewProfileHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodPut, "/profile/content", `{"title":"Anyone"}`)
	require.NoError(t, handler.SetContent(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "SetContent")
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/health", "")
	require.NoError(t, HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
