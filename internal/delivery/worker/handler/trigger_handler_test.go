package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"spotlight/config"
	mockusecase "spotlight/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type triggerHandlerFixtures struct {
	lifecycleUC   *mockusecase.MockLifecycleUsecase
	aggregationUC *mockusecase.MockAggregationUsecase
	userUC        *mockusecase.MockUserUsecase
	handler       *TriggerHandler
}

func newTriggerHandlerFixtures(t *testing.T) *triggerHandlerFixtures {
	t.Helper()

	fx := &triggerHandlerFixtures{
		lifecycleUC:   mockusecase.NewMockLifecycleUsecase(t),
		aggregationUC: mockusecase.NewMockAggregationUsecase(t),
		userUC:        mockusecase.NewMockUserUsecase(t),
	}

	fx.handler = NewTriggerHandler(TriggerHandlerParams{
		Config:        &config.Config{},
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		LifecycleUC:   fx.lifecycleUC,
		AggregationUC: fx.aggregationUC,
		UserUC:        fx.userUC,
	})

	return fx
}

func pushRequest(t *testing.T, attributes map[string]string, payload any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var data string
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		data = base64.StdEncoding.EncodeToString(raw)
	}

	body, err := json.Marshal(map[string]any{
		"message": map[string]any{
			"data":        data,
			"attributes":  attributes,
			"messageId":   "msg-1",
			"publishTime": "2026-08-30T08:00:00Z",
		},
		"subscription": "projects/local/subscriptions/lifecycle-sub",
	})
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestTriggerHandler_HandlePush_Rollover(t *testing.T) {
	fx := newTriggerHandlerFixtures(t)
	fx.lifecycleUC.EXPECT().RolloverDay(mock.Anything).Return(nil)

	c, rec := pushRequest(t, map[string]string{"type": TriggerDailyRollover}, nil)
	require.NoError(t, fx.handler.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTriggerHandler_HandlePush_TypeFromPayload(t *testing.T) {
	fx := newTriggerHandlerFixtures(t)
	fx.lifecycleUC.EXPECT().OpenAuction(mock.Anything).Return(nil)

	c, rec := pushRequest(t, nil, &TriggerEvent{Type: TriggerAuctionOpen})
	require.NoError(t, fx.handler.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTriggerHandler_HandlePush_RetryableFailure(t *testing.T) {
	fx := newTriggerHandlerFixtures(t)
	fx.lifecycleUC.EXPECT().CloseAuction(mock.Anything).Return(errors.New("database unavailable"))

	c, rec := pushRequest(t, map[string]string{"type": TriggerAuctionClose}, nil)
	require.NoError(t, fx.handler.HandlePush(c))

	// 503 makes Pub/Sub redeliver until the idempotent transition lands
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestTriggerHandler_HandlePush_AggregateFailureNotRetried(t *testing.T) {
	fx := newTriggerHandlerFixtures(t)
	fx.aggregationUC.EXPECT().AggregateCurrent(mock.Anything).Return(errors.New("sum failed"))

	c, rec := pushRequest(t, map[string]string{"type": TriggerAggregate}, nil)
	require.NoError(t, fx.handler.HandlePush(c))

	// Aggregation self-heals on the next cycle, so no redelivery
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTriggerHandler_HandlePush_UserCreated(t *testing.T) {
	fx := newTriggerHandlerFixtures(t)
	fx.userUC.EXPECT().OnUserCreated(mock.Anything, "user-a").Return(nil)

	c, rec := pushRequest(t, map[string]string{"type": TriggerUserCreated}, &TriggerEvent{UserID: "user-a"})
	require.NoError(t, fx.handler.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTriggerHandler_HandlePush_UserCreatedWithoutID(t *testing.T) {
	fx := newTriggerHandlerFixtures(t)

	c, rec := pushRequest(t, map[string]string{"type": TriggerUserCreated}, nil)
	require.NoError(t, fx.handler.HandlePush(c))

	// Malformed event: acked to prevent infinite redelivery
	assert.Equal(t, http.StatusOK, rec.Code)
	fx.userUC.AssertNotCalled(t, "OnUserCreated")
}

func TestTriggerHandler_HandlePush_UnknownType(t *testing.T) {
	fx := newTriggerHandlerFixtures(t)

	c, rec := pushRequest(t, map[string]string{"type": "rebalance"}, nil)
	require.NoError(t, fx.handler.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTriggerHandler_HandlePush_MissingType(t *testing.T) {
	fx := newTriggerHandlerFixtures(t)

	c, rec := pushRequest(t, nil, nil)
	require.NoError(t, fx.handler.HandlePush(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTriggerHandler_HandlePush_BadBase64(t *testing.T) {
	fx := newTriggerHandlerFixtures(t)

	body := `{"message":{"data":"%%%not-base64%%%","messageId":"msg-1"},"subscription":"s"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, fx.handler.HandlePush(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
