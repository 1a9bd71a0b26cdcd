package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"spotlight/internal/domain/entity"
	mockusecase "spotlight/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEngagementHandler_Record_Success(t *testing.T) {
	uc := mockusecase.NewMockEngagementUsecase(t)
	uc.EXPECT().IncrementMetric(mock.Anything, entity.MetricHeart).Return(true)

	handler := NewEngagementHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodPost, "/engagement/heart", "")
	c.SetParamNames("metric")
	c.SetParamValues("heart")
	require.NoError(t, handler.Record(c))

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestEngagementHandler_Record_DroppedPingStillAccepted(t *testing.T) {
	uc := mockusecase.NewMockEngagementUsecase(t)
	uc.EXPECT().IncrementMetric(mock.Anything, entity.MetricView).Return(false)

	handler := NewEngagementHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodPost, "/engagement/view", "")
	c.SetParamNames("metric")
	c.SetParamValues("view")
	require.NoError(t, handler.Record(c))

	// Pings never fail for the client even when the delta was dropped
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestEngagementHandler_Record_UnknownMetric(t *testing.T) {
	uc := mockusecase.NewMockEngagementUsecase(t)

	handler := NewEngagementHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodPost, "/engagement/stars", "")
	c.SetParamNames("metric")
	c.SetParamValues("stars")
	require.NoError(t, handler.Record(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_METRIC")
	uc.AssertNotCalled(t, "IncrementMetric")
}
