package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"spotlight/internal/domain/entity"
	domainerrors "spotlight/internal/domain/errors"
	mockusecase "spotlight/internal/mocks/usecase"
	"spotlight/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuctionHandler_GetCurrent_Success(t *testing.T) {
	uc := mockusecase.NewMockAuctionUsecase(t)
	uc.EXPECT().CurrentAuction(mock.Anything).Return(&entity.Auction{
		Day:      entity.DayKey("8-30-2026"),
		Target:   entity.DayKey("8-31-2026"),
		Status:   entity.AuctionStatusOpen,
		TopBid:   50,
		BidCount: 2,
	}, nil)

	handler := NewAuctionHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodGet, "/auction/current", "")
	require.NoError(t, handler.GetCurrent(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"target":"8-31-2026"`)
	assert.Contains(t, rec.Body.String(), `"topBid":50`)
}

func TestAuctionHandler_GetCurrent_NotFound(t *testing.T) {
	uc := mockusecase.NewMockAuctionUsecase(t)
	uc.EXPECT().CurrentAuction(mock.Anything).Return(nil, domainerrors.ErrNotFound)

	handler := NewAuctionHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodGet, "/auction/current", "")
	require.NoError(t, handler.GetCurrent(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuctionHandler_PlaceBid_Success(t *testing.T) {
	uc := mockusecase.NewMockAuctionUsecase(t)
	uc.EXPECT().PlaceBid(mock.Anything, "user-a", mock.MatchedBy(func(input *usecase.PlaceBidInput) bool {
		return input.Amount == 75
	})).Return(&usecase.BidReceipt{
		Day:      entity.DayKey("8-30-2026"),
		Amount:   75,
		Index:    2,
		BidCount: 3,
	}, nil)

	handler := NewAuctionHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodPost, "/auction/bid", `{"amount":75}`)
	c.Set("userID", "user-a")
	require.NoError(t, handler.PlaceBid(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"amount":75`)
	assert.Contains(t, rec.Body.String(), `"bidCount":3`)
}

func TestAuctionHandler_PlaceBid_TooLow(t *testing.T) {
	uc := mockusecase.NewMockAuctionUsecase(t)
	uc.EXPECT().PlaceBid(mock.Anything, "user-a", mock.Anything).
		Return(nil, domainerrors.ErrBidTooLow)

	handler := NewAuctionHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodPost, "/auction/bid", `{"amount":10}`)
	c.Set("userID", "user-a")
	require.NoError(t, handler.PlaceBid(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "BID_TOO_LOW")
}

func TestAuctionHandler_PlaceBid_InvalidAmount(t *testing.T) {
	uc := mockusecase.NewMockAuctionUsecase(t)

	handler := NewAuctionHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// Validator rejects non-positive amounts before the usecase runs
	c, rec := newTestContext(t, http.MethodPost, "/auction/bid", `{"amount":-5}`)
	c.Set("userID", "user-a")
	require.NoError(t, handler.PlaceBid(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "PlaceBid")
}

func TestAuctionHandler_PlaceBid_MissingUserID(t *testing.T) {
	uc := mockusecase.NewMockAuctionUsecase(t)

	handler := NewAuctionHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodPost, "/auction/bid", `{"amount":75}`)
	require.NoError(t, handler.PlaceBid(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "PlaceBid")
}
