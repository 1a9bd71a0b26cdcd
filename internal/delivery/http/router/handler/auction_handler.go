package handler

import (
	"log/slog"
	"net/http"

	"spotlight/internal/delivery/http/response"
	"spotlight/internal/domain/entity"
	"spotlight/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuctionResponse is the wire shape of the daily auction.
type AuctionResponse struct {
	Day      string `json:"day"`
	Target   string `json:"target"`
	Status   string `json:"status"`
	TopBid   int64  `json:"topBid"`
	BidCount int    `json:"bidCount"`
}

// AuctionHandler holds dependencies for auction-related handlers.
type AuctionHandler struct {
	uc     usecase.AuctionUsecase
	logger *slog.Logger
}

// NewAuctionHandler is the constructor for AuctionHandler, injected by Fx.
func NewAuctionHandler(uc usecase.AuctionUsecase, logger *slog.Logger) *AuctionHandler {
	return &AuctionHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetCurrent returns today's auction state.
func (h *AuctionHandler) GetCurrent(c echo.Context) error {
	auction, err := h.uc.CurrentAuction(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAuctionResponse(auction), "")
}

// PlaceBid attempts to outbid the current top of today's open auction.
func (h *AuctionHandler) PlaceBid(c echo.Context) error {
	userID, ok := getUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	var input usecase.PlaceBidInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bid input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	receipt, err := h.uc.PlaceBid(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, receipt, "Bid accepted")
}

func toAuctionResponse(auction *entity.Auction) *AuctionResponse {
	return &AuctionResponse{
		Day:      auction.Day.String(),
		Target:   auction.Target.String(),
		Status:   string(auction.Status),
		TopBid:   auction.TopBid,
		BidCount: auction.BidCount,
	}
}
