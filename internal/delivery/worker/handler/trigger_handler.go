package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"spotlight/config"
	deliverycontext "spotlight/internal/delivery/context"
	"spotlight/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// Trigger types delivered through the push subscription. The rotation
// triggers come from the external clock; the user triggers mirror identity
// provider account events.
const (
	TriggerDailyRollover = "daily-rollover"
	TriggerAuctionOpen   = "auction-open"
	TriggerAuctionClose  = "auction-close"
	TriggerAggregate     = "aggregate"
	TriggerUserCreated   = "user-created"
	TriggerUserDeleted   = "user-deleted"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TriggerEvent is the decoded payload of one push message.
type TriggerEvent struct {
	RequestID string `json:"request_id,omitempty"`
	Type      string `json:"type"`
	UserID    string `json:"user_id,omitempty"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// TriggerHandler handles Pub/Sub push messages that drive the daily rotation
// and mirror account events.
type TriggerHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	lifecycleUC    usecase.LifecycleUsecase
	aggregationUC  usecase.AggregationUsecase
	userUC         usecase.UserUsecase
}

// TriggerHandlerParams holds dependencies for the TriggerHandler
type TriggerHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	LifecycleUC   usecase.LifecycleUsecase
	AggregationUC usecase.AggregationUsecase
	UserUC        usecase.UserUsecase
}

// NewTriggerHandler creates a new Pub/Sub push handler
func NewTriggerHandler(params TriggerHandlerParams) *TriggerHandler {
	verifyPushAuth := params.Config.PubSub != nil && params.Config.PubSub.VerifyPushAuth

	return &TriggerHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		lifecycleUC:    params.LifecycleUC,
		aggregationUC:  params.AggregationUC,
		userUC:         params.UserUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *TriggerHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token when the subscription is configured with auth
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := decodeTriggerEvent(&pushMsg)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode trigger event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	requestID := h.extractRequestID(ctx, &pushMsg, event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing trigger",
		slog.String("type", event.Type),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	if err := h.processTrigger(ctx, event); err != nil {
		reqLogger.Error("[Worker] Failed to process trigger",
			slog.String("type", event.Type),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Trigger processed successfully",
		slog.String("type", event.Type),
	)

	return c.NoContent(http.StatusOK)
}

// decodeTriggerEvent parses the event payload. The trigger type may arrive in
// the message attributes, the JSON body, or both; attributes win.
func decodeTriggerEvent(pushMsg *PubSubMessage) (*TriggerEvent, error) {
	var event TriggerEvent

	if pushMsg.Message.Data != "" {
		data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode message data")
		}

		if len(data) > 0 {
			if err := json.Unmarshal(data, &event); err != nil {
				return nil, errors.Wrap(err, "failed to parse trigger event")
			}
		}
	}

	if trigger, ok := pushMsg.Message.Attributes["type"]; ok && trigger != "" {
		event.Type = trigger
	}

	if event.Type == "" {
		return nil, errors.New("trigger event has no type")
	}

	return &event, nil
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *TriggerHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *TriggerEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processTrigger dispatches one trigger to its usecase. Rotation and account
// triggers are retried by Pub/Sub until the idempotent transition lands;
// aggregation failures self-heal on the next cycle so they never retry.
func (h *TriggerHandler) processTrigger(ctx context.Context, event *TriggerEvent) error {
	switch event.Type {
	case TriggerDailyRollover:
		if err := h.lifecycleUC.RolloverDay(ctx); err != nil {
			return newRetryableError(err)
		}
	case TriggerAuctionOpen:
		if err := h.lifecycleUC.OpenAuction(ctx); err != nil {
			return newRetryableError(err)
		}
	case TriggerAuctionClose:
		if err := h.lifecycleUC.CloseAuction(ctx); err != nil {
			return newRetryableError(err)
		}
	case TriggerAggregate:
		return errors.WithStack(h.aggregationUC.AggregateCurrent(ctx))
	case TriggerUserCreated:
		if event.UserID == "" {
			return errors.New("user-created trigger has no user_id")
		}
		if err := h.userUC.OnUserCreated(ctx, event.UserID); err != nil {
			return newRetryableError(err)
		}
	case TriggerUserDeleted:
		if event.UserID == "" {
			return errors.New("user-deleted trigger has no user_id")
		}
		if err := h.userUC.OnUserDeleted(ctx, event.UserID); err != nil {
			return newRetryableError(err)
		}
	default:
		return errors.Errorf("unknown trigger type: %s", event.Type)
	}

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
