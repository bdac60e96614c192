// Package handler contains the Pub/Sub push handlers for the visit worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"fieldforce/config"
	deliverycontext "fieldforce/internal/delivery/context"
	"fieldforce/internal/domain/constants"
	"fieldforce/internal/domain/entity"
	"fieldforce/internal/domain/repository"
	"fieldforce/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
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

// PushHandler handles Pub/Sub push messages carrying visit events. Each
// event fans out as an FCM multicast to supervisor devices.
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	notificationSvc service.NotificationService
	deviceRepo      repository.DeviceRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	DeviceRepo      repository.DeviceRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google-signed push tokens are only verifiable outside local development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		deviceRepo:      params.DeviceRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.VisitEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse visit event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing visit event",
		slog.String("event_type", event.EventType),
		slog.String("user_id", event.UserID),
		slog.String("outlet_id", event.OutletID),
	)

	if err := h.processVisitEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process visit event",
			slog.String("event_type", event.EventType),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 triggers a Pub/Sub retry; 200 acknowledges permanent
		// failures to prevent infinite redelivery.
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Visit event processed",
		slog.String("event_type", event.EventType),
		slog.String("outlet_id", event.OutletID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.VisitEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processVisitEvent multicasts one visit event to supervisor devices.
func (h *PushHandler) processVisitEvent(ctx context.Context, event *service.VisitEvent) error {
	if event.EventType != service.VisitEventEntered && event.EventType != service.VisitEventExited {
		return errors.Errorf("unknown event type %q", event.EventType)
	}

	devices, err := h.deviceRepo.FindActiveDevicesByRole(ctx, entity.RoleSupervisor)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if len(devices) == 0 {
		h.logger.Info("[Worker] No supervisor devices registered",
			slog.String("outlet_id", event.OutletID),
		)

		return nil
	}

	deviceMap := make(map[string]*entity.UserDevice, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		deviceMap[device.FCMToken] = device
		tokens = append(tokens, device.FCMToken)
	}

	title, body, notificationData := h.prepareNotificationContent(event)

	invalidTokens := h.sendBatchedNotifications(ctx, tokens, title, body, notificationData)

	h.cleanupInvalidTokens(ctx, invalidTokens, deviceMap)

	return nil
}

// prepareNotificationContent creates the notification title, body, and data
func (h *PushHandler) prepareNotificationContent(event *service.VisitEvent) (title, body string, data map[string]string) {
	switch event.EventType {
	case service.VisitEventEntered:
		title = "Rep arrived at outlet"
		body = fmt.Sprintf("Visit started at %s", event.OutletName)
	default:
		title = "Rep left outlet"
		if event.DurationMinutes != nil {
			body = fmt.Sprintf("Visit at %s ended after %d min", event.OutletName, *event.DurationMinutes)
		} else {
			body = fmt.Sprintf("Visit at %s ended", event.OutletName)
		}
	}

	data = map[string]string{
		"event_type":  event.EventType,
		"user_id":     event.UserID,
		"outlet_id":   event.OutletID,
		"outlet_name": event.OutletName,
		"latitude":    fmt.Sprintf("%f", event.Latitude),
		"longitude":   fmt.Sprintf("%f", event.Longitude),
		"occurred_at": event.OccurredAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if event.VisitID != "" {
		data["visit_id"] = event.VisitID
	}

	return title, body, data
}

// sendBatchedNotifications multicasts in batches of 500 and collects
// invalid tokens for cleanup. Send failures are logged, not retried: the
// next visit event reaches the same supervisors anyway.
func (h *PushHandler) sendBatchedNotifications(ctx context.Context, tokens []string, title, body string, data map[string]string) []string {
	const batchSize = 500

	var allInvalidTokens []string

	for idx := 0; idx < len(tokens); idx += batchSize {
		end := min(idx+batchSize, len(tokens))
		batch := tokens[idx:end]

		successCount, failureCount, batchInvalidTokens, sendErr := h.notificationSvc.SendBatchNotification(
			ctx, batch, title, body, data,
		)
		if sendErr != nil {
			h.logger.Error("[Worker] Failed to send batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)

			continue
		}

		h.logger.Info("[Worker] Batch sent",
			slog.Int("success", successCount),
			slog.Int("failure", failureCount),
			slog.Int("invalid_tokens", len(batchInvalidTokens)),
		)

		allInvalidTokens = append(allInvalidTokens, batchInvalidTokens...)
	}

	return allInvalidTokens
}

// cleanupInvalidTokens removes devices with invalid FCM tokens
func (h *PushHandler) cleanupInvalidTokens(ctx context.Context, invalidTokens []string, deviceMap map[string]*entity.UserDevice) {
	for _, token := range invalidTokens {
		if device, ok := deviceMap[token]; ok {
			if err := h.deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
				h.logger.Warn("[Worker] Failed to delete invalid device",
					slog.String("device_id", device.ID.String()),
					slog.Any("error", err),
				)
			}
		}
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this push endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
