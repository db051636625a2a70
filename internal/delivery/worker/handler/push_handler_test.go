package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cordonnier/config"
	"cordonnier/internal/domain/constants"
	"cordonnier/internal/domain/entity"
	"cordonnier/internal/domain/service"
	mockRepo "cordonnier/internal/mocks/repository"
	mockService "cordonnier/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type pushHandlerFixtures struct {
	handler         *PushHandler
	notificationSvc *mockService.MockNotificationService
	deviceRepo      *mockRepo.MockDeviceRepository
}

func createTestPushHandler(t *testing.T) *pushHandlerFixtures {
	t.Helper()

	notificationSvc := mockService.NewMockNotificationService(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
	}

	h := NewPushHandler(PushHandlerParams{
		Config:          cfg,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: notificationSvc,
		DeviceRepo:      deviceRepo,
	})

	return &pushHandlerFixtures{
		handler:         h,
		notificationSvc: notificationSvc,
		deviceRepo:      deviceRepo,
	}
}

func pushRequest(t *testing.T, event *service.OrderEvent) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	payload, err := json.Marshal(event)
	assert.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.MessageID = "msg-1"
	body, err := json.Marshal(msg)
	assert.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestHandlePush_NotifiesAssignedCobbler(t *testing.T) {
	t.Parallel()

	fixtures := createTestPushHandler(t)
	cobblerID := uuid.New()

	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: cobblerID, FCMToken: "token-a", IsActive: true},
		{ID: uuid.New(), UserID: cobblerID, FCMToken: "token-b", IsActive: true},
	}
	fixtures.deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, cobblerID).
		Return(devices, nil)

	fixtures.notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-a", "token-b"}, "Nouvelle commande", mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ []string, _, body string, data map[string]string) {
			assert.Contains(t, body, "REF-7C21A9F3")
			assert.Equal(t, "REF-7C21A9F3", data["order_reference"])
		}).
		Return(2, 0, nil, nil)

	c, rec := pushRequest(t, &service.OrderEvent{
		EventType:      constants.EventOrderAssigned,
		OrderID:        uuid.New().String(),
		OrderReference: "REF-7C21A9F3",
		CobblerID:      cobblerID.String(),
		Total:          64.50,
		Currency:       "CHF",
	})

	err := fixtures.handler.HandlePush(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_DeactivatesInvalidTokens(t *testing.T) {
	t.Parallel()

	fixtures := createTestPushHandler(t)
	cobblerID := uuid.New()

	fixtures.deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, cobblerID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: cobblerID, FCMToken: "stale-token", IsActive: true},
		}, nil)
	fixtures.notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 1, []string{"stale-token"}, nil)
	fixtures.deviceRepo.EXPECT().
		DeactivateDeviceByToken(mock.Anything, "stale-token").
		Return(nil)

	c, rec := pushRequest(t, &service.OrderEvent{
		EventType:      constants.EventOrderAssigned,
		OrderReference: "REF-11B0C4D2",
		CobblerID:      cobblerID.String(),
	})

	err := fixtures.handler.HandlePush(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_IgnoresOtherEventTypes(t *testing.T) {
	t.Parallel()

	fixtures := createTestPushHandler(t)

	c, rec := pushRequest(t, &service.OrderEvent{
		EventType:      constants.EventOrderCreated,
		OrderReference: "REF-5E8F02AA",
	})

	err := fixtures.handler.HandlePush(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_AcksEventWithoutCobbler(t *testing.T) {
	t.Parallel()

	fixtures := createTestPushHandler(t)

	c, rec := pushRequest(t, &service.OrderEvent{
		EventType:      constants.EventOrderAssigned,
		OrderReference: "REF-90D31B7E",
	})

	err := fixtures.handler.HandlePush(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_RequestsRetryOnRepositoryFailure(t *testing.T) {
	t.Parallel()

	fixtures := createTestPushHandler(t)
	cobblerID := uuid.New()

	fixtures.deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, cobblerID).
		Return(nil, errors.New("connection refused"))

	c, rec := pushRequest(t, &service.OrderEvent{
		EventType:      constants.EventOrderAssigned,
		OrderReference: "REF-A4C86E10",
		CobblerID:      cobblerID.String(),
	})

	err := fixtures.handler.HandlePush(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_AcksMalformedCobblerID(t *testing.T) {
	t.Parallel()

	fixtures := createTestPushHandler(t)

	c, rec := pushRequest(t, &service.OrderEvent{
		EventType:      constants.EventOrderAssigned,
		OrderReference: "REF-2F19D8B5",
		CobblerID:      "not-a-uuid",
	})

	err := fixtures.handler.HandlePush(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code) // acked, never retried
}

func TestHandlePush_RejectsBadEnvelope(t *testing.T) {
	t.Parallel()

	fixtures := createTestPushHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"%%%"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := fixtures.handler.HandlePush(e.NewContext(req, rec))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
