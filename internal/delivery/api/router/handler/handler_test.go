package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foundmoney/internal/delivery/api/validator"
	domainerrors "foundmoney/internal/domain/errors"
	"foundmoney/internal/domain/entity"
	mockUC "foundmoney/internal/mocks/usecase"
	"foundmoney/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newContext builds an echo context as the router would after authentication.
func newContext(method, target, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != uuid.Nil {
		c.Set("userID", userID)
	}

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestSearchHandler_SearchUnclaimedProperty(t *testing.T) {
	userID := uuid.New()

	t.Run("name override is trimmed", func(t *testing.T) {
		uc := mockUC.NewMockSearchUsecase(t)
		uc.EXPECT().SearchUnclaimedProperty(mock.Anything, userID, &usecase.NameOverride{FirstName: "Jane", LastName: "Doe"}).
			Return(&usecase.PropertySearchResult{TotalFound: 1}, nil)

		c, rec := newContext(http.MethodPost, "/search/unclaimed-property", `{"first_name":" Jane ","last_name":"Doe"}`, userID)
		require.NoError(t, NewSearchHandler(SearchHandlerParams{SearchUC: uc}).SearchUnclaimedProperty(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_found":1`)
	})

	t.Run("empty body uses profile name", func(t *testing.T) {
		uc := mockUC.NewMockSearchUsecase(t)
		uc.EXPECT().SearchUnclaimedProperty(mock.Anything, userID, (*usecase.NameOverride)(nil)).
			Return(nil, domainerrors.ErrNameRequired)

		c, rec := newContext(http.MethodPost, "/search/unclaimed-property", "", userID)
		require.NoError(t, NewSearchHandler(SearchHandlerParams{SearchUC: uc}).SearchUnclaimedProperty(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "NAME_REQUIRED", decodeError(t, rec))
	})

	t.Run("unauthenticated", func(t *testing.T) {
		c, rec := newContext(http.MethodPost, "/search/unclaimed-property", "", uuid.Nil)
		require.NoError(t, NewSearchHandler(SearchHandlerParams{SearchUC: mockUC.NewMockSearchUsecase(t)}).SearchUnclaimedProperty(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestSearchHandler_SearchAll_ProfileNotFound(t *testing.T) {
	userID := uuid.New()
	uc := mockUC.NewMockSearchUsecase(t)
	uc.EXPECT().SearchAll(mock.Anything, userID).Return(nil, domainerrors.ErrProfileNotFound)

	c, rec := newContext(http.MethodPost, "/search/all", "", userID)
	require.NoError(t, NewSearchHandler(SearchHandlerParams{SearchUC: uc}).SearchAll(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PROFILE_NOT_FOUND", decodeError(t, rec))
}

func TestMoneyFoundHandler_UpdateStatus(t *testing.T) {
	userID := uuid.New()
	recordID := uuid.New()

	tests := []struct {
		name       string
		id         string
		body       string
		setup      func(uc *mockUC.MockMoneyFoundUsecase)
		wantStatus int
		wantCode   string
	}{
		{name: "bad id", id: "abc", body: `{"status":"claimed"}`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_ID"},
		{name: "unknown status", id: recordID.String(), body: `{"status":"lost"}`, wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_FAILED"},
		{
			name: "regression", id: recordID.String(), body: `{"status":"claimed"}`,
			setup: func(uc *mockUC.MockMoneyFoundUsecase) {
				uc.EXPECT().UpdateStatus(mock.Anything, userID, recordID, mock.Anything).
					Return(nil, domainerrors.ErrInvalidStatusTransition.WithDetails("received -> claimed"))
			},
			wantStatus: http.StatusConflict, wantCode: "INVALID_STATUS_TRANSITION",
		},
		{
			name: "received", id: recordID.String(), body: `{"status":"received","received_amount":42.5}`,
			setup: func(uc *mockUC.MockMoneyFoundUsecase) {
				uc.EXPECT().UpdateStatus(mock.Anything, userID, recordID, mock.MatchedBy(func(ch *usecase.StatusChange) bool {
					return ch.Status == entity.StatusReceived && *ch.ReceivedAmount == 42.5
				})).Return(&entity.MoneyFoundRecord{ID: recordID, Status: entity.StatusReceived}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUC.NewMockMoneyFoundUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}

			c, rec := newContext(http.MethodPatch, "/money-found/"+tt.id+"/status", tt.body, userID)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			require.NoError(t, NewMoneyFoundHandler(MoneyFoundHandlerParams{MoneyFoundUC: uc}).UpdateStatus(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec))
			}
		})
	}
}

func TestMoneyFoundHandler_List_BindsQuery(t *testing.T) {
	userID := uuid.New()
	uc := mockUC.NewMockMoneyFoundUsecase(t)
	uc.EXPECT().List(mock.Anything, userID, &usecase.MoneyFoundQuery{Status: entity.StatusClaimed, Limit: 10, Offset: 20}).
		Return([]*entity.MoneyFoundRecord{}, nil)

	c, rec := newContext(http.MethodGet, "/money-found?status=claimed&limit=10&offset=20", "", userID)
	require.NoError(t, NewMoneyFoundHandler(MoneyFoundHandlerParams{MoneyFoundUC: uc}).List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAnalyticsHandler_Track(t *testing.T) {
	userID := uuid.New()

	t.Run("single event", func(t *testing.T) {
		uc := mockUC.NewMockAnalyticsUsecase(t)
		uc.EXPECT().Track(mock.Anything, userID, mock.MatchedBy(func(events []*usecase.TrackEvent) bool {
			return len(events) == 1 && events[0].Name == "paywall_viewed" && events[0].Properties["plan"] == "annual"
		})).Return(1, nil)

		c, rec := newContext(http.MethodPost, "/analytics/track", `{"event":"paywall_viewed","properties":{"plan":"annual"}}`, userID)
		require.NoError(t, NewAnalyticsHandler(AnalyticsHandlerParams{AnalyticsUC: uc}).Track(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"tracked":1`)
	})

	t.Run("batch", func(t *testing.T) {
		uc := mockUC.NewMockAnalyticsUsecase(t)
		uc.EXPECT().Track(mock.Anything, userID, mock.MatchedBy(func(events []*usecase.TrackEvent) bool {
			return len(events) == 2
		})).Return(2, nil)

		c, rec := newContext(http.MethodPost, "/analytics/track", `{"events":[{"event":"a"},{"event":"b"}]}`, userID)
		require.NoError(t, NewAnalyticsHandler(AnalyticsHandlerParams{AnalyticsUC: uc}).Track(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no event name", func(t *testing.T) {
		c, rec := newContext(http.MethodPost, "/analytics/track", `{"properties":{}}`, userID)
		require.NoError(t, NewAnalyticsHandler(AnalyticsHandlerParams{AnalyticsUC: mockUC.NewMockAnalyticsUsecase(t)}).Track(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWebhookHandler_Subscription(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "envelope", body: `{"api_version":"1.0","event":{"type":"RENEWAL","app_user_id":"u1","product_id":"monthly"}}`},
		{name: "bare event", body: `{"type":"RENEWAL","app_user_id":"u1","product_id":"monthly"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUC.NewMockWebhookUsecase(t)
			uc.EXPECT().HandleSubscriptionEvent(mock.Anything, mock.MatchedBy(func(e *usecase.SubscriptionEvent) bool {
				return e.Type == usecase.EventRenewal && e.AppUserID == "u1" && e.ProductID == "monthly"
			})).Return(&usecase.WebhookResult{Handled: true, Event: usecase.EventRenewal}, nil)

			c, rec := newContext(http.MethodPost, "/webhooks/subscription", tt.body, uuid.Nil)
			require.NoError(t, NewWebhookHandler(WebhookHandlerParams{WebhookUC: uc}).Subscription(c))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}

	t.Run("malformed", func(t *testing.T) {
		c, rec := newContext(http.MethodPost, "/webhooks/subscription", `{not json`, uuid.Nil)
		require.NoError(t, NewWebhookHandler(WebhookHandlerParams{WebhookUC: mockUC.NewMockWebhookUsecase(t)}).Subscription(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEmailHandler_Callback_Redirects(t *testing.T) {
	uc := mockUC.NewMockEmailUsecase(t)
	uc.EXPECT().Callback(mock.Anything, mock.MatchedBy(func(cb *usecase.OAuthCallback) bool {
		return cb.Code == "abc" && cb.State == "st" && cb.UserAgent == "iPhone"
	})).Return("foundmoney://gmail-connected?success=true")

	c, rec := newContext(http.MethodGet, "/email/callback?code=abc&state=st", "", uuid.Nil)
	c.Request().Header.Set("User-Agent", "iPhone")
	require.NoError(t, NewEmailHandler(EmailHandlerParams{EmailUC: uc}).Callback(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "foundmoney://gmail-connected?success=true", rec.Header().Get(echo.HeaderLocation))
}

func TestEmailHandler_Scan_NotConnected(t *testing.T) {
	userID := uuid.New()
	uc := mockUC.NewMockEmailUsecase(t)
	uc.EXPECT().Scan(mock.Anything, userID).Return(nil, domainerrors.ErrMailboxNotConnected)

	c, rec := newContext(http.MethodPost, "/email/scan", "", userID)
	require.NoError(t, NewEmailHandler(EmailHandlerParams{EmailUC: uc}).Scan(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMAIL_NOT_CONNECTED", decodeError(t, rec))
}

func TestHealthHandler_Check(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		wantStatus int
	}{
		{name: "healthy", status: usecase.StatusHealthy, wantStatus: http.StatusOK},
		{name: "unhealthy", status: usecase.StatusUnhealthy, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUC.NewMockHealthUsecase(t)
			uc.EXPECT().
				Check(mock.Anything).
				Return(&usecase.HealthReport{
					Status: tt.status,
					Checks: map[string]usecase.HealthCheck{"database": {Status: usecase.HealthOK}},
				})
			h := NewHealthHandler(HealthHandlerParams{HealthUC: uc})

			c, rec := newContext(http.MethodGet, "/health", "", uuid.Nil)
			require.NoError(t, h.Check(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"status":"`+tt.status+`"`)
		})
	}
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	userID := uuid.New()

	t.Run("created", func(t *testing.T) {
		uc := mockUC.NewMockDeviceUsecase(t)
		uc.EXPECT().
			RegisterDevice(mock.Anything, userID, &usecase.DeviceInfo{FCMToken: "tok", DeviceID: "d-1", Platform: "ios"}).
			Return(&entity.UserDevice{UserID: userID, DeviceID: "d-1"}, nil)

		c, rec := newContext(http.MethodPost, "/devices", `{"fcm_token":"tok","device_id":"d-1","platform":"ios"}`, userID)
		require.NoError(t, NewDeviceHandler(DeviceHandlerParams{DeviceUC: uc}).RegisterDevice(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unknown platform", func(t *testing.T) {
		c, rec := newContext(http.MethodPost, "/devices", `{"fcm_token":"tok","device_id":"d-1","platform":"web"}`, userID)
		require.NoError(t, NewDeviceHandler(DeviceHandlerParams{DeviceUC: mockUC.NewMockDeviceUsecase(t)}).RegisterDevice(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFormHandler_GetForm(t *testing.T) {
	userID := uuid.New()
	formID := uuid.New()

	tests := []struct {
		name       string
		id         string
		setup      func(uc *mockUC.MockFormUsecase)
		wantStatus int
		wantCode   string
	}{
		{name: "bad id", id: "nope", wantStatus: http.StatusBadRequest, wantCode: "INVALID_ID"},
		{
			name: "not found", id: formID.String(),
			setup: func(uc *mockUC.MockFormUsecase) {
				uc.EXPECT().GetForm(mock.Anything, userID, formID).Return(nil, domainerrors.ErrFormNotFound)
			},
			wantStatus: http.StatusNotFound, wantCode: "FORM_NOT_FOUND",
		},
		{
			name: "found", id: formID.String(),
			setup: func(uc *mockUC.MockFormUsecase) {
				uc.EXPECT().GetForm(mock.Anything, userID, formID).Return(&entity.ClaimForm{ID: formID, UserID: userID}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUC.NewMockFormUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}

			c, rec := newContext(http.MethodGet, "/forms/"+tt.id, "", userID)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			require.NoError(t, NewFormHandler(FormHandlerParams{FormUC: uc}).GetForm(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec))
			}
		})
	}
}
