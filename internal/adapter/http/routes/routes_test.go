package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Skale-Club/xtimator/internal/app"
	"github.com/Skale-Club/xtimator/internal/config"
	"github.com/Skale-Club/xtimator/internal/infrastructure/clock"
	"github.com/Skale-Club/xtimator/internal/infrastructure/logging"
	"github.com/Skale-Club/xtimator/internal/infrastructure/share"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type apiClient struct {
	t      *testing.T
	router *gin.Engine
}

func (c apiClient) do(method, path string, payload any, wantStatus int) map[string]any {
	c.t.Helper()

	var req *http.Request
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(c.t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	require.Equal(c.t, wantStatus, w.Code, w.Body.String())

	body := map[string]any{}
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return body
}

func TestRouter_EstimateJourney(t *testing.T) {
	gin.SetMode(gin.TestMode)

	clip := &share.MemoryClipboard{}
	cfg := config.Config{
		StorageBackend: config.BackendMemory,
		StorageKey:     "journey",
		PhoneRegion:    "BR",
	}
	a, err := app.New(context.Background(), cfg,
		app.WithClock(clock.Fake(time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC))),
		app.WithLogger(logging.Discard()),
		app.WithShare(share.Unavailable{}, clip),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(context.Background()) })

	api := apiClient{t: t, router: NewRouter(a)}

	pong := api.do(http.MethodGet, "/v1/ping", nil, http.StatusOK)
	require.Equal(t, "pong", pong["message"])

	status := api.do(http.MethodGet, "/v1/onboarding", nil, http.StatusOK)
	require.Equal(t, false, status["complete"])

	api.do(http.MethodPut, "/v1/onboarding/business", map[string]any{"business_name": "Pinturas Silva"}, http.StatusOK)
	applied := api.do(http.MethodPost, "/v1/onboarding/template", map[string]any{"template_id": "painting"}, http.StatusOK)

	var serviceID string
	for _, raw := range applied["services"].([]any) {
		svc := raw.(map[string]any)
		if svc["name"] == "Pintura Parede Lisa" {
			serviceID = svc["id"].(string)
		}
	}
	require.NotEmpty(t, serviceID)

	status = api.do(http.MethodGet, "/v1/onboarding", nil, http.StatusOK)
	require.Equal(t, true, status["complete"])

	api.do(http.MethodPatch, "/v1/settings", map[string]any{"tax_rate": 10}, http.StatusOK)

	draft := api.do(http.MethodPost, "/v1/drafts", nil, http.StatusCreated)
	draftPath := "/v1/drafts/" + draft["id"].(string)

	api.do(http.MethodPut, draftPath+"/step", map[string]any{"step": "items"}, http.StatusBadRequest)
	api.do(http.MethodPut, draftPath+"/customer", map[string]any{"name": "Maria"}, http.StatusOK)
	api.do(http.MethodPut, draftPath+"/step", map[string]any{"step": "items"}, http.StatusOK)
	api.do(http.MethodPut, draftPath+"/step", map[string]any{"step": "review"}, http.StatusBadRequest)

	draft = api.do(http.MethodPost, draftPath+"/items", map[string]any{"service_id": serviceID, "quantity": 10}, http.StatusOK)
	require.Equal(t, 250.0, draft["subtotal"])
	require.Equal(t, 275.0, draft["total"])

	api.do(http.MethodPut, draftPath+"/step", map[string]any{"step": "review"}, http.StatusOK)

	estimate := api.do(http.MethodPost, draftPath+"/finalize", nil, http.StatusCreated)
	require.Equal(t, "Orçamento - Maria", estimate["title"])
	require.Equal(t, "draft", estimate["status"])
	require.Equal(t, 275.0, estimate["total"])
	api.do(http.MethodGet, draftPath, nil, http.StatusNotFound)

	estimatePath := "/v1/estimates/" + estimate["id"].(string)
	api.do(http.MethodPost, estimatePath+"/accept", nil, http.StatusConflict)

	sent := api.do(http.MethodPost, estimatePath+"/send", nil, http.StatusOK)
	require.Equal(t, "sent", sent["status"])
	require.Equal(t, "Enviado", sent["status_label"])

	shared := api.do(http.MethodPost, estimatePath+"/share", nil, http.StatusOK)
	require.Equal(t, "clipboard", shared["channel"])
	require.Equal(t, shared["text"], clip.Last())
	require.Contains(t, clip.Last(), "R$ 275,00")

	dashboard := api.do(http.MethodGet, "/v1/dashboard", nil, http.StatusOK)
	require.Equal(t, 1.0, dashboard["total_estimates"])
	require.Equal(t, 1.0, dashboard["pending_estimates"])
	require.Equal(t, 275.0, dashboard["total_value"])

	require.NoError(t, a.Store.Flush(context.Background()))
	api.do(http.MethodPost, "/v1/settings/reset", nil, http.StatusNoContent)
	dashboard = api.do(http.MethodGet, "/v1/dashboard", nil, http.StatusOK)
	require.Equal(t, 0.0, dashboard["total_estimates"])
}
