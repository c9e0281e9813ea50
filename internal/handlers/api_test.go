package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"thehook-backend/internal/handlers"
	"thehook-backend/internal/router"
	"thehook-backend/internal/store"
)

type orderResponse struct {
	ID             string  `json:"_id"`
	TotalAmount    float64 `json:"total_amount"`
	PaymentStatus  string  `json:"payment_status"`
	DeliveryStatus string  `json:"delivery_status"`
	Items          []struct {
		MenuItemID string `json:"menu_item_id"`
		Quantity   int    `json:"quantity"`
	} `json:"items"`
}

func newServer(t *testing.T, policy handlers.OrderPolicy) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return router.New(store.NewMemory(), policy, "")
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createMenuItem(t *testing.T, r *gin.Engine, name, category string, price float64) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/menu", gin.H{
		"name":     name,
		"category": category,
		"price":    price,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID string `json:"_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func createOrder(t *testing.T, r *gin.Engine, body any) orderResponse {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order orderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	require.NotEmpty(t, order.ID)
	return order
}
