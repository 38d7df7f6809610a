package penalty

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSONRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestPenaltyEndpoints(t *testing.T) {
	f := setupFixture(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(f.svc)
	v1 := r.Group("/api/v1")
	h.RegisterRoutes(v1)
	h.RegisterAdminRoutes(v1)

	totalPath := fmt.Sprintf("/api/v1/customers/%d/penalties/total", f.customer.ID)

	rr := doJSONRequest(r, http.MethodGet, totalPath, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"total":"0.00"`)

	rr = doJSONRequest(r, http.MethodPost, "/api/v1/penalties", map[string]any{
		"customer_id": f.customer.ID, "amount": "100.00", "reason": "Late return",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = doJSONRequest(r, http.MethodPost, "/api/v1/penalties", map[string]any{
		"customer_id": f.customer.ID, "amount": "0",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSONRequest(r, http.MethodGet, totalPath, nil)
	assert.Contains(t, rr.Body.String(), `"total":"100.00"`)

	rr = doJSONRequest(r, http.MethodGet, fmt.Sprintf("/api/v1/customers/%d/penalties", f.customer.ID), nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Late return")

	_, err := f.sales.ProcessTransaction(t.Context(), f.customer.ID, f.item.ID, 2)
	require.NoError(t, err)

	rr = doJSONRequest(r, http.MethodGet, fmt.Sprintf("/api/v1/customers/%d/transactions", f.customer.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Data struct {
			CustomerID   int64                 `json:"customer_id"`
			Transactions []TransactionResponse `json:"transactions"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, f.customer.ID, body.Data.CustomerID)
	require.Len(t, body.Data.Transactions, 1)
	assert.Equal(t, f.item.ID, body.Data.Transactions[0].EquipmentID)
	assert.Equal(t, 2, body.Data.Transactions[0].Quantity)
	assert.Equal(t, "59.98", body.Data.Transactions[0].TotalPrice)
	assert.False(t, body.Data.Transactions[0].TransactionDate.IsZero())

	rr = doJSONRequest(r, http.MethodGet, "/api/v1/customers/999/penalties/total", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSONRequest(r, http.MethodGet, "/api/v1/customers/999/transactions", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
