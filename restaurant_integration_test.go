package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-ops/repository"
	"restaurant-ops/router"
	"restaurant-ops/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// End-to-end flow through the HTTP layer against the in-memory stores:
// register/login, set up a table and a menu item, reserve, order, settle,
// and walk the order to COMPLETED, which frees the table.
func TestEndToEndDineInFlow(t *testing.T) {
	r := router.SetupRouter(router.NewServices(repository.NewMemoryRepositories()))

	token := loginTest(t, r)

	tableID := createTableTest(t, r, token)
	menuItemID := createMenuItemTest(t, r, token, "Pizza Margherita", "9.99")

	// Reserving twice must refuse the second call with 409.
	doRequest(t, r, token, "POST", "/api/tables/"+tableID+"/reserve", nil, http.StatusOK)
	doRequest(t, r, token, "POST", "/api/tables/"+tableID+"/reserve", nil, http.StatusConflict)

	orderID := createOrderTest(t, r, token, tableID)

	// Two adds of the same item merge into one line of 3.
	addItemTest(t, r, token, orderID, menuItemID, 2)
	order := addItemTest(t, r, token, orderID, menuItemID, 1)
	items := order["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, float64(3), items[0].(map[string]interface{})["quantity"])
	assert.Equal(t, "29.97", order["total_amount"])

	// Overpaying is rejected; settling the exact total succeeds.
	payBody := map[string]interface{}{"amount": "100.00", "method": "CREDIT_CARD"}
	doRequest(t, r, token, "POST", "/api/orders/"+orderID+"/payments", payBody, http.StatusBadRequest)
	payBody["amount"] = "29.97"
	resp := doRequest(t, r, token, "POST", "/api/orders/"+orderID+"/payments", payBody, http.StatusCreated)
	payment := resp["data"].(map[string]interface{})
	assert.Equal(t, "COMPLETED", payment["status"])
	assert.Equal(t, orderID, payment["order_id"])

	// Illegal jump straight to SERVED is a 422.
	statusBody := map[string]interface{}{"status": "SERVED"}
	doRequest(t, r, token, "PATCH", "/api/orders/"+orderID+"/status", statusBody, http.StatusUnprocessableEntity)

	for _, status := range []string{"CONFIRMED", "PREPARING", "READY_TO_SERVE", "SERVED", "COMPLETED"} {
		doRequest(t, r, token, "PATCH", "/api/orders/"+orderID+"/status",
			map[string]interface{}{"status": status}, http.StatusOK)
	}

	// Completing the dine-in order released its table.
	resp = doRequest(t, r, token, "GET", "/api/tables/"+tableID, nil, http.StatusOK)
	table := resp["data"].(map[string]interface{})
	assert.Equal(t, "AVAILABLE", table["status"])

	resp = doRequest(t, r, token, "GET", "/api/payments?order_id="+orderID, nil, http.StatusOK)
	payments := resp["data"].([]interface{})
	assert.Len(t, payments, 1)
}

func TestAuthRequired(t *testing.T) {
	r := router.SetupRouter(router.NewServices(repository.NewMemoryRepositories()))

	req := httptest.NewRequest("GET", "/api/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func loginTest(t *testing.T, r *gin.Engine) string {
	t.Helper()

	registerBody := map[string]interface{}{
		"username": "admin1",
		"email":    "admin@example.com",
		"password": "supersecret",
		"role":     "ADMIN",
	}
	w := rawRequest(t, r, "", "POST", "/auth/register", registerBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	loginBody := map[string]interface{}{
		"username": "admin1",
		"password": "supersecret",
	}
	w = rawRequest(t, r, "", "POST", "/auth/login", loginBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	token, ok := data["token"].(string)
	require.True(t, ok && token != "")
	return token
}

func createTableTest(t *testing.T, r *gin.Engine, token string) string {
	t.Helper()
	resp := doRequest(t, r, token, "POST", "/api/tables",
		map[string]interface{}{"table_number": 1, "capacity": 4}, http.StatusCreated)
	return resp["data"].(map[string]interface{})["id"].(string)
}

func createMenuItemTest(t *testing.T, r *gin.Engine, token, name, price string) string {
	t.Helper()
	resp := doRequest(t, r, token, "POST", "/api/menu", map[string]interface{}{
		"name":     name,
		"price":    price,
		"category": "MAIN_COURSE",
	}, http.StatusCreated)
	return resp["data"].(map[string]interface{})["id"].(string)
}

func createOrderTest(t *testing.T, r *gin.Engine, token, tableID string) string {
	t.Helper()
	resp := doRequest(t, r, token, "POST", "/api/orders", map[string]interface{}{
		"order_type": "DINE_IN",
		"table_id":   tableID,
	}, http.StatusCreated)
	return resp["data"].(map[string]interface{})["id"].(string)
}

func addItemTest(t *testing.T, r *gin.Engine, token, orderID, menuItemID string, quantity int) map[string]interface{} {
	t.Helper()
	resp := doRequest(t, r, token, "POST", "/api/orders/"+orderID+"/items", map[string]interface{}{
		"menu_item_id": menuItemID,
		"quantity":     quantity,
	}, http.StatusOK)
	return resp["data"].(map[string]interface{})
}

func doRequest(t *testing.T, r *gin.Engine, token, method, path string, body interface{}, wantStatus int) map[string]interface{} {
	t.Helper()
	w := rawRequest(t, r, token, method, path, body)
	require.Equal(t, wantStatus, w.Code, "%s %s: %s", method, path, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func rawRequest(t *testing.T, r *gin.Engine, token, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
