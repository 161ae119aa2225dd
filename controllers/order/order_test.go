package ordercontroller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/skyyuga/tyremart-api/authz"
	"github.com/skyyuga/tyremart-api/config"
	"github.com/skyyuga/tyremart-api/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderLine{},
	))
	return db
}

func setupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	feed := NewFeed()

	r := gin.New()
	r.POST("/orders", CreateOrder(db, feed))
	r.GET("/orders", GetAllOrders(db, cfg))
	r.GET("/orders/user", GetOrdersByEmail(db))
	r.PUT("/orders/:orderID/status", UpdateOrderStatus(db, cfg, feed))
	r.DELETE("/orders", DeleteAllOrders(db, cfg))
	return r
}

func adminConfig(emails string) *config.Config {
	return &config.Config{AdminEmails: authz.Parse(emails)}
}

func seedUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		ID:            "uid-1",
		Email:         "ravi@example.in",
		Name:          "Ravi",
		Phone:         "9876543210",
		VehicleNumber: "MH12AB1234",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, id string, cost, discount float64, gstRate int) models.Product {
	t.Helper()
	product := models.Product{
		ID:        id,
		Title:     "Tyre " + id,
		ImageURLs: []string{"https://cdn.example.in/" + id + ".jpg"},
		Cost:      cost,
		Category:  "Tyres",
		Discount:  discount,
		GSTRate:   gstRate,
		Size:      "195/65R15",
		Models:    []string{"Swift"},
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func validOrderBody(productID string) map[string]interface{} {
	return map[string]interface{}{
		"products":        []map[string]interface{}{{"productId": productID, "quantity": 2}},
		"paymentMethod":   "UPI",
		"referenceNumber": 987654321,
		"name":            "Ravi",
		"email":           "ravi@example.in",
		"contactNumber":   "9876543210",
		"address":         "12 MG Road, Pune",
		"state":           "Maharashtra",
		"pincode":         "411001",
		"vehicleNumber":   "MH12AB1234",
	}
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderPersistsPendingOrder(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db)
	seedProduct(t, db, "p1", 1000, 100, 5)
	r := setupRouter(db, adminConfig(""))

	w := doJSON(r, http.MethodPost, "/orders", validOrderBody("p1"))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Message)

	var order models.Order
	require.NoError(t, db.Preload("Lines").First(&order, "id = ?", resp.Message).Error)
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.Equal(t, 1800.0, order.TotalCost) // (1000-100) * 2, server-priced
	require.Equal(t, "uid-1", order.UserID)
	require.Len(t, order.Lines, 1)
	require.Equal(t, 2, order.Lines[0].Quantity)
}

func TestCreateOrderShortAddressRejectedBeforePersistence(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db)
	seedProduct(t, db, "p1", 1000, 0, 18)
	r := setupRouter(db, adminConfig(""))

	body := validOrderBody("p1")
	body["address"] = "12 MG Rd" // 9 characters

	w := doJSON(r, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"success":false,"message":"Error Creating Order"}`, w.Body.String())

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	require.Zero(t, count, "nothing may be persisted when validation fails")
}

func TestCreateOrderValidation(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db)
	seedProduct(t, db, "p1", 1000, 0, 18)
	r := setupRouter(db, adminConfig(""))

	cases := map[string]func(map[string]interface{}){
		"empty cart":       func(b map[string]interface{}) { b["products"] = []map[string]interface{}{} },
		"bad pincode":      func(b map[string]interface{}) { b["pincode"] = "4110" },
		"alpha pincode":    func(b map[string]interface{}) { b["pincode"] = "41100a" },
		"blank state":      func(b map[string]interface{}) { b["state"] = "  " },
		"no reference":     func(b map[string]interface{}) { b["referenceNumber"] = 0 },
		"unknown payment":  func(b map[string]interface{}) { b["paymentMethod"] = "COD" },
		"unknown customer": func(b map[string]interface{}) { b["email"] = "nobody@example.in" },
		"missing product":  func(b map[string]interface{}) { b["products"] = []map[string]interface{}{{"productId": "ghost", "quantity": 1}} },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			body := validOrderBody("p1")
			mutate(body)

			w := doJSON(r, http.MethodPost, "/orders", body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			require.JSONEq(t, `{"success":false,"message":"Error Creating Order"}`, w.Body.String())
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	require.Zero(t, count)
}

// Order lines freeze purchase-time prices: editing the catalog later
// must not reprice a stored order.
func TestOrderKeepsPurchaseTimePricing(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db)
	seedProduct(t, db, "p1", 1000, 100, 5)
	r := setupRouter(db, adminConfig(""))

	w := doJSON(r, http.MethodPost, "/orders", validOrderBody("p1"))
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", "p1").
		Updates(map[string]interface{}{"cost": 5000.0, "discount": 0.0}).Error)

	var order models.Order
	require.NoError(t, db.Preload("Lines").First(&order).Error)
	require.Equal(t, 1800.0, order.TotalCost)
	require.Equal(t, 1000.0, order.Lines[0].UnitCost)
	require.Equal(t, 100.0, order.Lines[0].Discount)
}

func TestCreateOrderIdempotencyToken(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db)
	seedProduct(t, db, "p1", 1000, 0, 18)
	r := setupRouter(db, adminConfig(""))

	body := validOrderBody("p1")
	body["clientToken"] = "checkout-42"

	first := doJSON(r, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusCreated, first.Code)
	second := doJSON(r, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusCreated, second.Code)

	require.JSONEq(t, first.Body.String(), second.Body.String())

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestCreateOrderWithoutTokenIsNotIdempotent(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db)
	seedProduct(t, db, "p1", 1000, 0, 18)
	r := setupRouter(db, adminConfig(""))

	doJSON(r, http.MethodPost, "/orders", validOrderBody("p1"))
	doJSON(r, http.MethodPost, "/orders", validOrderBody("p1"))

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	require.EqualValues(t, 2, count)
}

func TestGetOrdersByEmail(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db)
	seedProduct(t, db, "p1", 1000, 0, 18)
	r := setupRouter(db, adminConfig(""))

	doJSON(r, http.MethodPost, "/orders", validOrderBody("p1"))

	w := doJSON(r, http.MethodGet, "/orders/user?email=ravi@example.in", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)

	// Unknown email: empty list, not an error.
	w = doJSON(r, http.MethodGet, "/orders/user?email=other@example.in", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
}

func TestAdminReadsReturnStructuredErrors(t *testing.T) {
	db := setupDB(t)

	// Caller not on the configured list.
	r := setupRouter(db, adminConfig("owner@shop.in"))
	w := doJSON(r, http.MethodGet, "/orders?email=intruder@example.in", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"error":"Access denied"}`, w.Body.String())

	// List not configured at all: a different, distinguishable message.
	r = setupRouter(db, adminConfig(""))
	w = doJSON(r, http.MethodGet, "/orders?email=owner@shop.in", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"error":"Admin list not configured"}`, w.Body.String())
}

func TestGetAllOrdersForAdmin(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db)
	seedProduct(t, db, "p1", 1000, 0, 18)
	r := setupRouter(db, adminConfig("owner@shop.in"))

	doJSON(r, http.MethodPost, "/orders", validOrderBody("p1"))

	w := doJSON(r, http.MethodGet, "/orders?email=owner@shop.in", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
}

func createOrderFor(t *testing.T, db *gorm.DB, r *gin.Engine) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/orders", validOrderBody("p1"))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Message
}

func TestUpdateOrderStatus(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db)
	seedProduct(t, db, "p1", 1000, 0, 18)
	r := setupRouter(db, adminConfig("owner@shop.in"))
	orderID := createOrderFor(t, db, r)

	w := doJSON(r, http.MethodPut, "/orders/"+orderID+"/status?email=owner@shop.in",
		map[string]string{"status": "ACCEPTED"})
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	require.NoError(t, db.First(&order, "id = ?", orderID).Error)
	require.Equal(t, models.OrderStatusAccepted, order.Status)
}

func TestUpdateOrderStatusRequiresAllowListedCaller(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db)
	seedProduct(t, db, "p1", 1000, 0, 18)
	r := setupRouter(db, adminConfig("owner@shop.in"))
	orderID := createOrderFor(t, db, r)

	w := doJSON(r, http.MethodPut, "/orders/"+orderID+"/status?email=intruder@example.in",
		map[string]string{"status": "ACCEPTED"})
	require.JSONEq(t, `{"error":"Access denied"}`, w.Body.String())

	var order models.Order
	require.NoError(t, db.First(&order, "id = ?", orderID).Error)
	require.Equal(t, models.OrderStatusPending, order.Status)
}

// Setting the current status again succeeds and changes nothing else.
func TestUpdateOrderStatusIdempotent(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db)
	seedProduct(t, db, "p1", 1000, 0, 18)
	r := setupRouter(db, adminConfig("owner@shop.in"))
	orderID := createOrderFor(t, db, r)

	var before models.Order
	require.NoError(t, db.First(&before, "id = ?", orderID).Error)

	w := doJSON(r, http.MethodPut, "/orders/"+orderID+"/status?email=owner@shop.in",
		map[string]string{"status": "PENDING"})
	require.Equal(t, http.StatusOK, w.Code)

	var after models.Order
	require.NoError(t, db.First(&after, "id = ?", orderID).Error)
	require.Equal(t, before.Status, after.Status)
	require.Equal(t, before.TotalCost, after.TotalCost)
	require.Equal(t, before.ReferenceNumber, after.ReferenceNumber)
}

func TestUpdateOrderStatusCompatModeAllowsAnyOverwrite(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db)
	seedProduct(t, db, "p1", 1000, 0, 18)
	r := setupRouter(db, adminConfig("owner@shop.in"))
	orderID := createOrderFor(t, db, r)

	// PENDING straight to DELIVERED: illegal in the flow, accepted in
	// compat mode.
	w := doJSON(r, http.MethodPut, "/orders/"+orderID+"/status?email=owner@shop.in",
		map[string]string{"status": "DELIVERED"})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateOrderStatusStrictModeRejectsIllegalTransition(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db)
	seedProduct(t, db, "p1", 1000, 0, 18)
	cfg := adminConfig("owner@shop.in")
	cfg.StrictStatusFlow = true
	r := setupRouter(db, cfg)
	orderID := createOrderFor(t, db, r)

	w := doJSON(r, http.MethodPut, "/orders/"+orderID+"/status?email=owner@shop.in",
		map[string]string{"status": "DELIVERED"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var order models.Order
	require.NoError(t, db.First(&order, "id = ?", orderID).Error)
	require.Equal(t, models.OrderStatusPending, order.Status)
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(db, adminConfig("owner@shop.in"))

	w := doJSON(r, http.MethodPut, "/orders/missing/status?email=owner@shop.in",
		map[string]string{"status": "ACCEPTED"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAllOrders(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db)
	seedProduct(t, db, "p1", 1000, 0, 18)
	r := setupRouter(db, adminConfig("owner@shop.in"))

	doJSON(r, http.MethodPost, "/orders", validOrderBody("p1"))
	doJSON(r, http.MethodPost, "/orders", validOrderBody("p1"))

	w := doJSON(r, http.MethodDelete, "/orders?email=owner@shop.in", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"deletedCount":2}`, w.Body.String())

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	require.Zero(t, count)
}
