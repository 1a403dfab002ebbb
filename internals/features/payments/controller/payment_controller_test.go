package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	parentModel "schoolku_backend/internals/features/parents/model"
	paymentModel "schoolku_backend/internals/features/payments/model"
	paymentRoute "schoolku_backend/internals/features/payments/route"
	helper "schoolku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&parentModel.ParentModel{},
		&paymentModel.PaymentModel{},
	))

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return helper.JsonError(c, code, err.Error())
		},
	})
	paymentRoute.PaymentUserRoutes(app.Group("/api/u"), db)
	paymentRoute.PaymentAdminRoutes(app.Group("/api/a"), db)
	return app, db
}

func seedParent(t *testing.T, db *gorm.DB, name string) int {
	t.Helper()
	p := parentModel.ParentModel{ParentName: name}
	require.NoError(t, db.Create(&p).Error)
	return p.ParentID
}

func seedPayment(t *testing.T, db *gorm.DB, parentID int, as string, amount float64) {
	t.Helper()
	p := paymentModel.PaymentModel{
		PaymentAmount:   amount,
		PaymentType:     paymentModel.PaymentTypeCash,
		PaymentAs:       as,
		PaymentParentID: &parentID,
	}
	require.NoError(t, db.Create(&p).Error)
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCreateAndGetPayment(t *testing.T) {
	app, db := newTestApp(t)
	parentID := seedParent(t, db, "Ali Ben Salah")

	resp := doJSON(t, app, http.MethodPost, "/api/a/payments/", fiber.Map{
		"payment_amount":    150.0,
		"payment_type":      "transfer",
		"payment_as":        "2024/2025",
		"payment_parent_id": parentID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	data := created["data"].(map[string]any)
	id := int(data["payment_id"].(float64))
	require.Greater(t, id, 0)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/u/payments/%d", id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody(t, resp)["data"].(map[string]any)
	require.Equal(t, 150.0, got["payment_amount"])
	require.Equal(t, "2024/2025", got["payment_as"])
	require.Equal(t, "transfer", got["payment_type"])
}

func TestPaymentSummaryGroupsByParentAndYear(t *testing.T) {
	app, db := newTestApp(t)
	p1 := seedParent(t, db, "Parent One")
	p2 := seedParent(t, db, "Parent Two")

	seedPayment(t, db, p1, "2024/2025", 100)
	seedPayment(t, db, p1, "2024/2025", 50)
	seedPayment(t, db, p1, "2023/2024", 70)
	seedPayment(t, db, p2, "2024/2025", 200)

	resp := doJSON(t, app, http.MethodGet, "/api/u/payments/summary?parent_id=all&year=all", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decodeBody(t, resp)["data"].(map[string]any)

	require.Equal(t, 420.0, data["total_amount"])
	require.Equal(t, 4.0, data["payment_count"])
	buckets := data["buckets"].([]any)
	require.Len(t, buckets, 3)

	totals := map[string]float64{}
	for _, raw := range buckets {
		b := raw.(map[string]any)
		key := fmt.Sprintf("%v|%v", b["payment_parent_id"], b["payment_as"])
		totals[key] = b["total_amount"].(float64)
	}
	require.Equal(t, 150.0, totals[fmt.Sprintf("%d|2024/2025", p1)])
	require.Equal(t, 70.0, totals[fmt.Sprintf("%d|2023/2024", p1)])
	require.Equal(t, 200.0, totals[fmt.Sprintf("%d|2024/2025", p2)])
}

func TestPaymentSummaryFilters(t *testing.T) {
	app, db := newTestApp(t)
	p1 := seedParent(t, db, "Parent One")
	p2 := seedParent(t, db, "Parent Two")

	seedPayment(t, db, p1, "2024/2025", 100)
	seedPayment(t, db, p1, "2023/2024", 70)
	seedPayment(t, db, p2, "2024/2025", 200)

	resp := doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/u/payments/summary?parent_id=%d&year=2024/2025", p1), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decodeBody(t, resp)["data"].(map[string]any)
	require.Equal(t, 100.0, data["total_amount"])
	require.Equal(t, 1.0, data["payment_count"])
}

func TestPaymentYearsIncludesCurrentAndPersisted(t *testing.T) {
	app, db := newTestApp(t)
	p1 := seedParent(t, db, "Parent One")
	seedPayment(t, db, p1, "2019/2020", 10)
	seedPayment(t, db, p1, "2019/2020", 20)

	resp := doJSON(t, app, http.MethodGet, "/api/u/payments/years", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	years := decodeBody(t, resp)["data"].([]any)

	require.GreaterOrEqual(t, len(years), 2)
	require.Contains(t, years, "2019/2020")
	// duplicates collapse
	seen := map[any]bool{}
	for _, y := range years {
		require.False(t, seen[y], "duplicate year %v", y)
		seen[y] = true
	}
}

func TestDeleteMissingPaymentReturns404(t *testing.T) {
	app, _ := newTestApp(t)
	resp := doJSON(t, app, http.MethodDelete, "/api/a/payments/999", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
