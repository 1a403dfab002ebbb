package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	academicsRoute "schoolku_backend/internals/features/academics/route"
	"schoolku_backend/internals/features/academics/schoolyear"

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

	require.NoError(t, db.Exec("CREATE TABLE payments (payment_id INTEGER PRIMARY KEY, payment_as TEXT)").Error)
	require.NoError(t, db.Exec("CREATE TABLE schedules (schedule_id INTEGER PRIMARY KEY, schedule_as TEXT)").Error)

	app := fiber.New()
	academicsRoute.SchoolYearUserRoutes(app.Group("/api/u"), db)
	return app, db
}

func TestSchoolYearsMergeBothSources(t *testing.T) {
	app, db := newTestApp(t)

	require.NoError(t, db.Exec("INSERT INTO payments (payment_as) VALUES ('2020/2021'), ('2020/2021'), ('2021/2022')").Error)
	require.NoError(t, db.Exec("INSERT INTO schedules (schedule_as) VALUES ('2021/2022'), ('2019/2020')").Error)

	req := httptest.NewRequest(http.MethodGet, "/api/u/school-years", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var out struct {
		Data struct {
			Current string   `json:"current"`
			Years   []string `json:"years"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	require.Equal(t, schoolyear.CurrentLabel(time.Now()), out.Data.Current)
	require.Contains(t, out.Data.Years, "2019/2020")
	require.Contains(t, out.Data.Years, "2020/2021")
	require.Contains(t, out.Data.Years, "2021/2022")
	require.Contains(t, out.Data.Years, out.Data.Current)

	// dedup across sources
	seen := map[string]bool{}
	for _, y := range out.Data.Years {
		require.False(t, seen[y], "duplicate year %s", y)
		seen[y] = true
	}
	// descending order
	for i := 1; i < len(out.Data.Years); i++ {
		require.Greater(t, out.Data.Years[i-1], out.Data.Years[i])
	}
}

func TestSchoolYearsEmptyStoreStillHasCurrent(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/u/school-years", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var out struct {
		Data struct {
			Current string   `json:"current"`
			Years   []string `json:"years"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, []string{out.Data.Current}, out.Data.Years)
}
