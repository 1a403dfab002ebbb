package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	classModel "schoolku_backend/internals/features/classes/model"
	parentModel "schoolku_backend/internals/features/parents/model"
	roomModel "schoolku_backend/internals/features/rooms/model"
	searchRoute "schoolku_backend/internals/features/search/route"
	studentModel "schoolku_backend/internals/features/students/model"
	subjectModel "schoolku_backend/internals/features/subjects/model"
	teacherModel "schoolku_backend/internals/features/teachers/model"
	userModel "schoolku_backend/internals/features/users/model"

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
		&classModel.ClassModel{},
		&parentModel.ParentModel{},
		&subjectModel.SubjectModel{},
		&roomModel.RoomModel{},
		&userModel.UserModel{},
		&teacherModel.TeacherModel{},
		&studentModel.StudentModel{},
	))

	app := fiber.New()
	searchRoute.SearchUserRoutes(app.Group("/api/u"), db)
	return app, db
}

func search(t *testing.T, app *fiber.App, q string) map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/u/search?q="+q, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out["data"].(map[string]any)
}

func TestSearchShortQueryReturnsEmptyBuckets(t *testing.T) {
	app, db := newTestApp(t)
	require.NoError(t, db.Create(&studentModel.StudentModel{
		StudentFirstName: "Amine", StudentLastName: "Gharbi",
	}).Error)

	data := search(t, app, "a")
	require.Empty(t, data["students"])
	require.Empty(t, data["teachers"])
}

func TestSearchFansOutAcrossTypes(t *testing.T) {
	app, db := newTestApp(t)

	require.NoError(t, db.Create(&studentModel.StudentModel{
		StudentFirstName: "Mariam", StudentLastName: "Karoui",
	}).Error)
	require.NoError(t, db.Create(&teacherModel.TeacherModel{TeacherName: "Mariem Jlassi"}).Error)
	require.NoError(t, db.Create(&subjectModel.SubjectModel{SubjectName: "Marine Biology"}).Error)
	require.NoError(t, db.Create(&roomModel.RoomModel{RoomName: "Mari Lab"}).Error)

	data := search(t, app, "mari")
	require.Len(t, data["students"].([]any), 1)
	require.Len(t, data["teachers"].([]any), 1)
	require.Len(t, data["subjects"].([]any), 1)
	require.Len(t, data["rooms"].([]any), 1)
	require.Empty(t, data["parents"])

	hit := data["students"].([]any)[0].(map[string]any)
	require.Equal(t, "student", hit["type"])
	require.Equal(t, "Mariam Karoui", hit["title"])
	require.Equal(t, "/students/1", hit["href"])
}

func TestSearchCapsPerType(t *testing.T) {
	app, db := newTestApp(t)

	for i := 0; i < 8; i++ {
		require.NoError(t, db.Create(&studentModel.StudentModel{
			StudentFirstName: "Common",
			StudentLastName:  "Name" + strconv.Itoa(i),
		}).Error)
	}

	data := search(t, app, "common")
	require.Len(t, data["students"].([]any), 5)
}

func TestSearchMatchesCaseInsensitive(t *testing.T) {
	app, db := newTestApp(t)
	require.NoError(t, db.Create(&classModel.ClassModel{ClassName: "TERMINALE"}).Error)

	data := search(t, app, "terminale")
	require.Len(t, data["classes"].([]any), 1)
}
