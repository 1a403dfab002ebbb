package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	subjectModel "schoolku_backend/internals/features/subjects/model"
	teacherModel "schoolku_backend/internals/features/teachers/model"
	teacherRoute "schoolku_backend/internals/features/teachers/route"
	userModel "schoolku_backend/internals/features/users/model"
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
		&subjectModel.SubjectModel{},
		&teacherModel.TeacherModel{},
		&userModel.UserModel{},
	))
	require.NoError(t, db.Exec("CREATE TABLE IF NOT EXISTS schedules (schedule_id INTEGER PRIMARY KEY, schedule_teacher_id INTEGER)").Error)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return helper.JsonError(c, code, err.Error())
		},
	})
	teacherRoute.TeacherUserRoutes(app.Group("/api/u"), db)
	teacherRoute.TeacherAdminRoutes(app.Group("/api/a"), db)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, target string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCreateTeacherCreatesAccount(t *testing.T) {
	app, db := newTestApp(t)

	resp := postJSON(t, app, "/api/a/teachers/", fiber.Map{
		"teacher_name":  "Sonia Mansour",
		"teacher_gender": "f",
		"user_login":    "sonia.mansour",
		"user_password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var teacher teacherModel.TeacherModel
	require.NoError(t, db.First(&teacher, "teacher_name = ?", "Sonia Mansour").Error)
	require.NotNil(t, teacher.TeacherPhoto)
	require.Equal(t, "/uploads/teachers/default_f.png", *teacher.TeacherPhoto)

	var account userModel.UserModel
	require.NoError(t, db.First(&account, "user_login = ?", "sonia.mansour").Error)
	require.Equal(t, "teacher", account.UserRole)
	require.NotNil(t, account.UserTeacherID)
	require.Equal(t, teacher.TeacherID, *account.UserTeacherID)
	require.NotEqual(t, "s3cret-pass", account.UserPassword)
}

func TestCreateTeacherRollsBackOnDuplicateLogin(t *testing.T) {
	app, db := newTestApp(t)

	resp := postJSON(t, app, "/api/a/teachers/", fiber.Map{
		"teacher_name":  "First Teacher",
		"user_login":    "shared.login",
		"user_password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, app, "/api/a/teachers/", fiber.Map{
		"teacher_name":  "Second Teacher",
		"user_login":    "shared.login",
		"user_password": "s3cret-pass",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// the orphan teacher row must not survive the rollback
	var teachers int64
	require.NoError(t, db.Model(&teacherModel.TeacherModel{}).Count(&teachers).Error)
	require.EqualValues(t, 1, teachers)

	var accounts int64
	require.NoError(t, db.Model(&userModel.UserModel{}).Count(&accounts).Error)
	require.EqualValues(t, 1, accounts)
}

func TestCreateTeacherValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/api/a/teachers/", fiber.Map{
		"teacher_name": "No Account",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
}

func TestDeleteTeacherRemovesAccount(t *testing.T) {
	app, db := newTestApp(t)

	resp := postJSON(t, app, "/api/a/teachers/", fiber.Map{
		"teacher_name":  "Leaving Teacher",
		"user_login":    "leaving.teacher",
		"user_password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var teacher teacherModel.TeacherModel
	require.NoError(t, db.First(&teacher, "teacher_name = ?", "Leaving Teacher").Error)

	req := httptest.NewRequest(http.MethodDelete,
		"/api/a/teachers/"+strconv.Itoa(teacher.TeacherID), nil)
	del, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, del.StatusCode)
	del.Body.Close()

	var accounts int64
	require.NoError(t, db.Model(&userModel.UserModel{}).
		Where("user_teacher_id = ?", teacher.TeacherID).Count(&accounts).Error)
	require.EqualValues(t, 0, accounts)
}
