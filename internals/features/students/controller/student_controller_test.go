package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	classModel "schoolku_backend/internals/features/classes/model"
	parentModel "schoolku_backend/internals/features/parents/model"
	studentModel "schoolku_backend/internals/features/students/model"
	studentRoute "schoolku_backend/internals/features/students/route"
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
		&classModel.ClassModel{},
		&parentModel.ParentModel{},
		&studentModel.StudentModel{},
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
	studentRoute.StudentUserRoutes(app.Group("/api/u"), db)
	studentRoute.StudentAdminRoutes(app.Group("/api/a"), db)
	return app, db
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

func TestCreateStudentDefaultsPhotoByGender(t *testing.T) {
	app, db := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/a/students/", fiber.Map{
		"student_first_name": "Amira",
		"student_last_name":  "Ben Youssef",
		"student_gender":     "f",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var m studentModel.StudentModel
	require.NoError(t, db.First(&m, "student_first_name = ?", "Amira").Error)
	require.NotNil(t, m.StudentPhoto)
	require.Equal(t, "/uploads/students/default_f.png", *m.StudentPhoto)
}

func TestStudentListJoinsClassAndParent(t *testing.T) {
	app, db := newTestApp(t)

	class := classModel.ClassModel{ClassName: "CP1"}
	require.NoError(t, db.Create(&class).Error)
	parent := parentModel.ParentModel{ParentName: "Mr Parent"}
	require.NoError(t, db.Create(&parent).Error)

	resp := doJSON(t, app, http.MethodPost, "/api/a/students/", fiber.Map{
		"student_first_name": "Karim",
		"student_last_name":  "Haddad",
		"student_class_id":   class.ClassID,
		"student_parent_id":  parent.ParentID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/u/students/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	require.Len(t, body.Data, 1)

	joinedClass := body.Data[0]["student_class"].(map[string]any)
	require.Equal(t, "CP1", joinedClass["class_name"])
	joinedParent := body.Data[0]["student_parent"].(map[string]any)
	require.Equal(t, "Mr Parent", joinedParent["parent_name"])
}

func TestStudentFilterByClass(t *testing.T) {
	app, db := newTestApp(t)

	a := classModel.ClassModel{ClassName: "A"}
	b := classModel.ClassModel{ClassName: "B"}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&b).Error)

	for i, classID := range []int{a.ClassID, a.ClassID, b.ClassID} {
		id := classID
		s := studentModel.StudentModel{
			StudentFirstName: "S" + strconv.Itoa(i),
			StudentLastName:  "L" + strconv.Itoa(i),
			StudentClassID:   &id,
		}
		require.NoError(t, db.Create(&s).Error)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/u/students/?class_id="+strconv.Itoa(a.ClassID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	require.Len(t, body.Data, 2)
}

func TestUpdateStudentPartial(t *testing.T) {
	app, db := newTestApp(t)

	s := studentModel.StudentModel{StudentFirstName: "Old", StudentLastName: "Name"}
	require.NoError(t, db.Create(&s).Error)

	resp := doJSON(t, app, http.MethodPut, "/api/a/students/"+strconv.Itoa(s.StudentID), fiber.Map{
		"student_first_name": "New",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var after studentModel.StudentModel
	require.NoError(t, db.First(&after, "student_id = ?", s.StudentID).Error)
	require.Equal(t, "New", after.StudentFirstName)
	require.Equal(t, "Name", after.StudentLastName)
}

func TestGetMissingStudentReturns404(t *testing.T) {
	app, _ := newTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/u/students/42", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
