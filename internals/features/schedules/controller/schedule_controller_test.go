package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	classModel "schoolku_backend/internals/features/classes/model"
	roomModel "schoolku_backend/internals/features/rooms/model"
	scheduleModel "schoolku_backend/internals/features/schedules/model"
	scheduleRoute "schoolku_backend/internals/features/schedules/route"
	subjectModel "schoolku_backend/internals/features/subjects/model"
	teacherModel "schoolku_backend/internals/features/teachers/model"
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
		&roomModel.RoomModel{},
		&classModel.ClassModel{},
		&userModel.UserModel{},
		&teacherModel.TeacherModel{},
		&scheduleModel.ScheduleModel{},
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
	scheduleRoute.ScheduleUserRoutes(app.Group("/api/u"), db)
	scheduleRoute.ScheduleAdminRoutes(app.Group("/api/a"), db)
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

func getJSON(t *testing.T, app *fiber.App, target string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()
	return resp, out
}

func TestCreateSchedulePinsClassPerspective(t *testing.T) {
	app, db := newTestApp(t)

	pinned := classModel.ClassModel{ClassName: "Pinned Class"}
	other := classModel.ClassModel{ClassName: "Other Class"}
	require.NoError(t, db.Create(&pinned).Error)
	require.NoError(t, db.Create(&other).Error)

	resp := postJSON(t, app,
		"/api/a/schedules/?perspective=class&entity_id="+strconv.Itoa(pinned.ClassID),
		fiber.Map{
			"schedule_as":       "2024/2025",
			"schedule_day":      "monday",
			"schedule_start":    "09:00",
			"schedule_duration": 1.0,
			// the body tries to point elsewhere; the view wins
			"schedule_class_id": other.ClassID,
		})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var row scheduleModel.ScheduleModel
	require.NoError(t, db.First(&row).Error)
	require.NotNil(t, row.ScheduleClassID)
	require.Equal(t, pinned.ClassID, *row.ScheduleClassID)
}

func TestCreateScheduleTeacherPerspectiveDerivesSubject(t *testing.T) {
	app, db := newTestApp(t)

	subject := subjectModel.SubjectModel{SubjectName: "Chemistry"}
	require.NoError(t, db.Create(&subject).Error)
	teacher := teacherModel.TeacherModel{
		TeacherName:      "Chem Teacher",
		TeacherSubjectID: &subject.SubjectID,
	}
	require.NoError(t, db.Create(&teacher).Error)

	resp := postJSON(t, app,
		"/api/a/schedules/?perspective=teacher&entity_id="+strconv.Itoa(teacher.TeacherID),
		fiber.Map{
			"schedule_as":       "2024/2025",
			"schedule_day":      "tuesday",
			"schedule_start":    "10:00",
			"schedule_duration": 2.0,
		})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var row scheduleModel.ScheduleModel
	require.NoError(t, db.First(&row).Error)
	require.NotNil(t, row.ScheduleTeacherID)
	require.Equal(t, teacher.TeacherID, *row.ScheduleTeacherID)
	require.NotNil(t, row.ScheduleSubjectID)
	require.Equal(t, subject.SubjectID, *row.ScheduleSubjectID)
}

func TestCreateScheduleTeacherPerspectiveOverridesBodySubject(t *testing.T) {
	app, db := newTestApp(t)

	own := subjectModel.SubjectModel{SubjectName: "Maths"}
	other := subjectModel.SubjectModel{SubjectName: "Arts"}
	require.NoError(t, db.Create(&own).Error)
	require.NoError(t, db.Create(&other).Error)
	teacher := teacherModel.TeacherModel{
		TeacherName:      "Maths Teacher",
		TeacherSubjectID: &own.SubjectID,
	}
	require.NoError(t, db.Create(&teacher).Error)

	resp := postJSON(t, app,
		"/api/a/schedules/?perspective=teacher&entity_id="+strconv.Itoa(teacher.TeacherID),
		fiber.Map{
			"schedule_as":       "2024/2025",
			"schedule_day":      "thursday",
			"schedule_start":    "09:00",
			"schedule_duration": 1.0,
			// the subject is read-only under this view; the body loses
			"schedule_subject_id": other.SubjectID,
		})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var row scheduleModel.ScheduleModel
	require.NoError(t, db.First(&row).Error)
	require.NotNil(t, row.ScheduleSubjectID)
	require.Equal(t, own.SubjectID, *row.ScheduleSubjectID)
}

func TestCreateScheduleRejectsSlotOutsideGrid(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/api/a/schedules/", fiber.Map{
		"schedule_as":       "2024/2025",
		"schedule_day":      "monday",
		"schedule_start":    "17:00",
		"schedule_duration": 3.0, // ends past the last grid hour
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestGridEmptyWithoutSelection(t *testing.T) {
	app, db := newTestApp(t)

	class := classModel.ClassModel{ClassName: "Some Class"}
	require.NoError(t, db.Create(&class).Error)
	entry := scheduleModel.ScheduleModel{
		ScheduleAs:       "2024/2025",
		ScheduleDay:      "monday",
		ScheduleStart:    "08:00",
		ScheduleDuration: 1,
		ScheduleClassID:  &class.ClassID,
	}
	require.NoError(t, db.Create(&entry).Error)

	resp, body := getJSON(t, app, "/api/u/schedules/grid?perspective=class&entity_id=0&year=2024/2025")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	require.Empty(t, data["entries"])
}

func TestGridPlacesVisibleEntries(t *testing.T) {
	app, db := newTestApp(t)

	class := classModel.ClassModel{ClassName: "Grid Class"}
	require.NoError(t, db.Create(&class).Error)
	subject := subjectModel.SubjectModel{SubjectName: "Biology"}
	require.NoError(t, db.Create(&subject).Error)

	entry := scheduleModel.ScheduleModel{
		ScheduleAs:        "2024/2025",
		ScheduleDay:       "wednesday",
		ScheduleStart:     "10:30",
		ScheduleDuration:  1.5,
		ScheduleClassID:   &class.ClassID,
		ScheduleSubjectID: &subject.SubjectID,
	}
	require.NoError(t, db.Create(&entry).Error)

	// a slot from another year stays out of view
	otherYear := scheduleModel.ScheduleModel{
		ScheduleAs:       "2023/2024",
		ScheduleDay:      "monday",
		ScheduleStart:    "08:00",
		ScheduleDuration: 1,
		ScheduleClassID:  &class.ClassID,
	}
	require.NoError(t, db.Create(&otherYear).Error)

	resp, body := getJSON(t, app,
		"/api/u/schedules/grid?perspective=class&entity_id="+strconv.Itoa(class.ClassID)+"&year=2024/2025")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	entries := data["entries"].([]any)
	require.Len(t, entries, 1)

	placed := entries[0].(map[string]any)
	placement := placed["grid_placement"].(map[string]any)
	require.Equal(t, 3.0, placement["column"]) // wednesday
	require.Equal(t, 2.5, placement["offset"]) // 10:30 is 2.5h past 08:00
	require.Equal(t, 1.5, placement["extent"])
	require.NotEmpty(t, placed["grid_color"])
}

func TestGridSkipsRowsWithUnparseableStart(t *testing.T) {
	app, db := newTestApp(t)

	class := classModel.ClassModel{ClassName: "Mixed Class"}
	require.NoError(t, db.Create(&class).Error)

	good := scheduleModel.ScheduleModel{
		ScheduleAs:       "2024/2025",
		ScheduleDay:      "monday",
		ScheduleStart:    "09:00",
		ScheduleDuration: 1,
		ScheduleClassID:  &class.ClassID,
	}
	require.NoError(t, db.Create(&good).Error)

	// rows written before start validation existed can carry junk
	bad := scheduleModel.ScheduleModel{
		ScheduleAs:       "2024/2025",
		ScheduleDay:      "monday",
		ScheduleStart:    "25:99",
		ScheduleDuration: 1,
		ScheduleClassID:  &class.ClassID,
	}
	require.NoError(t, db.Create(&bad).Error)

	resp, body := getJSON(t, app,
		"/api/u/schedules/grid?perspective=class&entity_id="+strconv.Itoa(class.ClassID)+"&year=2024/2025")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	entries := data["entries"].([]any)
	require.Len(t, entries, 1)
	placed := entries[0].(map[string]any)
	require.Equal(t, float64(good.ScheduleID), placed["schedule_id"])
}
