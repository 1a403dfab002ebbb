package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"schoolku_backend/internals/features/academics/schoolyear"
	scheduleDTO "schoolku_backend/internals/features/schedules/dto"
	"schoolku_backend/internals/features/schedules/grid"
	scheduleModel "schoolku_backend/internals/features/schedules/model"
	teacherModel "schoolku_backend/internals/features/teachers/model"
	helper "schoolku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db, Validate: validator.New()}
}

// POST /api/a/schedules?perspective=&entity_id=
//
// Mutations made from a timetable view stay pinned to that view: the
// perspective entity id overrides whatever the body carries. Under the
// teacher perspective the subject is taken from the teacher's own subject,
// body value or not.
// Overlapping slots are accepted; the grid renders them side by side.
func (ctrl *ScheduleController) Create(c *fiber.Ctx) error {
	var req scheduleDTO.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if req.ScheduleAs == "" {
		req.ScheduleAs = schoolyear.CurrentLabel(time.Now())
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.pinPerspective(c, &req.ScheduleClassID, &req.ScheduleTeacherID, &req.ScheduleRoomID, &req.ScheduleSubjectID); err != nil {
		return err
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown schedule reference")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create schedule entry")
	}
	return helper.JsonCreated(c, "schedule entry created", m)
}

// GET /api/u/schedules?year=&class_id=&teacher_id=&room_id=
func (ctrl *ScheduleController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 500)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&scheduleModel.ScheduleModel{})
	if y := strings.TrimSpace(c.Query("year")); y != "" && !strings.EqualFold(y, "all") {
		tx = tx.Where("schedule_as = ?", y)
	}
	if id, err := strconv.Atoi(c.Query("class_id")); err == nil && id > 0 {
		tx = tx.Where("schedule_class_id = ?", id)
	}
	if id, err := strconv.Atoi(c.Query("teacher_id")); err == nil && id > 0 {
		tx = tx.Where("schedule_teacher_id = ?", id)
	}
	if id, err := strconv.Atoi(c.Query("room_id")); err == nil && id > 0 {
		tx = tx.Where("schedule_room_id = ?", id)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count schedule entries")
	}

	var rows []scheduleModel.ScheduleModel
	if err := tx.
		Preload("ScheduleSubject").Preload("ScheduleRoom").
		Preload("ScheduleClass").Preload("ScheduleTeacher").
		Order("schedule_day ASC, schedule_start ASC, schedule_id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list schedule entries")
	}
	return helper.JsonList(c, "schedule entries", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/u/schedules/grid?perspective=&entity_id=&year=
//
// The composed timetable for one class, teacher or room: visible entries
// only, each with its grid placement and accent color. entity_id=0 yields an
// empty grid.
func (ctrl *ScheduleController) Grid(c *fiber.Ctx) error {
	p, ok := grid.ParsePerspective(c.Query("perspective"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "unknown perspective")
	}
	entityID, _ := strconv.Atoi(c.Query("entity_id"))
	if entityID < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid entity id")
	}

	year := strings.TrimSpace(c.Query("year"))
	if year == "" {
		year = schoolyear.CurrentLabel(time.Now())
	}

	entries := []scheduleDTO.GridEntry{}
	if entityID > 0 {
		var rows []scheduleModel.ScheduleModel
		tx := ctrl.DB.WithContext(c.UserContext()).
			Where("schedule_as = ?", year)
		switch p {
		case grid.PerspectiveClass:
			tx = tx.Where("schedule_class_id = ?", entityID)
		case grid.PerspectiveTeacher:
			tx = tx.Where("schedule_teacher_id = ?", entityID)
		case grid.PerspectiveRoom:
			tx = tx.Where("schedule_room_id = ?", entityID)
		}
		if err := tx.
			Preload("ScheduleSubject").Preload("ScheduleRoom").
			Preload("ScheduleClass").Preload("ScheduleTeacher").
			Order("schedule_day ASC, schedule_start ASC, schedule_id ASC").
			Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load timetable")
		}

		for _, row := range rows {
			if !grid.Visible(p, entityID, row.ScheduleClassID, row.ScheduleTeacherID, row.ScheduleRoomID) {
				continue
			}
			placement, err := grid.Place(row.ScheduleDay, row.ScheduleStart, row.ScheduleDuration)
			if err != nil {
				// malformed rows stay out of the view
				continue
			}
			colorKey := row.ScheduleID
			if row.ScheduleSubjectID != nil {
				colorKey = *row.ScheduleSubjectID
			}
			entries = append(entries, scheduleDTO.GridEntry{
				ScheduleModel: row,
				GridPlacement: placement,
				GridColor:     grid.ColorFor(colorKey),
			})
		}
	}

	return helper.JsonOK(c, "timetable", fiber.Map{
		"perspective": p,
		"entity_id":   entityID,
		"year":        year,
		"days":        grid.Days,
		"start_hour":  grid.GridStartHour,
		"end_hour":    grid.GridEndHour,
		"entries":     entries,
	})
}

// GET /api/u/schedules/:id
func (ctrl *ScheduleController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid schedule id")
	}

	var m scheduleModel.ScheduleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("ScheduleSubject").Preload("ScheduleRoom").
		Preload("ScheduleClass").Preload("ScheduleTeacher").
		First(&m, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "schedule entry not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch schedule entry")
	}
	return helper.JsonOK(c, "schedule entry detail", m)
}

// PUT /api/a/schedules/:id?perspective=&entity_id=
func (ctrl *ScheduleController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid schedule id")
	}

	var req scheduleDTO.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m scheduleModel.ScheduleModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "schedule entry not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch schedule entry")
	}

	req.ApplyUpdates(&m)
	if err := req.Validate(m); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.pinPerspective(c, &m.ScheduleClassID, &m.ScheduleTeacherID, &m.ScheduleRoomID, &m.ScheduleSubjectID); err != nil {
		return err
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown schedule reference")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update schedule entry")
	}
	return helper.JsonUpdated(c, "schedule entry updated", m)
}

// DELETE /api/a/schedules/:id
func (ctrl *ScheduleController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid schedule id")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&scheduleModel.ScheduleModel{}, "schedule_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete schedule entry")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "schedule entry not found")
	}
	return helper.JsonDeleted(c, "schedule entry deleted", fiber.Map{"schedule_id": id})
}

// pinPerspective forces the perspective entity onto the mutated entry when
// ?perspective= and ?entity_id= are present. Under the teacher perspective
// the subject is read-only: it always mirrors the teacher's own subject,
// overriding any body value.
func (ctrl *ScheduleController) pinPerspective(c *fiber.Ctx, classID, teacherID, roomID, subjectID **int) error {
	raw := strings.TrimSpace(c.Query("perspective"))
	if raw == "" {
		return nil
	}
	p, ok := grid.ParsePerspective(raw)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "unknown perspective")
	}
	entityID, err := strconv.Atoi(c.Query("entity_id"))
	if err != nil || entityID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid entity id")
	}

	switch p {
	case grid.PerspectiveClass:
		*classID = &entityID
	case grid.PerspectiveRoom:
		*roomID = &entityID
	case grid.PerspectiveTeacher:
		*teacherID = &entityID
		var t teacherModel.TeacherModel
		if err := ctrl.DB.WithContext(c.UserContext()).
			First(&t, "teacher_id = ?", entityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "unknown teacher")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch teacher")
		}
		*subjectID = t.TeacherSubjectID
	}
	return nil
}
