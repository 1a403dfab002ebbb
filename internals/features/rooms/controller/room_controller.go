package controller

import (
	"errors"
	"strconv"
	"strings"

	roomDTO "schoolku_backend/internals/features/rooms/dto"
	roomModel "schoolku_backend/internals/features/rooms/model"
	helper "schoolku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db, Validate: validator.New()}
}

// POST /api/a/rooms
func (ctrl *RoomController) Create(c *fiber.Ctx) error {
	var req roomDTO.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create room")
	}
	return helper.JsonCreated(c, "room created", m)
}

// GET /api/u/rooms?q=&type=&status=
func (ctrl *RoomController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&roomModel.RoomModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("LOWER(room_name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	if t := strings.ToLower(strings.TrimSpace(c.Query("type"))); t != "" {
		tx = tx.Where("room_type = ?", t)
	}
	if s := strings.ToLower(strings.TrimSpace(c.Query("status"))); s != "" {
		tx = tx.Where("room_status = ?", s)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count rooms")
	}

	var rows []roomModel.RoomModel
	if err := tx.Order("room_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list rooms")
	}
	return helper.JsonList(c, "rooms", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/u/rooms/:id
func (ctrl *RoomController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid room id")
	}

	var m roomModel.RoomModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "room not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch room")
	}
	return helper.JsonOK(c, "room detail", m)
}

// PUT /api/a/rooms/:id
func (ctrl *RoomController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid room id")
	}

	var req roomDTO.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m roomModel.RoomModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "room not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch room")
	}

	req.ApplyUpdates(&m)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update room")
	}
	return helper.JsonUpdated(c, "room updated", m)
}

// DELETE /api/a/rooms/:id
//
// Refused while schedule entries still reference the room.
func (ctrl *RoomController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid room id")
	}

	db := ctrl.DB.WithContext(c.UserContext())

	var m roomModel.RoomModel
	if err := db.First(&m, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "room not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch room")
	}

	var refs int64
	if err := db.Table("schedules").
		Where("schedule_room_id = ?", id).Count(&refs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check references")
	}
	if refs > 0 {
		return fiber.NewError(fiber.StatusConflict, "room is still referenced")
	}

	if err := db.Delete(&m).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "room is still referenced")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete room")
	}
	return helper.JsonDeleted(c, "room deleted", fiber.Map{"room_id": id})
}
