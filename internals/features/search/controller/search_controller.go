package controller

import (
	"strconv"
	"strings"

	classModel "schoolku_backend/internals/features/classes/model"
	parentModel "schoolku_backend/internals/features/parents/model"
	roomModel "schoolku_backend/internals/features/rooms/model"
	searchDTO "schoolku_backend/internals/features/search/dto"
	studentModel "schoolku_backend/internals/features/students/model"
	subjectModel "schoolku_backend/internals/features/subjects/model"
	teacherModel "schoolku_backend/internals/features/teachers/model"
	helper "schoolku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// perTypeLimit caps each bucket of the quick-result dropdown.
const perTypeLimit = 5

// minQueryLen: shorter queries return empty buckets instead of scanning
// everything.
const minQueryLen = 2

type SearchController struct {
	DB *gorm.DB
}

func NewSearchController(db *gorm.DB) *SearchController {
	return &SearchController{DB: db}
}

func href(kind string, id int) string {
	return "/" + kind + "/" + strconv.Itoa(id)
}

// GET /api/u/search?q=
//
// One query fans out over every entity type, a few hits each.
func (ctrl *SearchController) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	resp := searchDTO.SearchResponse{
		Query:    q,
		Students: []searchDTO.SearchHit{},
		Parents:  []searchDTO.SearchHit{},
		Teachers: []searchDTO.SearchHit{},
		Classes:  []searchDTO.SearchHit{},
		Rooms:    []searchDTO.SearchHit{},
		Subjects: []searchDTO.SearchHit{},
	}
	if len([]rune(q)) < minQueryLen {
		return helper.JsonOK(c, "search results", resp)
	}

	db := ctrl.DB.WithContext(c.UserContext())
	kw := "%" + strings.ToLower(q) + "%"

	var students []studentModel.StudentModel
	if err := db.
		Where("(LOWER(student_first_name) LIKE ? OR LOWER(student_last_name) LIKE ? OR LOWER(student_code) LIKE ?)", kw, kw, kw).
		Order("student_last_name ASC").Limit(perTypeLimit).
		Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "search failed")
	}
	for _, s := range students {
		hit := searchDTO.SearchHit{
			ID:    s.StudentID,
			Type:  "student",
			Title: s.StudentFirstName + " " + s.StudentLastName,
			Href:  href("students", s.StudentID),
			Photo: s.StudentPhoto,
		}
		if s.StudentCode != nil {
			hit.Subtitle = *s.StudentCode
		}
		resp.Students = append(resp.Students, hit)
	}

	var parents []parentModel.ParentModel
	if err := db.
		Where("(LOWER(parent_name) LIKE ? OR LOWER(parent_email) LIKE ? OR LOWER(parent_phone) LIKE ?)", kw, kw, kw).
		Order("parent_name ASC").Limit(perTypeLimit).
		Find(&parents).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "search failed")
	}
	for _, p := range parents {
		hit := searchDTO.SearchHit{
			ID:    p.ParentID,
			Type:  "parent",
			Title: p.ParentName,
			Href:  href("parents", p.ParentID),
		}
		if p.ParentPhone != nil {
			hit.Subtitle = *p.ParentPhone
		}
		resp.Parents = append(resp.Parents, hit)
	}

	var teachers []teacherModel.TeacherModel
	if err := db.
		Where("(LOWER(teacher_name) LIKE ? OR LOWER(teacher_email) LIKE ? OR LOWER(teacher_code) LIKE ?)", kw, kw, kw).
		Order("teacher_name ASC").Limit(perTypeLimit).
		Find(&teachers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "search failed")
	}
	for _, t := range teachers {
		hit := searchDTO.SearchHit{
			ID:    t.TeacherID,
			Type:  "teacher",
			Title: t.TeacherName,
			Href:  href("teachers", t.TeacherID),
			Photo: t.TeacherPhoto,
		}
		if t.TeacherCode != nil {
			hit.Subtitle = *t.TeacherCode
		}
		resp.Teachers = append(resp.Teachers, hit)
	}

	var classes []classModel.ClassModel
	if err := db.
		Where("LOWER(class_name) LIKE ?", kw).
		Order("class_name ASC").Limit(perTypeLimit).
		Find(&classes).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "search failed")
	}
	for _, cl := range classes {
		resp.Classes = append(resp.Classes, searchDTO.SearchHit{
			ID:    cl.ClassID,
			Type:  "class",
			Title: cl.ClassName,
			Href:  href("classes", cl.ClassID),
		})
	}

	var rooms []roomModel.RoomModel
	if err := db.
		Where("LOWER(room_name) LIKE ?", kw).
		Order("room_name ASC").Limit(perTypeLimit).
		Find(&rooms).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "search failed")
	}
	for _, r := range rooms {
		resp.Rooms = append(resp.Rooms, searchDTO.SearchHit{
			ID:       r.RoomID,
			Type:     "room",
			Title:    r.RoomName,
			Subtitle: string(r.RoomType),
			Href:     href("rooms", r.RoomID),
		})
	}

	var subjects []subjectModel.SubjectModel
	if err := db.
		Where("(LOWER(subject_name) LIKE ? OR LOWER(subject_code) LIKE ?)", kw, kw).
		Order("subject_name ASC").Limit(perTypeLimit).
		Find(&subjects).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "search failed")
	}
	for _, s := range subjects {
		hit := searchDTO.SearchHit{
			ID:    s.SubjectID,
			Type:  "subject",
			Title: s.SubjectName,
			Href:  href("subjects", s.SubjectID),
		}
		if s.SubjectCode != nil {
			hit.Subtitle = *s.SubjectCode
		}
		resp.Subjects = append(resp.Subjects, hit)
	}

	return helper.JsonOK(c, "search results", resp)
}
