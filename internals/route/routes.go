package routes

import (
	"schoolku_backend/internals/constants"
	academicsRoute "schoolku_backend/internals/features/academics/route"
	classRoute "schoolku_backend/internals/features/classes/route"
	parentRoute "schoolku_backend/internals/features/parents/route"
	paymentRoute "schoolku_backend/internals/features/payments/route"
	roomRoute "schoolku_backend/internals/features/rooms/route"
	scheduleRoute "schoolku_backend/internals/features/schedules/route"
	searchRoute "schoolku_backend/internals/features/search/route"
	studentRoute "schoolku_backend/internals/features/students/route"
	subjectRoute "schoolku_backend/internals/features/subjects/route"
	teacherRoute "schoolku_backend/internals/features/teachers/route"
	userRoute "schoolku_backend/internals/features/users/route"
	"schoolku_backend/internals/middlewares"
	authmw "schoolku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes mounts the API surface:
//
//	/api/auth  public login/logout, rate limited
//	/api/u     reads for any authenticated role
//	/api/a     mutations and account management, admin only
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// public
	auth := api.Group("/auth", middlewares.LoginRateLimiter())
	userRoute.AuthRoutes(auth, db)

	// authenticated reads
	user := api.Group("/u", authmw.AuthMiddleware())
	userRoute.AuthUserRoutes(user, db)
	academicsRoute.SchoolYearUserRoutes(user, db)
	searchRoute.SearchUserRoutes(user, db)
	studentRoute.StudentUserRoutes(user, db)
	parentRoute.ParentUserRoutes(user, db)
	teacherRoute.TeacherUserRoutes(user, db)
	classRoute.ClassUserRoutes(user, db)
	roomRoute.RoomUserRoutes(user, db)
	subjectRoute.SubjectUserRoutes(user, db)
	paymentRoute.PaymentUserRoutes(user, db)
	scheduleRoute.ScheduleUserRoutes(user, db)

	// admin mutations
	admin := api.Group("/a", authmw.AuthMiddleware(), authmw.OnlyRoles(constants.AdminOnly...))
	userRoute.UserAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	parentRoute.ParentAdminRoutes(admin, db)
	teacherRoute.TeacherAdminRoutes(admin, db)
	classRoute.ClassAdminRoutes(admin, db)
	roomRoute.RoomAdminRoutes(admin, db)
	subjectRoute.SubjectAdminRoutes(admin, db)
	paymentRoute.PaymentAdminRoutes(admin, db)
	scheduleRoute.ScheduleAdminRoutes(admin, db)
}
