package constants

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
)

var (
	AllRoles = []string{
		RoleAdmin,
		RoleTeacher,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
