package constants

// Role names carried in JWT claims and on user rows.
const (
	RoleStudent = "student"
	RoleAdvisor = "advisor"
	RoleAdmin   = "admin"
)

var AllRoles = []string{RoleStudent, RoleAdvisor, RoleAdmin}

// Persian copy used by permission guards.
const (
	ErrOnlyAdminsCanAccess   = "فقط ادمین به این بخش دسترسی دارد."
	ErrOnlyAdvisorsCanAccess = "فقط مشاور یا ادمین به این بخش دسترسی دارد."
)
