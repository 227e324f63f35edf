package constants

// Role names sesuai kolom users.role
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

var (
	AllRoles = []string{
		RoleEmployee,
		RoleManager,
	}

	ManagerOnly = []string{
		RoleManager,
	}
)
