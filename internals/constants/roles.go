package constants

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
	RoleOwner = "owner"
)

var (
	AllRoles = []string{RoleUser, RoleAdmin, RoleOwner}

	AdminAndAbove = []string{RoleAdmin, RoleOwner}
)

func IsAdminRole(role string) bool {
	for _, r := range AdminAndAbove {
		if r == role {
			return true
		}
	}
	return false
}
