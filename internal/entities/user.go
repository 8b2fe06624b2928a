package entities

type UserRole string

const (
	RoleBuyer UserRole = "BUYER"
	RoleShop  UserRole = "SHOP"
	RoleAdmin UserRole = "ADMIN"
)

type User struct {
	ID        string
	Username  string
	Email     string
	Role      UserRole
	PushToken string
}

// Actor identifies the authenticated principal of a request. Authentication
// itself happens upstream; the service only checks ownership and role.
type Actor struct {
	ID   string
	Role UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
