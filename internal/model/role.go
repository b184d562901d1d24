package model

import "fmt"

// Role is the account kind attached to a session. The backend reports it as
// a plain string; parse it once at login and switch exhaustively after that.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleShop  Role = "Shop"
	RoleUser  Role = "User"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleShop, RoleUser:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

type Session struct {
	Token    string `json:"token"`
	Role     Role   `json:"role"`
	Username string `json:"username"`
}

func (s Session) LoggedIn() bool {
	return s.Token != ""
}
