package model

type UserProfile struct {
	UserID   int64  `json:"userID"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Avatar   string `json:"avatar"`
	Role     Role   `json:"role"`
	Blocked  bool   `json:"blocked"`
}
