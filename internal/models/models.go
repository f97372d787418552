package models

// User is a registered account. Optional profile fields hold "" when the
// user did not provide them; stores must never persist an empty string.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Nickname     string `json:"nickname,omitempty"`
}
