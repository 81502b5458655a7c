package domain

import "time"

// Role is the user role
type Role string

const (
	RoleUser      Role = "user"
	RoleSuperuser Role = "superuser"
)

// BanStatus classifies a user's current ban state
type BanStatus int

const (
	BanNone BanStatus = iota
	BanTemporary
	BanPermanent
)

// User represents a forum user. The conversation core reads users only;
// registration and ban bookkeeping live outside it.
type User struct {
	ID           uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username     string     `gorm:"column:username;type:varchar(50);uniqueIndex" json:"username"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(255)" json:"-"`
	Role         Role       `gorm:"column:role;type:varchar(20);default:'user'" json:"role"`
	BannedUntil  *time.Time `gorm:"column:banned_until" json:"banned_until,omitempty"`
	BanCount     int        `gorm:"column:ban_count;default:0" json:"ban_count"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// IsSuperuser reports whether the user holds the superuser role
func (u *User) IsSuperuser() bool {
	return u.Role == RoleSuperuser
}

// ClassifyBan returns the user's ban status at the given instant.
// A ban count at or above maxBanCount means the ban is permanent,
// regardless of banned_until.
func (u *User) ClassifyBan(maxBanCount int, now time.Time) BanStatus {
	if maxBanCount > 0 && u.BanCount >= maxBanCount {
		return BanPermanent
	}
	if u.BannedUntil != nil && u.BannedUntil.After(now) {
		return BanTemporary
	}
	return BanNone
}

// RegisterRequest is the request DTO for user registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the request DTO for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is the response DTO for issued session tokens
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// BanRequest is the request DTO for the admin ban endpoint
type BanRequest struct {
	Reason string `json:"reason" binding:"required,max=255"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts a User to its public view
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
