package model

import "time"

// swagger:model User
type User struct {
	UUIDBase
	FullName  string    `gorm:"size:100;not null" json:"fullName"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	LastLogin time.Time `json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}

// Public is the shape sent back on login/register. The password hash never
// leaves the service.
func (u *User) Public() map[string]interface{} {
	return map[string]interface{}{
		"id":       u.ID,
		"email":    u.Email,
		"fullName": u.FullName,
	}
}
