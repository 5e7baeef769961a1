package models

import "time"

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null;size:64"`
	PasswordHash []byte    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role,omitempty" gorm:"size:20"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}
