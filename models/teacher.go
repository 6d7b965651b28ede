package models

import (
	"time"
)

type TeacherRole string

const (
	TeacherRoleTeacher TeacherRole = "teacher"
	TeacherRoleAdmin   TeacherRole = "admin"
)

type Teacher struct {
	ID           string      `json:"id"           db:"id"`
	Username     string      `json:"username"     db:"username"`
	DisplayName  string      `json:"display_name" db:"display_name"`
	PasswordHash string      `json:"-"            db:"password_hash"`
	Role         TeacherRole `json:"role"         db:"role"`
	CreatedAt    time.Time   `json:"created_at"   db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"   db:"updated_at"`
}
