package models

import "gorm.io/gorm"

const (
	RoleStudent    = "STUDENT"
	RoleInstructor = "INSTRUCTOR"
)

type User struct {
	gorm.Model
	FirstName    string
	LastName     string
	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"default:STUDENT"` // STUDENT, INSTRUCTOR
	Bio          string
	ProfileImage string

	Enrollments     []Enrollment `gorm:"foreignKey:StudentID"`
	CoursesTeaching []Course     `gorm:"foreignKey:InstructorID"`
	Progress        []Progress   `gorm:"foreignKey:StudentID"`
}
