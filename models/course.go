package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	CourseDraft     = "DRAFT"
	CoursePublished = "PUBLISHED"
)

type Category struct {
	gorm.Model
	Name    string `gorm:"unique;not null"`
	Courses []Course
}

type Course struct {
	gorm.Model
	Title         string `gorm:"not null"`
	Description   string
	Price         float64
	Level         string // beginner, intermediate, advanced
	Status        string `gorm:"default:DRAFT"` // DRAFT, PUBLISHED
	Prerequisites datatypes.JSONSlice[string]
	Objectives    datatypes.JSONSlice[string]

	InstructorID uint `gorm:"not null;index"`
	Instructor   User
	CategoryID   *uint
	Category     *Category

	Modules     []Module     `gorm:"constraint:OnDelete:CASCADE"`
	Enrollments []Enrollment `gorm:"constraint:OnDelete:CASCADE"`
}

type Module struct {
	gorm.Model
	CourseID      uint   `gorm:"not null;index"`
	Title         string `gorm:"not null"`
	Description   string
	SequenceOrder int

	Lessons []Lesson `gorm:"constraint:OnDelete:CASCADE"`
}

type Lesson struct {
	gorm.Model
	ModuleID      uint   `gorm:"not null;index"`
	Title         string `gorm:"not null"`
	Content       string
	VideoURL      string
	Duration      int // minutes
	SequenceOrder int

	Resources   []Resource   `gorm:"constraint:OnDelete:CASCADE"`
	Assignments []Assignment `gorm:"constraint:OnDelete:CASCADE"`
}

type Resource struct {
	gorm.Model
	LessonID uint `gorm:"not null;index"`
	Title    string
	URL      string
	Type     string // pdf, link, video
}

type Assignment struct {
	gorm.Model
	LessonID    uint `gorm:"not null;index"`
	Title       string
	Description string
	DueDate     string
}
