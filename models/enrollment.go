package models

import "gorm.io/gorm"

const (
	EnrollmentActive    = "ACTIVE"
	EnrollmentCompleted = "COMPLETED"
)

// Enrollment relates one student to one course. The composite unique
// index is the authoritative guard against double enrollment; handlers
// only pre-check it for a friendlier error.
type Enrollment struct {
	gorm.Model
	CourseID  uint   `gorm:"not null;uniqueIndex:idx_enrollments_course_student"`
	StudentID uint   `gorm:"not null;uniqueIndex:idx_enrollments_course_student"`
	Status    string `gorm:"default:ACTIVE"` // ACTIVE, COMPLETED

	Course  Course
	Student User
}

// Progress marks a single lesson complete (or not) for a student.
// One row per (student, lesson).
type Progress struct {
	gorm.Model
	StudentID uint `gorm:"not null;uniqueIndex:idx_progress_student_lesson"`
	LessonID  uint `gorm:"not null;uniqueIndex:idx_progress_student_lesson"`
	Completed bool `gorm:"default:false"`

	Lesson Lesson
}
