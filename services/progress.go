// Package services holds pure computations over already-loaded data.
// Nothing here touches the database.
package services

import (
	"math"

	"lms/models"
)

// CompletionPercentage derives how far a student has come in a course.
// The course must have its Modules and their Lessons loaded; progress is
// the student's full progress set (rows for other courses are ignored).
// A course with no lessons is 0% complete.
func CompletionPercentage(course models.Course, progress []models.Progress) int {
	lessonIDs := make(map[uint]bool)
	totalLessons := 0
	for _, module := range course.Modules {
		totalLessons += len(module.Lessons)
		for _, lesson := range module.Lessons {
			lessonIDs[lesson.ID] = true
		}
	}

	if totalLessons == 0 {
		return 0
	}

	completedLessons := 0
	for _, p := range progress {
		if p.Completed && lessonIDs[p.LessonID] {
			completedLessons++
		}
	}

	return int(math.Round(float64(completedLessons) / float64(totalLessons) * 100))
}

// StudentCounters summarizes a student's dashboard.
type StudentCounters struct {
	EnrolledCourses  int `json:"enrolled_courses"`
	CompletedLessons int `json:"completed_lessons"`
	ActiveCourses    int `json:"active_courses"`
	Certificates     int `json:"certificates"`
}

// ComputeStudentCounters derives the student dashboard counters.
// CompletedLessons counts across the whole platform, not per course.
func ComputeStudentCounters(enrollments []models.Enrollment, progress []models.Progress) StudentCounters {
	counters := StudentCounters{EnrolledCourses: len(enrollments)}

	for _, p := range progress {
		if p.Completed {
			counters.CompletedLessons++
		}
	}

	for _, e := range enrollments {
		switch e.Status {
		case models.EnrollmentActive:
			counters.ActiveCourses++
		case models.EnrollmentCompleted:
			counters.Certificates++
		}
	}

	return counters
}

// InstructorCounters summarizes an instructor's dashboard.
type InstructorCounters struct {
	TotalCourses     int   `json:"total_courses"`
	TotalStudents    int64 `json:"total_students"`
	PublishedCourses int   `json:"published_courses"`
	DraftCourses     int   `json:"draft_courses"`
}

// ComputeInstructorCounters derives the instructor dashboard counters.
// enrollmentCounts maps course ID to that course's enrollment count.
func ComputeInstructorCounters(courses []models.Course, enrollmentCounts map[uint]int64) InstructorCounters {
	counters := InstructorCounters{TotalCourses: len(courses)}

	for _, course := range courses {
		counters.TotalStudents += enrollmentCounts[course.ID]
		switch course.Status {
		case models.CoursePublished:
			counters.PublishedCourses++
		case models.CourseDraft:
			counters.DraftCourses++
		}
	}

	return counters
}
