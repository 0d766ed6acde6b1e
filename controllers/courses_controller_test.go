package controllers_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lms/models"
)

func createCourse(t *testing.T, db *gorm.DB, instructorID uint, title, status string) models.Course {
	t.Helper()

	course := models.Course{
		Title:        title,
		Description:  "desc",
		Status:       status,
		InstructorID: instructorID,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func TestCreateCourse(t *testing.T) {
	app, db, cfg := newTestApp(t)
	_, token := createUser(t, db, cfg, "Ada", "Lovelace", "ada@example.com", models.RoleInstructor)

	resp := doJSON(t, app, "POST", "/api/courses", token, map[string]interface{}{
		"title":       "Intro to Go",
		"description": "A first course",
		"price":       49.99,
		"level":       "beginner",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, "Intro to Go", result["title"])
	assert.Equal(t, 49.99, result["price"])
	assert.Equal(t, models.CourseDraft, result["status"])

	// Omitted arrays default to empty, not null
	assert.Equal(t, []interface{}{}, result["prerequisites"])
	assert.Equal(t, []interface{}{}, result["objectives"])

	instructor := result["instructor"].(map[string]interface{})
	assert.Equal(t, "Ada", instructor["firstName"])
	assert.Equal(t, "Lovelace", instructor["lastName"])
}

func TestCreateCourseRequiresInstructor(t *testing.T) {
	app, db, cfg := newTestApp(t)
	_, studentToken := createUser(t, db, cfg, "Sam", "Student", "sam@example.com", models.RoleStudent)

	body := map[string]interface{}{"title": "Nope", "description": "nope"}

	resp := doJSON(t, app, "POST", "/api/courses", studentToken, body)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/courses", "", body)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var count int64
	db.Model(&models.Course{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateCourseValidation(t *testing.T) {
	app, db, cfg := newTestApp(t)
	_, token := createUser(t, db, cfg, "Ada", "Lovelace", "ada@example.com", models.RoleInstructor)

	resp := doJSON(t, app, "POST", "/api/courses", token, map[string]interface{}{
		"title":       "",
		"description": "has description",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	result := decodeBody(t, resp)
	details := result["details"].(map[string]interface{})
	assert.Contains(t, details, "title")

	resp = doJSON(t, app, "POST", "/api/courses", token, map[string]interface{}{
		"title":       "Priced wrong",
		"description": "has description",
		"price":       -1,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	result = decodeBody(t, resp)
	details = result["details"].(map[string]interface{})
	assert.Contains(t, details, "price")
}

func TestGetCourses(t *testing.T) {
	app, db, cfg := newTestApp(t)
	instructor, _ := createUser(t, db, cfg, "Ada", "Lovelace", "ada@example.com", models.RoleInstructor)
	other, _ := createUser(t, db, cfg, "Bob", "Builder", "bob@example.com", models.RoleInstructor)

	first := createCourse(t, db, instructor.ID, "First", models.CoursePublished)
	second := createCourse(t, db, instructor.ID, "Second", models.CourseDraft)
	createCourse(t, db, other.ID, "Other", models.CoursePublished)

	student, _ := createUser(t, db, cfg, "Sam", "Student", "sam@example.com", models.RoleStudent)
	require.NoError(t, db.Create(&models.Enrollment{CourseID: first.ID, StudentID: student.ID}).Error)

	// Unfiltered, newest first
	resp := doJSON(t, app, "GET", "/api/courses", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decodeList(t, resp)
	require.Len(t, result, 3)
	assert.Equal(t, "Other", result[0]["title"])
	assert.Equal(t, "Second", result[1]["title"])
	assert.Equal(t, "First", result[2]["title"])

	counts := result[2]["_count"].(map[string]interface{})
	assert.Equal(t, float64(1), counts["enrollments"])

	// Filter by instructor
	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/courses?instructorId=%d", instructor.ID), "", nil)
	result = decodeList(t, resp)
	require.Len(t, result, 2)

	// Filter by status
	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/courses?instructorId=%d&status=%s", instructor.ID, models.CourseDraft), "", nil)
	result = decodeList(t, resp)
	require.Len(t, result, 1)
	assert.Equal(t, float64(second.ID), result[0]["id"])
}

func TestGetCourseDetailsNotFound(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/courses/9999", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetCourseDetailsOrdering(t *testing.T) {
	app, db, cfg := newTestApp(t)
	instructor, _ := createUser(t, db, cfg, "Ada", "Lovelace", "ada@example.com", models.RoleInstructor)
	course := createCourse(t, db, instructor.ID, "Ordered", models.CoursePublished)

	// Insert out of sequence order
	late := models.Module{CourseID: course.ID, Title: "Part Two", SequenceOrder: 2}
	require.NoError(t, db.Create(&late).Error)
	early := models.Module{CourseID: course.ID, Title: "Part One", SequenceOrder: 1}
	require.NoError(t, db.Create(&early).Error)

	lessonB := models.Lesson{ModuleID: early.ID, Title: "Lesson B", SequenceOrder: 2}
	require.NoError(t, db.Create(&lessonB).Error)
	lessonA := models.Lesson{ModuleID: early.ID, Title: "Lesson A", SequenceOrder: 1}
	require.NoError(t, db.Create(&lessonA).Error)

	path := fmt.Sprintf("/api/courses/%d", course.ID)

	resp := doJSON(t, app, "GET", path, "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decodeBody(t, resp)

	modules := result["modules"].([]interface{})
	require.Len(t, modules, 2)
	assert.Equal(t, "Part One", modules[0].(map[string]interface{})["Title"])
	assert.Equal(t, "Part Two", modules[1].(map[string]interface{})["Title"])

	lessons := modules[0].(map[string]interface{})["Lessons"].([]interface{})
	require.Len(t, lessons, 2)
	assert.Equal(t, "Lesson A", lessons[0].(map[string]interface{})["Title"])
	assert.Equal(t, "Lesson B", lessons[1].(map[string]interface{})["Title"])

	// Idempotent read: a second call returns the same structure
	again := decodeBody(t, doJSON(t, app, "GET", path, "", nil))
	assert.Equal(t, result, again)
}

func TestUpdateCourse(t *testing.T) {
	app, db, cfg := newTestApp(t)
	instructor, token := createUser(t, db, cfg, "Ada", "Lovelace", "ada@example.com", models.RoleInstructor)
	course := createCourse(t, db, instructor.ID, "Before", models.CourseDraft)

	resp := doJSON(t, app, "PATCH", fmt.Sprintf("/api/courses/%d", course.ID), token, map[string]interface{}{
		"title":  "After",
		"status": models.CoursePublished,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, "After", result["title"])
	assert.Equal(t, models.CoursePublished, result["status"])
	assert.Equal(t, "desc", result["description"])
}

func TestUpdateCourseOwnershipGate(t *testing.T) {
	app, db, cfg := newTestApp(t)
	instructor, _ := createUser(t, db, cfg, "Ada", "Lovelace", "ada@example.com", models.RoleInstructor)
	_, otherToken := createUser(t, db, cfg, "Eve", "Intruder", "eve@example.com", models.RoleInstructor)
	course := createCourse(t, db, instructor.ID, "Mine", models.CourseDraft)

	resp := doJSON(t, app, "PATCH", fmt.Sprintf("/api/courses/%d", course.ID), otherToken, map[string]interface{}{
		"title": "Stolen",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var reloaded models.Course
	require.NoError(t, db.First(&reloaded, course.ID).Error)
	assert.Equal(t, "Mine", reloaded.Title)

	resp = doJSON(t, app, "PATCH", "/api/courses/9999", otherToken, map[string]interface{}{
		"title": "Ghost",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteCourse(t *testing.T) {
	app, db, cfg := newTestApp(t)
	instructor, token := createUser(t, db, cfg, "Ada", "Lovelace", "ada@example.com", models.RoleInstructor)
	_, otherToken := createUser(t, db, cfg, "Eve", "Intruder", "eve@example.com", models.RoleInstructor)
	course := createCourse(t, db, instructor.ID, "Doomed", models.CourseDraft)

	path := fmt.Sprintf("/api/courses/%d", course.ID)

	resp := doJSON(t, app, "DELETE", path, otherToken, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, "DELETE", path, token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decodeBody(t, resp)
	assert.Equal(t, true, result["success"])

	resp = doJSON(t, app, "GET", path, "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
