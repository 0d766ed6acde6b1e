package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lms/config"
	"lms/models"
)

type EnrollmentController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewEnrollmentController(db *gorm.DB, cfg *config.Config) *EnrollmentController {
	return &EnrollmentController{DB: db, Cfg: cfg}
}

// EnrollInCourse godoc
// @Summary Enroll in a course
// @Description Enrolls the authenticated student; one enrollment per course
// @Tags enrollments
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /courses/{id}/enroll [post]
func (ec *EnrollmentController) EnrollInCourse(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)
	if role != models.RoleStudent {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid course ID",
		})
	}

	// Fast-path rejection; the unique index below is what actually
	// guarantees at most one enrollment per (course, student).
	var existing models.Enrollment
	err = ec.DB.Where("course_id = ? AND student_id = ?", courseID, userID).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Already enrolled in this course",
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to enroll in course",
		})
	}

	enrollment := models.Enrollment{
		CourseID:  uint(courseID),
		StudentID: userID,
		Status:    models.EnrollmentActive,
	}

	if err := ec.DB.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race with a concurrent enroll for the same pair.
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Already enrolled in this course",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to enroll in course",
		})
	}

	if err := ec.DB.Preload("Course.Instructor").First(&enrollment, enrollment.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to enroll in course",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":        enrollment.ID,
		"courseId":  enrollment.CourseID,
		"studentId": enrollment.StudentID,
		"status":    enrollment.Status,
		"createdAt": enrollment.CreatedAt,
		"course": fiber.Map{
			"id":          enrollment.Course.ID,
			"title":       enrollment.Course.Title,
			"description": enrollment.Course.Description,
			"instructor": fiber.Map{
				"firstName": enrollment.Course.Instructor.FirstName,
				"lastName":  enrollment.Course.Instructor.LastName,
			},
		},
	})
}

// GetEnrollments godoc
// @Summary List own enrollments
// @Description Returns the authenticated user's enrollments with courses
// @Tags enrollments
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /enrollments [get]
func (ec *EnrollmentController) GetEnrollments(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 0)
	if page < 1 {
		page = 1
	}

	var total int64
	ec.DB.Model(&models.Enrollment{}).Where("student_id = ?", userID).Count(&total)

	db := ec.DB.Where("student_id = ?", userID).Preload("Course").Order("created_at DESC")
	if limit > 0 {
		db = db.Offset((page - 1) * limit).Limit(limit)
	}

	var enrollments []models.Enrollment
	if err := db.Find(&enrollments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch enrollments",
		})
	}

	return c.JSON(fiber.Map{
		"enrollments": enrollments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
