package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lms/config"
	"lms/models"
	"lms/services"
)

type DashboardController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewDashboardController(db *gorm.DB, cfg *config.Config) *DashboardController {
	return &DashboardController{DB: db, Cfg: cfg}
}

// GetDashboard godoc
// @Summary Role-specific dashboard
// @Description Returns the student or instructor dashboard for the caller
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /dashboard [get]
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	var user models.User
	err := dc.DB.
		Preload("Enrollments.Course.Instructor").
		Preload("Enrollments.Course.Modules.Lessons").
		Preload("CoursesTeaching").
		Preload("Progress").
		First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch dashboard",
		})
	}

	// Dispatch on role once at the boundary.
	switch user.Role {
	case models.RoleInstructor:
		return dc.instructorDashboard(c, user)
	default:
		return dc.studentDashboard(c, user)
	}
}

func (dc *DashboardController) studentDashboard(c *fiber.Ctx, user models.User) error {
	counters := services.ComputeStudentCounters(user.Enrollments, user.Progress)

	courses := make([]fiber.Map, 0, len(user.Enrollments))
	for _, enrollment := range user.Enrollments {
		courses = append(courses, fiber.Map{
			"enrollmentId": enrollment.ID,
			"courseId":     enrollment.Course.ID,
			"title":        enrollment.Course.Title,
			"instructor": fmt.Sprintf("%s %s",
				enrollment.Course.Instructor.FirstName,
				enrollment.Course.Instructor.LastName),
			"status":   enrollment.Status,
			"progress": services.CompletionPercentage(enrollment.Course, user.Progress),
		})
	}

	return c.JSON(fiber.Map{
		"role":    user.Role,
		"stats":   counters,
		"courses": courses,
	})
}

func (dc *DashboardController) instructorDashboard(c *fiber.Ctx, user models.User) error {
	enrollmentCounts := make(map[uint]int64, len(user.CoursesTeaching))
	moduleCounts := make(map[uint]int64, len(user.CoursesTeaching))
	for _, course := range user.CoursesTeaching {
		var enrollments, modules int64
		dc.DB.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&enrollments)
		dc.DB.Model(&models.Module{}).Where("course_id = ?", course.ID).Count(&modules)
		enrollmentCounts[course.ID] = enrollments
		moduleCounts[course.ID] = modules
	}

	counters := services.ComputeInstructorCounters(user.CoursesTeaching, enrollmentCounts)

	courses := make([]fiber.Map, 0, len(user.CoursesTeaching))
	for _, course := range user.CoursesTeaching {
		courses = append(courses, fiber.Map{
			"courseId": course.ID,
			"title":    course.Title,
			"status":   course.Status,
			"students": enrollmentCounts[course.ID],
			"modules":  moduleCounts[course.ID],
		})
	}

	return c.JSON(fiber.Map{
		"role":    user.Role,
		"stats":   counters,
		"courses": courses,
	})
}
