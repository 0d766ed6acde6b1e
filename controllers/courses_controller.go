package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lms/config"
	"lms/models"
	"lms/validators"
)

type CoursesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCoursesController(db *gorm.DB, cfg *config.Config) *CoursesController {
	return &CoursesController{DB: db, Cfg: cfg}
}

func instructorSummary(user models.User) fiber.Map {
	return fiber.Map{
		"id":           user.ID,
		"firstName":    user.FirstName,
		"lastName":     user.LastName,
		"profileImage": user.ProfileImage,
	}
}

func orderBySequence(db *gorm.DB) *gorm.DB {
	// id tiebreak keeps repeated reads stable when rows share a sequence value
	return db.Order("sequence_order ASC, id ASC")
}

// GetCourses godoc
// @Summary List courses
// @Description Public course listing with optional instructorId/status filters
// @Tags courses
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponse
// @Router /courses [get]
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	query := cc.DB.Model(&models.Course{}).Preload("Instructor").Preload("Category")

	if instructorID := c.Query("instructorId"); instructorID != "" {
		query = query.Where("instructor_id = ?", instructorID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var courses []models.Course
	if err := query.Order("created_at DESC").Find(&courses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch courses",
		})
	}

	result := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		var enrollmentCount, moduleCount int64
		cc.DB.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&enrollmentCount)
		cc.DB.Model(&models.Module{}).Where("course_id = ?", course.ID).Count(&moduleCount)

		result = append(result, fiber.Map{
			"id":            course.ID,
			"title":         course.Title,
			"description":   course.Description,
			"price":         course.Price,
			"level":         course.Level,
			"status":        course.Status,
			"prerequisites": course.Prerequisites,
			"objectives":    course.Objectives,
			"createdAt":     course.CreatedAt,
			"instructor":    instructorSummary(course.Instructor),
			"category":      course.Category,
			"_count": fiber.Map{
				"enrollments": enrollmentCount,
				"modules":     moduleCount,
			},
		})
	}

	return c.JSON(result)
}

// CreateCourse godoc
// @Summary Create a course
// @Description Creates a course owned by the authenticated instructor
// @Tags courses
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /courses [post]
func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)
	if role != models.RoleInstructor {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	input, ok := c.Locals("validatedCourse").(*validators.CreateCourseInput)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	course := models.Course{
		Title:         input.Title,
		Description:   input.Description,
		Level:         input.Level,
		InstructorID:  userID,
		CategoryID:    input.CategoryID,
		Prerequisites: input.Prerequisites,
		Objectives:    input.Objectives,
	}
	if input.Price != nil {
		course.Price = *input.Price
	}

	if err := cc.DB.Create(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create course",
		})
	}

	if err := cc.DB.Preload("Instructor").Preload("Category").First(&course, course.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create course",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":            course.ID,
		"title":         course.Title,
		"description":   course.Description,
		"price":         course.Price,
		"level":         course.Level,
		"status":        course.Status,
		"prerequisites": course.Prerequisites,
		"objectives":    course.Objectives,
		"createdAt":     course.CreatedAt,
		"instructor":    instructorSummary(course.Instructor),
		"category":      course.Category,
	})
}

// GetCourseDetails godoc
// @Summary Get course detail
// @Description Full course graph with modules, lessons, resources and assignments
// @Tags courses
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /courses/{id} [get]
func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid course ID",
		})
	}

	var course models.Course
	err = cc.DB.
		Preload("Instructor").
		Preload("Category").
		Preload("Modules", orderBySequence).
		Preload("Modules.Lessons", orderBySequence).
		Preload("Modules.Lessons.Resources").
		Preload("Modules.Lessons.Assignments").
		First(&course, courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Course not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch course",
		})
	}

	var enrollmentCount int64
	cc.DB.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&enrollmentCount)

	return c.JSON(fiber.Map{
		"id":            course.ID,
		"title":         course.Title,
		"description":   course.Description,
		"price":         course.Price,
		"level":         course.Level,
		"status":        course.Status,
		"prerequisites": course.Prerequisites,
		"objectives":    course.Objectives,
		"createdAt":     course.CreatedAt,
		"instructor": fiber.Map{
			"id":           course.Instructor.ID,
			"firstName":    course.Instructor.FirstName,
			"lastName":     course.Instructor.LastName,
			"profileImage": course.Instructor.ProfileImage,
			"bio":          course.Instructor.Bio,
		},
		"category": course.Category,
		"modules":  course.Modules,
		"_count": fiber.Map{
			"enrollments": enrollmentCount,
		},
	})
}

// UpdateCourse godoc
// @Summary Update a course
// @Description Patches course fields; only the owning instructor may update
// @Tags courses
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /courses/{id} [patch]
func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid course ID",
		})
	}

	var input struct {
		Title         *string  `json:"title"`
		Description   *string  `json:"description"`
		Price         *float64 `json:"price"`
		Level         *string  `json:"level"`
		Status        *string  `json:"status"`
		CategoryID    *uint    `json:"categoryId"`
		Prerequisites []string `json:"prerequisites"`
		Objectives    []string `json:"objectives"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Course not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update course",
		})
	}

	if course.InstructorID != userID {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	// Only allow-listed columns are merged; the owner cannot be reassigned.
	if input.Title != nil {
		course.Title = *input.Title
	}
	if input.Description != nil {
		course.Description = *input.Description
	}
	if input.Price != nil {
		course.Price = *input.Price
	}
	if input.Level != nil {
		course.Level = *input.Level
	}
	if input.Status != nil {
		course.Status = *input.Status
	}
	if input.CategoryID != nil {
		course.CategoryID = input.CategoryID
	}
	if input.Prerequisites != nil {
		course.Prerequisites = input.Prerequisites
	}
	if input.Objectives != nil {
		course.Objectives = input.Objectives
	}

	if err := cc.DB.Save(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update course",
		})
	}

	if err := cc.DB.Preload("Instructor").Preload("Category").First(&course, course.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update course",
		})
	}

	return c.JSON(fiber.Map{
		"id":            course.ID,
		"title":         course.Title,
		"description":   course.Description,
		"price":         course.Price,
		"level":         course.Level,
		"status":        course.Status,
		"prerequisites": course.Prerequisites,
		"objectives":    course.Objectives,
		"createdAt":     course.CreatedAt,
		"instructor":    instructorSummary(course.Instructor),
		"category":      course.Category,
	})
}

// DeleteCourse godoc
// @Summary Delete a course
// @Description Removes a course; only the owning instructor may delete
// @Tags courses
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /courses/{id} [delete]
func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid course ID",
		})
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Course not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete course",
		})
	}

	if course.InstructorID != userID {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	if err := cc.DB.Delete(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete course",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// GetCategories godoc
// @Summary List categories
// @Tags courses
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} utils.ErrorResponse
// @Router /categories [get]
func (cc *CoursesController) GetCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := cc.DB.Order("name ASC").Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch categories",
		})
	}
	return c.JSON(categories)
}
