package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lms/config"
	"lms/models"
	"lms/utils"
)

type ModulesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewModulesController(db *gorm.DB, cfg *config.Config) *ModulesController {
	return &ModulesController{DB: db, Cfg: cfg}
}

// AddModule godoc
// @Summary Add a module to a course
// @Description Appends a module; only the owning instructor may add
// @Tags curriculum
// @Accept json
// @Produce json
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /courses/{id}/modules [post]
func (mc *ModulesController) AddModule(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, errors.New("invalid course ID"))
	}

	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, errors.New("cannot parse JSON"))
	}

	if strings.TrimSpace(input.Title) == "" {
		return utils.ValidationError(c, map[string]string{"title": "Title is required"})
	}

	var course models.Course
	if err := mc.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Error(c, fiber.StatusNotFound, errors.New("course not found"))
		}
		return utils.Error(c, fiber.StatusInternalServerError, errors.New("could not query database"))
	}

	if course.InstructorID != userID {
		return utils.Error(c, fiber.StatusUnauthorized, errors.New("unauthorized"))
	}

	var moduleCount int64
	mc.DB.Model(&models.Module{}).Where("course_id = ?", courseID).Count(&moduleCount)

	module := models.Module{
		CourseID:      uint(courseID),
		Title:         input.Title,
		Description:   input.Description,
		SequenceOrder: int(moduleCount) + 1,
	}

	if err := mc.DB.Create(&module).Error; err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, errors.New("could not create module"))
	}

	return utils.Created(c, module)
}

// AddLesson godoc
// @Summary Add a lesson to a module
// @Description Appends a lesson; only the owning instructor may add
// @Tags curriculum
// @Accept json
// @Produce json
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /modules/{id}/lessons [post]
func (mc *ModulesController) AddLesson(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	moduleID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, errors.New("invalid module ID"))
	}

	var input struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		VideoURL string `json:"videoUrl"`
		Duration int    `json:"duration"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, errors.New("cannot parse JSON"))
	}

	if strings.TrimSpace(input.Title) == "" {
		return utils.ValidationError(c, map[string]string{"title": "Title is required"})
	}

	var module models.Module
	if err := mc.DB.First(&module, moduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Error(c, fiber.StatusNotFound, errors.New("module not found"))
		}
		return utils.Error(c, fiber.StatusInternalServerError, errors.New("could not query database"))
	}

	var course models.Course
	if err := mc.DB.First(&course, module.CourseID).Error; err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, errors.New("could not query database"))
	}

	if course.InstructorID != userID {
		return utils.Error(c, fiber.StatusUnauthorized, errors.New("unauthorized"))
	}

	var lessonCount int64
	mc.DB.Model(&models.Lesson{}).Where("module_id = ?", moduleID).Count(&lessonCount)

	lesson := models.Lesson{
		ModuleID:      uint(moduleID),
		Title:         input.Title,
		Content:       input.Content,
		VideoURL:      input.VideoURL,
		Duration:      input.Duration,
		SequenceOrder: int(lessonCount) + 1,
	}

	if err := mc.DB.Create(&lesson).Error; err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, errors.New("could not create lesson"))
	}

	return utils.Created(c, lesson)
}
