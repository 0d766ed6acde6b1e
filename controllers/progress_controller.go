package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lms/config"
	"lms/models"
	"lms/utils"
)

type ProgressController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProgressController(db *gorm.DB, cfg *config.Config) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg}
}

// UpdateLessonProgress godoc
// @Summary Mark a lesson complete or incomplete
// @Description Upserts the student's progress record for a lesson
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /lessons/{id}/progress [post]
func (pc *ProgressController) UpdateLessonProgress(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)
	if role != models.RoleStudent {
		return utils.Error(c, fiber.StatusUnauthorized, errors.New("unauthorized"))
	}

	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, errors.New("invalid lesson ID"))
	}

	var input struct {
		Completed bool `json:"completed"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, errors.New("cannot parse JSON"))
	}

	var lesson models.Lesson
	if err := pc.DB.First(&lesson, lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Error(c, fiber.StatusNotFound, errors.New("lesson not found"))
		}
		return utils.Error(c, fiber.StatusInternalServerError, errors.New("could not query database"))
	}

	var progress models.Progress
	err = pc.DB.Where("student_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Error(c, fiber.StatusInternalServerError, errors.New("could not query database"))
		}
		progress = models.Progress{
			StudentID: userID,
			LessonID:  uint(lessonID),
		}
	}

	progress.Completed = input.Completed

	if err := pc.DB.Save(&progress).Error; err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, errors.New("could not save progress"))
	}

	return utils.Success(c, fiber.StatusOK, progress)
}
