package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lms/config"
	"lms/controllers"
	"lms/middleware"
	"lms/validators"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// Courses routes
	coursesController := controllers.NewCoursesController(db, cfg)
	app.Get("/api/courses", coursesController.GetCourses)
	app.Post("/api/courses", authMiddleware, validators.CreateCourse(), coursesController.CreateCourse)
	app.Get("/api/courses/:id", coursesController.GetCourseDetails)
	app.Patch("/api/courses/:id", authMiddleware, coursesController.UpdateCourse)
	app.Delete("/api/courses/:id", authMiddleware, coursesController.DeleteCourse)
	app.Get("/api/categories", coursesController.GetCategories)

	// Enrollment routes
	enrollmentController := controllers.NewEnrollmentController(db, cfg)
	app.Post("/api/courses/:id/enroll", authMiddleware, enrollmentController.EnrollInCourse)
	app.Get("/api/enrollments", authMiddleware, enrollmentController.GetEnrollments)

	// Curriculum routes
	modulesController := controllers.NewModulesController(db, cfg)
	app.Post("/api/courses/:id/modules", authMiddleware, modulesController.AddModule)
	app.Post("/api/modules/:id/lessons", authMiddleware, modulesController.AddLesson)

	// Progress routes
	progressController := controllers.NewProgressController(db, cfg)
	app.Post("/api/lessons/:id/progress", authMiddleware, progressController.UpdateLessonProgress)

	// Dashboard routes
	dashboardController := controllers.NewDashboardController(db, cfg)
	app.Get("/api/dashboard", authMiddleware, dashboardController.GetDashboard)
}
