package FiberConfig

import (
	"fmt"

	"EmpTrack/Controllers"
	"EmpTrack/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg Config) {
	// Initialize handlers
	authController := Controllers.NewAuthController(db, cfg.JWTSecret)
	userController := Controllers.NewUserController(db)
	taskController := Controllers.NewTaskController(db)
	timeLogController := Controllers.NewTimeLogController(db)
	dashboardController := Controllers.NewDashboardController(db)

	protected := middleware.Protected(db, cfg.JWTSecret)
	adminOnly := middleware.AdminOnly()

	// API group
	api := app.Group("/api")

	api.Get("/test", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Backend is working!"})
	})

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authController.Register)
	auth.Post("/login", authController.Login)
	auth.Post("/logout", protected, authController.Logout)

	// User routes
	users := api.Group("/users", protected)
	users.Get("/employees", adminOnly, userController.GetEmployees)

	// Task routes
	tasks := api.Group("/tasks", protected)
	tasks.Post("/", adminOnly, taskController.CreateTask)
	tasks.Get("/", taskController.GetTasks)
	tasks.Put("/:id", taskController.UpdateTask)
	tasks.Delete("/:id", adminOnly, taskController.DeleteTask)

	// Dashboard routes
	api.Get("/dashboard/stats", protected, dashboardController.GetStats)

	// Time log routes
	timelogs := api.Group("/timelogs", protected)
	timelogs.Get("/export", adminOnly, timeLogController.ExportTimeLogs)
	timelogs.Get("/", timeLogController.GetTimeLogs)
}

// NewApp assembles the Fiber application with its middleware stack.
// Split from Run so tests can drive the app directly.
func NewApp(db *gorm.DB, cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           300, // preflight cache, 5 minutes
	}))

	SetupRoutes(app, db, cfg)
	return app
}

// Run starts the HTTP listener and blocks.
func Run(db *gorm.DB, cfg Config) error {
	fmt.Println("Server Up...")
	app := NewApp(db, cfg)
	return app.Listen(":" + cfg.Port)
}
