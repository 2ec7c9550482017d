package Controllers

import (
	"EmpTrack/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserController handles user listing endpoints
type UserController struct {
	DB *gorm.DB
}

// NewUserController creates a new UserController
func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GetEmployees retrieves all employee accounts, password hashes
// stripped by the model's JSON shape
func (u *UserController) GetEmployees(ctx *fiber.Ctx) error {
	var employees []Models.User
	if err := u.DB.Where("role = ?", Models.RoleEmployee).Find(&employees).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}
	return ctx.JSON(employees)
}
