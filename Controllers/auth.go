package Controllers

import (
	"log"
	"strings"
	"time"

	"EmpTrack/Models"
	"EmpTrack/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// BcryptCost matches the original deployment's hashes
const BcryptCost = 12

var validate = validator.New()

// AuthController handles registration, login and logout
type AuthController struct {
	DB     *gorm.DB
	Secret []byte
}

// NewAuthController creates a new AuthController
func NewAuthController(db *gorm.DB, secret []byte) *AuthController {
	return &AuthController{DB: db, Secret: secret}
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=admin employee"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func userResponse(user *Models.User) fiber.Map {
	return fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
}

// Register creates a user account and returns a session token
func (a *AuthController) Register(ctx *fiber.Ctx) error {
	var input RegisterInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body", "error": err.Error()})
	}
	if err := validate.Struct(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Validation failed", "error": err.Error()})
	}

	var existing Models.User
	if err := a.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "User already exists"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), BcryptCost)
	if err != nil {
		log.Println("Register error:", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}

	role := input.Role
	if role == "" {
		role = Models.RoleEmployee
	}
	user := Models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hash,
		Role:     role,
	}
	if err := a.DB.Create(&user).Error; err != nil {
		// A concurrent registration can slip past the lookup and land
		// on the unique index instead
		if strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "Duplicate entry") {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "User already exists"})
		}
		log.Println("Register error:", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}

	token, err := middleware.IssueToken(a.Secret, &user)
	if err != nil {
		log.Println("Register error:", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"token":   token,
		"user":    userResponse(&user),
	})
}

// Login verifies credentials, opens today's time log and returns a
// session token
func (a *AuthController) Login(ctx *fiber.Ctx) error {
	var input LoginInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body", "error": err.Error()})
	}
	if err := validate.Struct(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Validation failed", "error": err.Error()})
	}

	var user Models.User
	if err := a.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid credentials"})
	}
	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(input.Password)); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid credentials"})
	}

	if err := Models.OpenTimeLog(a.DB, user.ID, time.Now()); err != nil {
		log.Println("Login error:", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}

	token, err := middleware.IssueToken(a.Secret, &user)
	if err != nil {
		log.Println("Login error:", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    userResponse(&user),
	})
}

// Logout closes today's active time log. The token itself stays valid
// until it expires.
func (a *AuthController) Logout(ctx *fiber.Ctx) error {
	p := middleware.PrincipalFrom(ctx)
	if err := Models.CloseTimeLog(a.DB, p.User.ID, time.Now()); err != nil {
		log.Println("Logout error:", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Logout successful"})
}
