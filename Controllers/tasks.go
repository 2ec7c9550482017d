package Controllers

import (
	"strconv"
	"time"

	"EmpTrack/Models"
	"EmpTrack/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TaskController handles task CRUD endpoints
type TaskController struct {
	DB *gorm.DB
}

// NewTaskController creates a new TaskController
func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{DB: db}
}

type CreateTaskInput struct {
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description" validate:"required"`
	AssignedToID uint      `json:"assigned_to_id" validate:"required"`
	DueDate      time.Time `json:"due_date" validate:"required"`
	Priority     string    `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	Status       string    `json:"status" validate:"omitempty,oneof='Not Started' 'In Progress' Completed"`
	TaskType     string    `json:"task_type" validate:"required"`
}

type UpdateTaskInput struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	AssignedToID *uint      `json:"assigned_to_id"`
	DueDate      *time.Time `json:"due_date"`
	Priority     *string    `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	Status       *string    `json:"status" validate:"omitempty,oneof='Not Started' 'In Progress' Completed"`
	TaskType     *string    `json:"task_type"`
}

// CreateTask creates a task. The assigner is taken from the caller's
// identity, never from the payload.
func (t *TaskController) CreateTask(ctx *fiber.Ctx) error {
	var input CreateTaskInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body", "error": err.Error()})
	}
	if err := validate.Struct(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Validation failed", "error": err.Error()})
	}

	p := middleware.PrincipalFrom(ctx)
	task := Models.Task{
		Title:        input.Title,
		Description:  input.Description,
		AssignedToID: input.AssignedToID,
		AssignedByID: p.User.ID,
		DueDate:      input.DueDate,
		Priority:     input.Priority,
		Status:       input.Status,
		TaskType:     input.TaskType,
	}
	if task.Priority == "" {
		task.Priority = Models.PriorityMedium
	}
	if task.Status == "" {
		task.Status = Models.StatusNotStarted
	}

	if err := t.DB.Create(&task).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}
	if err := t.DB.Preload("AssignedTo").Preload("AssignedBy").First(&task, task.ID).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(task)
}

// GetTasks lists tasks. Admins see everything, employees only tasks
// assigned to them.
func (t *TaskController) GetTasks(ctx *fiber.Ctx) error {
	p := middleware.PrincipalFrom(ctx)

	query := t.DB.Preload("AssignedTo").Preload("AssignedBy").Order("created_at DESC")
	if !p.IsAdmin() {
		query = query.Where("assigned_to_id = ?", p.User.ID)
	}

	var tasks []Models.Task
	if err := query.Find(&tasks).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}
	return ctx.JSON(tasks)
}

// UpdateTask patches a task. Employees may only touch tasks assigned
// to them, but once past that check they may overwrite any field,
// matching the original's behavior.
func (t *TaskController) UpdateTask(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid task ID"})
	}

	var task Models.Task
	if err := t.DB.First(&task, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Task not found"})
	}

	p := middleware.PrincipalFrom(ctx)
	if !p.IsAdmin() && task.AssignedToID != p.User.ID {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Access denied"})
	}

	var input UpdateTaskInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body", "error": err.Error()})
	}
	if err := validate.Struct(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Validation failed", "error": err.Error()})
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.AssignedToID != nil {
		updates["assigned_to_id"] = *input.AssignedToID
	}
	if input.DueDate != nil {
		updates["due_date"] = *input.DueDate
	}
	if input.Priority != nil {
		updates["priority"] = *input.Priority
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.TaskType != nil {
		updates["task_type"] = *input.TaskType
	}

	if len(updates) > 0 {
		if err := t.DB.Model(&task).Updates(updates).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
	}

	if err := t.DB.Preload("AssignedTo").Preload("AssignedBy").First(&task, task.ID).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}
	return ctx.JSON(task)
}

// DeleteTask removes a task
func (t *TaskController) DeleteTask(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid task ID"})
	}

	var task Models.Task
	if err := t.DB.First(&task, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Task not found"})
	}

	if err := t.DB.Delete(&task).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Task deleted successfully"})
}
