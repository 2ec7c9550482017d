package Controllers

import (
	"EmpTrack/Models"
	"EmpTrack/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DashboardController serves the aggregate counts. Pure read side,
// every count is a live query.
type DashboardController struct {
	DB *gorm.DB
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetStats returns role-scoped counts. pending covers Not Started and
// In Progress, so completed + pending always partitions all tasks.
func (d *DashboardController) GetStats(ctx *fiber.Ctx) error {
	p := middleware.PrincipalFrom(ctx)

	pendingStatuses := []string{Models.StatusNotStarted, Models.StatusInProgress}

	if p.IsAdmin() {
		var totalUsers, totalTasks, completedTasks, pendingTasks int64
		if err := d.DB.Model(&Models.User{}).Where("role = ?", Models.RoleEmployee).Count(&totalUsers).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		if err := d.DB.Model(&Models.Task{}).Count(&totalTasks).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		if err := d.DB.Model(&Models.Task{}).Where("status = ?", Models.StatusCompleted).Count(&completedTasks).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		if err := d.DB.Model(&Models.Task{}).Where("status IN ?", pendingStatuses).Count(&pendingTasks).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}

		return ctx.JSON(fiber.Map{
			"totalUsers":     totalUsers,
			"totalTasks":     totalTasks,
			"completedTasks": completedTasks,
			"pendingTasks":   pendingTasks,
		})
	}

	var myTasks, completedTasks, pendingTasks int64
	if err := d.DB.Model(&Models.Task{}).Where("assigned_to_id = ?", p.User.ID).Count(&myTasks).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}
	if err := d.DB.Model(&Models.Task{}).Where("assigned_to_id = ? AND status = ?", p.User.ID, Models.StatusCompleted).Count(&completedTasks).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}
	if err := d.DB.Model(&Models.Task{}).Where("assigned_to_id = ? AND status IN ?", p.User.ID, pendingStatuses).Count(&pendingTasks).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"myTasks":        myTasks,
		"completedTasks": completedTasks,
		"pendingTasks":   pendingTasks,
	})
}
