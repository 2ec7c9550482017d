package Models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

const (
	StatusNotStarted = "Not Started"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

type Task struct {
	gorm.Model
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description" gorm:"not null"`
	AssignedToID uint      `json:"assigned_to_id" gorm:"not null;index"`
	AssignedByID uint      `json:"assigned_by_id" gorm:"not null"`
	DueDate      time.Time `json:"due_date"`
	Priority     string    `json:"priority" gorm:"not null;default:Medium"`
	Status       string    `json:"status" gorm:"not null;default:Not Started"`
	TaskType     string    `json:"task_type" gorm:"not null"`

	// Referential integrity to User is not enforced on delete
	AssignedTo User `json:"assigned_to" gorm:"foreignKey:AssignedToID"`
	AssignedBy User `json:"assigned_by" gorm:"foreignKey:AssignedByID"`
}
