package Controllers

import (
	"fmt"
	"time"

	"EmpTrack/Models"
	"EmpTrack/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// TimeLogController handles attendance ledger endpoints
type TimeLogController struct {
	DB *gorm.DB
}

// NewTimeLogController creates a new TimeLogController
func NewTimeLogController(db *gorm.DB) *TimeLogController {
	return &TimeLogController{DB: db}
}

// GetTimeLogs lists ledger entries, newest day first. Employees see
// only their own entries.
func (t *TimeLogController) GetTimeLogs(ctx *fiber.Ctx) error {
	p := middleware.PrincipalFrom(ctx)

	query := t.DB.Preload("User").Order("date DESC")
	if !p.IsAdmin() {
		query = query.Where("user_id = ?", p.User.ID)
	}

	var logs []Models.TimeLog
	if err := query.Find(&logs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}
	return ctx.JSON(logs)
}

// ExportTimeLogs streams the full ledger as an xlsx workbook
func (t *TimeLogController) ExportTimeLogs(ctx *fiber.Ctx) error {
	var logs []Models.TimeLog
	if err := t.DB.Preload("User").Order("date DESC").Find(&logs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}

	f := excelize.NewFile()
	sheetName := "Timesheet"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Date", "Employee", "Email", "Login Time", "Logout Time", "Total Hours", "Status"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err == nil {
		f.SetRowStyle(sheetName, 1, 1, headerStyle)
	}

	for rowIndex, entry := range logs {
		row := rowIndex + 2

		logoutTime := ""
		if entry.LogoutTime != nil {
			logoutTime = entry.LogoutTime.Format("2006-01-02 15:04:05")
		}

		values := []interface{}{
			entry.Date,
			entry.User.Name,
			entry.User.Email,
			entry.LoginTime.Format("2006-01-02 15:04:05"),
			logoutTime,
			entry.TotalHours,
			entry.Status,
		}
		for colIndex, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range headers {
		f.SetColWidth(sheetName, string('A'+rune(i)), string('A'+rune(i)), 20)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
	}

	filename := fmt.Sprintf("timesheet-%s.xlsx", Models.DayKey(time.Now()))
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Send(buf.Bytes())
}
