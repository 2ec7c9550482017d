package Models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

const (
	TimeLogActive    = "active"
	TimeLogLoggedOut = "logged_out"
)

type TimeLog struct {
	gorm.Model
	UserID     uint       `json:"user_id" gorm:"not null;index:idx_user_day"`
	LoginTime  time.Time  `json:"login_time" gorm:"not null"`
	LogoutTime *time.Time `json:"logout_time"`
	Date       string     `json:"date" gorm:"not null;index:idx_user_day"` // YYYY-MM-DD
	TotalHours float64    `json:"total_hours"`
	Status     string     `json:"status" gorm:"not null;default:active"`

	User User `json:"user" gorm:"foreignKey:UserID"`
}

// DayKey buckets a timestamp to its calendar day. Day granularity is
// deliberate: it permits at most one active entry per user per day.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// OpenTimeLog creates today's active entry for the user, or leaves an
// existing one untouched. Repeated logins on the same day are a no-op
// while an entry is active, at the cost of losing intermediate
// sessions. The check and insert run in one transaction so concurrent
// logins cannot create duplicate active entries.
func OpenTimeLog(db *gorm.DB, userID uint, now time.Time) error {
	day := DayKey(now)
	return db.Transaction(func(tx *gorm.DB) error {
		var existing TimeLog
		err := tx.Where("user_id = ? AND date = ? AND status = ?", userID, day, TimeLogActive).
			First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		entry := TimeLog{
			UserID:    userID,
			LoginTime: now,
			Date:      day,
			Status:    TimeLogActive,
		}
		return tx.Create(&entry).Error
	})
}

// CloseTimeLog closes today's active entry for the user, computing the
// tracked span in hours. No active entry is a no-op. Clock skew can
// produce a negative span; the original behaves the same way and it is
// not guarded here.
func CloseTimeLog(db *gorm.DB, userID uint, now time.Time) error {
	var entry TimeLog
	err := db.Where("user_id = ? AND date = ? AND status = ?", userID, DayKey(now), TimeLogActive).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	entry.LogoutTime = &now
	entry.Status = TimeLogLoggedOut
	entry.TotalHours = now.Sub(entry.LoginTime).Hours()
	return db.Save(&entry).Error
}

// CloseStaleTimeLogs closes entries still active from days before
// today, stamping the logout at the end of their own day. Used by the
// nightly sweeper.
func CloseStaleTimeLogs(db *gorm.DB, now time.Time) (int, error) {
	var stale []TimeLog
	if err := db.Where("status = ? AND date < ?", TimeLogActive, DayKey(now)).
		Find(&stale).Error; err != nil {
		return 0, err
	}
	for i := range stale {
		day, err := time.ParseInLocation("2006-01-02", stale[i].Date, now.Location())
		if err != nil {
			return i, err
		}
		endOfDay := day.Add(24*time.Hour - time.Second)
		stale[i].LogoutTime = &endOfDay
		stale[i].Status = TimeLogLoggedOut
		stale[i].TotalHours = endOfDay.Sub(stale[i].LoginTime).Hours()
		if err := db.Save(&stale[i]).Error; err != nil {
			return i, err
		}
	}
	return len(stale), nil
}
