package Models

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}, &Task{}, &TimeLog{}))
	return db
}

func TestDayKey(t *testing.T) {
	ts := time.Date(2025, time.March, 7, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2025-03-07", DayKey(ts))
}

func TestOpenTimeLogIdempotent(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2025, time.March, 7, 9, 0, 0, 0, time.UTC)

	require.NoError(t, OpenTimeLog(db, 1, now))
	require.NoError(t, OpenTimeLog(db, 1, now.Add(2*time.Hour)))

	var count int64
	require.NoError(t, db.Model(&TimeLog{}).
		Where("user_id = ? AND date = ? AND status = ?", 1, "2025-03-07", TimeLogActive).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// the surviving entry keeps the first login time
	var entry TimeLog
	require.NoError(t, db.Where("user_id = ?", 1).First(&entry).Error)
	assert.True(t, entry.LoginTime.Equal(now))
}

func TestOpenTimeLogNewDayNewEntry(t *testing.T) {
	db := newTestDB(t)
	day1 := time.Date(2025, time.March, 7, 9, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	require.NoError(t, OpenTimeLog(db, 1, day1))
	require.NoError(t, OpenTimeLog(db, 1, day2))

	var count int64
	require.NoError(t, db.Model(&TimeLog{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestCloseTimeLogComputesHours(t *testing.T) {
	db := newTestDB(t)
	login := time.Date(2025, time.March, 7, 9, 0, 0, 0, time.UTC)
	logout := login.Add(7*time.Hour + 30*time.Minute)

	require.NoError(t, OpenTimeLog(db, 1, login))
	require.NoError(t, CloseTimeLog(db, 1, logout))

	var entry TimeLog
	require.NoError(t, db.Where("user_id = ?", 1).First(&entry).Error)
	assert.Equal(t, TimeLogLoggedOut, entry.Status)
	require.NotNil(t, entry.LogoutTime)
	assert.True(t, entry.LogoutTime.After(entry.LoginTime))
	assert.InDelta(t, 7.5, entry.TotalHours, 1e-9)
}

func TestCloseTimeLogNoActiveEntryIsNoop(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, CloseTimeLog(db, 1, time.Now()))

	var count int64
	require.NoError(t, db.Model(&TimeLog{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCloseTimeLogReopensAfterLogout(t *testing.T) {
	db := newTestDB(t)
	login := time.Date(2025, time.March, 7, 9, 0, 0, 0, time.UTC)

	require.NoError(t, OpenTimeLog(db, 1, login))
	require.NoError(t, CloseTimeLog(db, 1, login.Add(time.Hour)))
	// a second login the same day opens a fresh entry
	require.NoError(t, OpenTimeLog(db, 1, login.Add(2*time.Hour)))

	var count int64
	require.NoError(t, db.Model(&TimeLog{}).
		Where("user_id = ? AND date = ?", 1, "2025-03-07").Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestCloseStaleTimeLogs(t *testing.T) {
	db := newTestDB(t)
	yesterday := time.Date(2025, time.March, 6, 22, 0, 0, 0, time.UTC)
	today := time.Date(2025, time.March, 7, 8, 0, 0, 0, time.UTC)

	require.NoError(t, OpenTimeLog(db, 1, yesterday))
	require.NoError(t, OpenTimeLog(db, 2, today))

	closed, err := CloseStaleTimeLogs(db, today)
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	var stale TimeLog
	require.NoError(t, db.Where("user_id = ?", 1).First(&stale).Error)
	assert.Equal(t, TimeLogLoggedOut, stale.Status)
	require.NotNil(t, stale.LogoutTime)
	assert.Equal(t, "2025-03-06", DayKey(*stale.LogoutTime))
	assert.InDelta(t, 1.9997, stale.TotalHours, 0.001)

	// today's entry untouched
	var active TimeLog
	require.NoError(t, db.Where("user_id = ?", 2).First(&active).Error)
	assert.Equal(t, TimeLogActive, active.Status)
}
