package CronJobs

import (
	"path/filepath"
	"testing"
	"time"

	"EmpTrack/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestManualSweepClosesStaleEntries(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Models.User{}, &Models.TimeLog{}))

	yesterday := time.Now().AddDate(0, 0, -1)
	require.NoError(t, Models.OpenTimeLog(db, 1, yesterday))

	sweeper := NewLedgerSweeper(db)
	sweeper.RunManualSweep()

	var entry Models.TimeLog
	require.NoError(t, db.Where("user_id = ?", 1).First(&entry).Error)
	assert.Equal(t, Models.TimeLogLoggedOut, entry.Status)
	require.NotNil(t, entry.LogoutTime)
	assert.Equal(t, Models.DayKey(yesterday), Models.DayKey(*entry.LogoutTime))
}
