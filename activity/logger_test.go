package activity

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"testing"

	"edugate/models"
	"edugate/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBCounter int64

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:activitytest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.UserActivity{}))
	return db
}

func TestLoggerPersistsEntries(t *testing.T) {
	db := openTestDB(t)
	logger := NewLogger(repository.NewActivityRepository(db), 16)

	logger.Log(Entry{UserID: 1, Type: models.ActivitySignIn, Details: "Signed in: admin@example.com"})
	logger.Log(Entry{
		UserID:  1,
		Type:    models.ActivityImportData,
		Details: "Imported 3 courses from CSV",
		Metadata: map[string]interface{}{
			"batchId": "abc-123",
			"count":   3,
		},
	})

	// Close drains the queue before returning
	logger.Close()

	var activities []models.UserActivity
	require.NoError(t, db.Order("id asc").Find(&activities).Error)
	require.Len(t, activities, 2)

	assert.Equal(t, models.ActivitySignIn, activities[0].Type)
	assert.Equal(t, uint(1), activities[0].UserID)

	assert.Equal(t, models.ActivityImportData, activities[1].Type)

	var metadata map[string]interface{}
	require.NoError(t, json.Unmarshal(activities[1].Metadata, &metadata))
	assert.Equal(t, "abc-123", metadata["batchId"])
	assert.Equal(t, float64(3), metadata["count"])
}

func TestLoggerDropsWhenQueueFull(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewActivityRepository(db)

	// Build an unstarted logger so the queue cannot drain while filling it.
	logger := &Logger{
		repo:    repo,
		entries: make(chan Entry, 1),
		done:    make(chan struct{}),
	}

	logger.Log(Entry{UserID: 1, Type: models.ActivitySignIn})
	// Queue is full now; this must not block.
	logger.Log(Entry{UserID: 2, Type: models.ActivitySignIn})

	go logger.run()
	logger.Close()

	var count int64
	require.NoError(t, db.Model(&models.UserActivity{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
