package repository

import (
	"fmt"
	"sync/atomic"
	"testing"

	"edugate/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBCounter int64

// openTestDB returns an isolated in-memory database with migrations applied.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.University{},
		&models.Course{},
		&models.UserActivity{},
	))

	return db
}

func createUniversity(t *testing.T, db *gorm.DB, name string) *models.University {
	t.Helper()

	uni := models.University{Name: name, NameUz: name, Country: "United Kingdom"}
	require.NoError(t, db.Create(&uni).Error)
	return &uni
}

func createCourse(t *testing.T, db *gorm.DB, course models.Course) *models.Course {
	t.Helper()

	if course.Currency == "" {
		course.Currency = "GBP"
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}
