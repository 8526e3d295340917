package importer

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"edugate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBCounter int64

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:importtest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.University{}, &models.Course{}))
	return db
}

const fullHeader = "Course Name,Course Name (Uzbek),Level,University,Campus,Tuition Fee,Currency,Selected Intake,Selected Duration"

func TestImportValidBatch(t *testing.T) {
	db := openTestDB(t)
	imp := New(db)

	csv := fullHeader + "\n" +
		`"MSc X","MSc X uz","Postgraduate","Test Uni","Main","10000","GBP","Sept 2025","1 year"`

	result, err := imp.Import(strings.NewReader(csv))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.ProcessedCount)
	assert.Empty(t, result.Errors)
	assert.NotEmpty(t, result.BatchID)

	var course models.Course
	require.NoError(t, db.Preload("University").First(&course).Error)
	assert.Equal(t, "MSc X", course.CourseName)
	assert.Equal(t, "MSc X uz", course.CourseNameUz)
	assert.Equal(t, models.LevelPostgraduate, course.Level)
	assert.Equal(t, "Main", course.Campus)
	assert.Equal(t, 10000.0, course.TuitionFee)
	assert.Equal(t, "GBP", course.Currency)
	assert.Equal(t, "Sept 2025", course.SelectedIntake)
	assert.Equal(t, "1 year", course.SelectedDuration)
	assert.False(t, course.ExpressOffer)

	// University was created via upsert with the import defaults
	assert.Equal(t, "Test Uni", course.University.Name)
	assert.Equal(t, "Test Uni", course.University.NameUz)
	assert.Equal(t, "Unknown", course.University.Country)
}

func TestImportAllOrNothingValidation(t *testing.T) {
	db := openTestDB(t)
	imp := New(db)

	// Row 2 is valid, rows 3 and 4 are broken in different ways.
	csv := fullHeader + "\n" +
		`"Good","Good uz","Postgraduate","Test Uni","Main","10000","GBP","Sept 2025","1 year"` + "\n" +
		`"","Bad uz","Postgraduate","Test Uni","Main","10000","GBP","Sept 2025","1 year"` + "\n" +
		`"Bad fee","Bad fee uz","Diploma","Test Uni","Main","-5","GBP","Sept 2025","1 year"`

	result, err := imp.Import(strings.NewReader(csv))
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, 0, result.ProcessedCount)
	require.Len(t, result.Errors, 2)

	// Every invalid row is reported, 1-indexed with the header as row 1
	assert.Equal(t, 3, result.Errors[0].Row)
	assert.Contains(t, result.Errors[0].Errors, ColCourseName)
	assert.Equal(t, 4, result.Errors[1].Row)
	assert.Contains(t, result.Errors[1].Errors, ColLevel)
	assert.Contains(t, result.Errors[1].Errors, ColTuitionFee)

	// Zero rows persisted, including the valid one
	var courses, universities int64
	require.NoError(t, db.Model(&models.Course{}).Count(&courses).Error)
	require.NoError(t, db.Model(&models.University{}).Count(&universities).Error)
	assert.Zero(t, courses)
	assert.Zero(t, universities)
}

func TestImportOptionalColumns(t *testing.T) {
	db := openTestDB(t)
	imp := New(db)

	header := fullHeader + ",Submission Deadline,Offer TAT,Express Offer"
	csv := header + "\n" +
		`"A","A uz","Postgraduate","Test Uni","Main","10000","","Sept 2025","1 year","2025-08-01","2","yes"` + "\n" +
		`"B","B uz","Undergraduate","Test Uni","Main","9000","USD","Sept 2025","3 years","","","TRUE"` + "\n" +
		`"C","C uz","Undergraduate","Test Uni","Main","8000","","Sept 2025","3 years","","","no"`

	result, err := imp.Import(strings.NewReader(csv))
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, 3, result.ProcessedCount)

	var courses []models.Course
	require.NoError(t, db.Order("id asc").Find(&courses).Error)
	require.Len(t, courses, 3)

	// Blank currency falls back to GBP
	assert.Equal(t, "GBP", courses[0].Currency)
	assert.Equal(t, "USD", courses[1].Currency)

	require.NotNil(t, courses[0].SubmissionDeadline)
	assert.Equal(t, time.August, courses[0].SubmissionDeadline.Month())
	require.NotNil(t, courses[0].OfferTAT)
	assert.Equal(t, 2, *courses[0].OfferTAT)

	// "yes" and "TRUE" map to true, anything else to false
	assert.True(t, courses[0].ExpressOffer)
	assert.True(t, courses[1].ExpressOffer)
	assert.False(t, courses[2].ExpressOffer)
	assert.Nil(t, courses[1].SubmissionDeadline)
	assert.Nil(t, courses[1].OfferTAT)
}

func TestImportReusesExistingUniversity(t *testing.T) {
	db := openTestDB(t)
	imp := New(db)

	existing := models.University{Name: "Test Uni", NameUz: "Test Uni uz", Country: "United Kingdom"}
	require.NoError(t, db.Create(&existing).Error)

	csv := fullHeader + "\n" +
		`"A","A uz","Postgraduate","Test Uni","Main","10000","GBP","Sept 2025","1 year"` + "\n" +
		`"B","B uz","Postgraduate","Test Uni","Main","11000","GBP","Sept 2025","1 year"`

	result, err := imp.Import(strings.NewReader(csv))
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, 2, result.ProcessedCount)

	var count int64
	require.NoError(t, db.Model(&models.University{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var courses []models.Course
	require.NoError(t, db.Find(&courses).Error)
	for _, course := range courses {
		assert.Equal(t, existing.ID, course.UniversityID)
	}
}

func TestImportInvalidOptionalValues(t *testing.T) {
	db := openTestDB(t)
	imp := New(db)

	header := fullHeader + ",Submission Deadline,Offer TAT"
	csv := header + "\n" +
		`"A","A uz","Postgraduate","Test Uni","Main","10000","GBP","Sept 2025","1 year","not-a-date","two"`

	result, err := imp.Import(strings.NewReader(csv))
	require.NoError(t, err)

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Contains(t, result.Errors[0].Errors, ColDeadline)
	assert.Contains(t, result.Errors[0].Errors, ColOfferTAT)
}

func TestImportMissingRequiredColumn(t *testing.T) {
	db := openTestDB(t)
	imp := New(db)

	csv := "Course Name,Level,University\n" +
		`"A","Postgraduate","Test Uni"`

	result, err := imp.Import(strings.NewReader(csv))
	require.NoError(t, err)

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 1, result.Errors[0].Row)
	assert.Contains(t, result.Errors[0].Errors, ColCourseNameUz)
	assert.Contains(t, result.Errors[0].Errors, ColTuitionFee)
}

func TestImportMalformedCSV(t *testing.T) {
	db := openTestDB(t)
	imp := New(db)

	csv := "Course Name,Course Name (Uzbek),Level\n" +
		`"A","A uz","Postgraduate","extra field"`

	_, err := imp.Import(strings.NewReader(csv))
	assert.ErrorIs(t, err, ErrMalformedCSV)
}

func TestImportEmptyFile(t *testing.T) {
	db := openTestDB(t)
	imp := New(db)

	_, err := imp.Import(strings.NewReader(fullHeader))
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = imp.Import(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyFile)
}
