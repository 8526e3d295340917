// Package importer parses and commits CSV course uploads. Validation is
// all-or-nothing at the batch level: every row is checked before anything is
// written, and the write phase runs in a single transaction so a mid-batch
// failure leaves nothing behind.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"edugate/models"
	"edugate/repository"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// Required and optional CSV column headers.
const (
	ColCourseName   = "Course Name"
	ColCourseNameUz = "Course Name (Uzbek)"
	ColLevel        = "Level"
	ColUniversity   = "University"
	ColCampus       = "Campus"
	ColTuitionFee   = "Tuition Fee"
	ColCurrency     = "Currency"
	ColIntake       = "Selected Intake"
	ColDuration     = "Selected Duration"
	ColDeadline     = "Submission Deadline"
	ColOfferTAT     = "Offer TAT"
	ColExpressOffer = "Express Offer"
)

var requiredColumns = []string{
	ColCourseName, ColCourseNameUz, ColLevel, ColUniversity,
	ColCampus, ColTuitionFee, ColIntake, ColDuration,
}

var (
	// ErrEmptyFile is returned when the upload has no data rows.
	ErrEmptyFile = errors.New("CSV file is empty or has only headers")
	// ErrMalformedCSV is returned when the upload cannot be parsed as CSV.
	ErrMalformedCSV = errors.New("malformed CSV file")
)

// RowError reports the field errors for one data row. Row numbers are
// 1-indexed including the header, so the first data row is row 2.
type RowError struct {
	Row    int               `json:"row"`
	Errors map[string]string `json:"errors"`
}

// Result is the import response body.
type Result struct {
	Success        bool       `json:"success"`
	ProcessedCount int        `json:"processedCount"`
	Errors         []RowError `json:"errors"`
	BatchID        string     `json:"-"`
}

// courseRow is a fully validated data row ready to be written.
type courseRow struct {
	courseName         string
	courseNameUz       string
	level              string
	university         string
	campus             string
	tuitionFee         float64
	currency           string
	selectedIntake     string
	selectedDuration   string
	submissionDeadline *time.Time
	offerTAT           *int
	expressOffer       bool
}

type Importer struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Importer {
	return &Importer{db: db}
}

// Import reads the CSV, validates every row, and on an all-valid batch
// upserts universities and creates courses inside one transaction.
func (imp *Importer) Import(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
	}

	if len(records) < 2 {
		return nil, ErrEmptyFile
	}

	headerIndex := make(map[string]int)
	for i, h := range records[0] {
		headerIndex[strings.TrimSpace(h)] = i
	}

	if missing := missingColumns(headerIndex); len(missing) > 0 {
		headerErrors := make(map[string]string, len(missing))
		for _, col := range missing {
			headerErrors[col] = "Missing required column!"
		}
		return &Result{Success: false, Errors: []RowError{{Row: 1, Errors: headerErrors}}}, nil
	}

	var (
		rows      []courseRow
		rowErrors []RowError
	)

	for i, record := range records[1:] {
		rowNum := i + 2 // header is row 1

		row, fieldErrors := parseRow(record, headerIndex)
		if len(fieldErrors) > 0 {
			rowErrors = append(rowErrors, RowError{Row: rowNum, Errors: fieldErrors})
			continue
		}
		rows = append(rows, row)
	}

	// Any invalid row rejects the whole batch. Nothing has been written yet.
	if len(rowErrors) > 0 {
		return &Result{Success: false, Errors: rowErrors}, nil
	}

	err = imp.db.Transaction(func(tx *gorm.DB) error {
		universities := repository.NewUniversityRepository(tx)

		for _, row := range rows {
			uni, err := universities.UpsertByName(row.university)
			if err != nil {
				return err
			}

			course := models.Course{
				CourseName:         row.courseName,
				CourseNameUz:       row.courseNameUz,
				Level:              row.level,
				UniversityID:       uni.ID,
				Campus:             row.campus,
				TuitionFee:         row.tuitionFee,
				Currency:           row.currency,
				SelectedIntake:     row.selectedIntake,
				SelectedDuration:   row.selectedDuration,
				SubmissionDeadline: row.submissionDeadline,
				OfferTAT:           row.offerTAT,
				ExpressOffer:       row.expressOffer,
			}
			if err := tx.Create(&course).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Success:        true,
		ProcessedCount: len(rows),
		Errors:         []RowError{},
		BatchID:        uuid.NewString(),
	}, nil
}

func missingColumns(headerIndex map[string]int) []string {
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := headerIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

func parseRow(record []string, headerIndex map[string]int) (courseRow, map[string]string) {
	fieldErrors := make(map[string]string)

	row := courseRow{
		courseName:       getField(record, headerIndex, ColCourseName),
		courseNameUz:     getField(record, headerIndex, ColCourseNameUz),
		level:            getField(record, headerIndex, ColLevel),
		university:       getField(record, headerIndex, ColUniversity),
		campus:           getField(record, headerIndex, ColCampus),
		selectedIntake:   getField(record, headerIndex, ColIntake),
		selectedDuration: getField(record, headerIndex, ColDuration),
	}

	requireField(fieldErrors, ColCourseName, row.courseName)
	requireField(fieldErrors, ColCourseNameUz, row.courseNameUz)
	requireField(fieldErrors, ColUniversity, row.university)
	requireField(fieldErrors, ColCampus, row.campus)
	requireField(fieldErrors, ColIntake, row.selectedIntake)
	requireField(fieldErrors, ColDuration, row.selectedDuration)

	if row.level == "" {
		fieldErrors[ColLevel] = "Level is required!"
	} else if row.level != models.LevelUndergraduate && row.level != models.LevelPostgraduate {
		fieldErrors[ColLevel] = "Level must be Undergraduate or Postgraduate!"
	}

	fee := getField(record, headerIndex, ColTuitionFee)
	if fee == "" {
		fieldErrors[ColTuitionFee] = "Tuition Fee is required!"
	} else if parsed, err := strconv.ParseFloat(fee, 64); err != nil {
		fieldErrors[ColTuitionFee] = "Tuition Fee must be a number!"
	} else if parsed < 0 {
		fieldErrors[ColTuitionFee] = "Tuition Fee must be a positive number!"
	} else {
		row.tuitionFee = parsed
	}

	row.currency = getField(record, headerIndex, ColCurrency)
	if row.currency == "" {
		row.currency = "GBP"
	}

	if deadline := getField(record, headerIndex, ColDeadline); deadline != "" {
		if parsed, err := now.Parse(deadline); err != nil {
			fieldErrors[ColDeadline] = "Submission Deadline must be a valid date!"
		} else {
			row.submissionDeadline = &parsed
		}
	}

	if tat := getField(record, headerIndex, ColOfferTAT); tat != "" {
		if parsed, err := strconv.Atoi(tat); err != nil {
			fieldErrors[ColOfferTAT] = "Offer TAT must be an integer!"
		} else {
			row.offerTAT = &parsed
		}
	}

	express := getField(record, headerIndex, ColExpressOffer)
	row.expressOffer = strings.EqualFold(express, "yes") || strings.EqualFold(express, "true")

	return row, fieldErrors
}

func requireField(fieldErrors map[string]string, column, value string) {
	if value == "" {
		fieldErrors[column] = column + " is required!"
	}
}

// getField safely gets a field from the row by header name
func getField(record []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}
