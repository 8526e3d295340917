package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ActivitySignIn       = "SIGN_IN"
	ActivityCreateCourse = "CREATE_COURSE"
	ActivityDeleteCourse = "DELETE_COURSE"
	ActivityImportData   = "IMPORT_DATA"
)

// UserActivity is an append-only audit record. Rows are never updated or deleted.
type UserActivity struct {
	gorm.Model
	UserID   uint           `json:"userId" gorm:"not null;index"`
	Type     string         `json:"type" gorm:"not null"` // SIGN_IN, CREATE_COURSE, DELETE_COURSE, IMPORT_DATA
	Details  string         `json:"details" gorm:"default:''"`
	Metadata datatypes.JSON `json:"metadata"`
}
