package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	LevelUndergraduate = "Undergraduate"
	LevelPostgraduate  = "Postgraduate"
)

type Course struct {
	gorm.Model
	CourseName         string     `json:"courseName" gorm:"not null"`
	CourseNameUz       string     `json:"courseNameUz" gorm:"not null"`
	Description        string     `json:"description" gorm:"default:''"`
	DescriptionUz      string     `json:"descriptionUz" gorm:"default:''"`
	Level              string     `json:"level" gorm:"not null"` // Undergraduate or Postgraduate
	UniversityID       uint       `json:"universityId" gorm:"not null"`
	University         University `json:"university"`
	Campus             string     `json:"campus" gorm:"not null"`
	TuitionFee         float64    `json:"tuitionFee" gorm:"not null"`
	Currency           string     `json:"currency" gorm:"default:'GBP'"`
	SelectedIntake     string     `json:"selectedIntake" gorm:"not null"`
	SelectedDuration   string     `json:"selectedDuration" gorm:"not null"`
	SubmissionDeadline *time.Time `json:"submissionDeadline"`
	OfferTAT           *int       `json:"offerTAT"` // turnaround, in weeks
	ExpressOffer       bool       `json:"expressOffer" gorm:"default:false"`
	ModeOfStudy        string     `json:"modeOfStudy" gorm:"default:''"`
}
