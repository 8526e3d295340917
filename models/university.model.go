package models

import "gorm.io/gorm"

type University struct {
	gorm.Model
	Name          string   `json:"name" gorm:"unique;not null"`
	NameUz        string   `json:"nameUz" gorm:"default:''"`
	Country       string   `json:"country" gorm:"default:''"`
	City          string   `json:"city" gorm:"default:''"`
	Website       string   `json:"website" gorm:"default:''"`
	Description   string   `json:"description" gorm:"default:''"`
	DescriptionUz string   `json:"descriptionUz" gorm:"default:''"`
	Courses       []Course `json:"-" gorm:"foreignKey:UniversityID"`
}
