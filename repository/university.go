package repository

import (
	"errors"

	"edugate/models"

	"gorm.io/gorm"
)

type UniversityRepository struct {
	db *gorm.DB
}

func NewUniversityRepository(db *gorm.DB) *UniversityRepository {
	return &UniversityRepository{db: db}
}

// UpsertByName finds a university by its exact name or creates one. New rows
// use the given name for both the primary and localized name and country
// "Unknown", matching the import contract.
func (r *UniversityRepository) UpsertByName(name string) (*models.University, error) {
	var uni models.University
	err := r.db.Where("name = ?", name).First(&uni).Error
	if err == nil {
		return &uni, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	uni = models.University{
		Name:    name,
		NameUz:  name,
		Country: "Unknown",
	}
	if err := r.db.Create(&uni).Error; err != nil {
		return nil, err
	}
	return &uni, nil
}

func (r *UniversityRepository) FindByID(id uint) (*models.University, error) {
	var uni models.University
	if err := r.db.First(&uni, id).Error; err != nil {
		return nil, err
	}
	return &uni, nil
}

// List returns all universities ordered by name, for the course form dropdown.
func (r *UniversityRepository) List() ([]models.University, error) {
	var universities []models.University
	if err := r.db.Order("name asc").Find(&universities).Error; err != nil {
		return nil, err
	}
	return universities, nil
}
