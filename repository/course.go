package repository

import (
	"strings"

	"edugate/models"

	"gorm.io/gorm"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Search applies the filter to the course table and returns one page of
// results with the related university preloaded. Ordering is newest-created
// first with the id as a deterministic tie-break.
func (r *CourseRepository) Search(f CourseFilter) ([]models.Course, Pagination, error) {
	q := r.db.Model(&models.Course{})

	if f.Query != "" {
		if f.Type == "exact" {
			q = q.Where("course_name = ?", f.Query)
		} else {
			pattern := "%" + strings.ToLower(f.Query) + "%"
			q = q.Where(
				"(LOWER(course_name) LIKE ? OR LOWER(course_name_uz) LIKE ? OR LOWER(description) LIKE ? OR LOWER(description_uz) LIKE ?)",
				pattern, pattern, pattern, pattern,
			)
		}
	}

	if f.Level != "" {
		q = q.Where("level = ?", f.Level)
	}

	if f.University != "" {
		pattern := "%" + strings.ToLower(f.University) + "%"
		sub := r.db.Model(&models.University{}).Select("id").Where("LOWER(name) LIKE ?", pattern)
		q = q.Where("university_id IN (?)", sub)
	}

	if f.MinFee != nil {
		q = q.Where("tuition_fee >= ?", *f.MinFee)
	}
	if f.MaxFee != nil {
		q = q.Where("tuition_fee <= ?", *f.MaxFee)
	}

	if f.Intake != "" {
		q = q.Where("selected_intake = ?", f.Intake)
	}
	if f.Duration != "" {
		q = q.Where("selected_duration = ?", f.Duration)
	}
	if f.ExpressOffer {
		q = q.Where("express_offer = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	var courses []models.Course
	err := q.Preload("University").
		Order("created_at desc, id desc").
		Offset(f.Offset()).
		Limit(f.Limit).
		Find(&courses).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	return courses, NewPagination(f.Page, f.Limit, total), nil
}

// FindByID returns a single course with its university preloaded.
func (r *CourseRepository) FindByID(id uint) (*models.Course, error) {
	var course models.Course
	if err := r.db.Preload("University").First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) Create(course *models.Course) error {
	return r.db.Create(course).Error
}

// Delete removes a course by id and returns the deleted record.
// gorm.ErrRecordNotFound is returned when the id does not exist.
func (r *CourseRepository) Delete(id uint) (*models.Course, error) {
	var course models.Course
	if err := r.db.First(&course, id).Error; err != nil {
		return nil, err
	}
	if err := r.db.Delete(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}
