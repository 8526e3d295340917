package repository

import (
	"time"

	"edugate/models"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Append writes one audit record. The table is append-only; there are no
// update or delete operations.
func (r *ActivityRepository) Append(activity *models.UserActivity) error {
	return r.db.Create(activity).Error
}

// CountByTypeSince returns activity counts per type since the given time,
// used by the daily digest.
func (r *ActivityRepository) CountByTypeSince(since time.Time) (map[string]int64, error) {
	type row struct {
		Type  string
		Count int64
	}
	var rows []row
	err := r.db.Model(&models.UserActivity{}).
		Select("type, count(*) as count").
		Where("created_at >= ?", since).
		Group("type").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Type] = r.Count
	}
	return counts, nil
}
