package repository

import (
	"testing"

	"edugate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniversityUpsertByNameIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := NewUniversityRepository(db)

	first, err := repo.UpsertByName("Test Uni")
	require.NoError(t, err)
	assert.Equal(t, "Test Uni", first.Name)
	assert.Equal(t, "Test Uni", first.NameUz)
	assert.Equal(t, "Unknown", first.Country)

	second, err := repo.UpsertByName("Test Uni")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.University{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUniversityUpsertKeepsExistingRecord(t *testing.T) {
	db := openTestDB(t)
	repo := NewUniversityRepository(db)

	existing := createUniversity(t, db, "Oxford Brookes University")

	got, err := repo.UpsertByName("Oxford Brookes University")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	assert.Equal(t, "United Kingdom", got.Country)
}

func TestUniversityListOrderedByName(t *testing.T) {
	db := openTestDB(t)
	repo := NewUniversityRepository(db)

	createUniversity(t, db, "Zeta University")
	createUniversity(t, db, "Alpha University")

	universities, err := repo.List()
	require.NoError(t, err)
	require.Len(t, universities, 2)
	assert.Equal(t, "Alpha University", universities[0].Name)
	assert.Equal(t, "Zeta University", universities[1].Name)
}
