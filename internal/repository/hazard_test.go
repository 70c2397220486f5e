package repository_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shenikar/road_hazard_map/internal/models"
	"github.com/shenikar/road_hazard_map/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertHazardQuery = `
		INSERT INTO hazards (id, hazard_type, latitude, longitude, source, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

const listHazardsQuery = `
		SELECT id, hazard_type, latitude, longitude, source, note, created_at
		FROM hazards
		ORDER BY created_at DESC;
	`

const countHazardsQuery = `SELECT COUNT(*) FROM hazards;`

var hazardColumns = []string{"id", "hazard_type", "latitude", "longitude", "source", "note", "created_at"}

func TestInsertHazard(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	hazard := &models.Hazard{
		ID:        uuid.New(),
		Type:      models.TypePothole,
		Latitude:  32.5293,
		Longitude: -92.6379,
		Source:    models.SourceUser,
		Note:      "deep pothole near the crossing",
		CreatedAt: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewHazardRepository(mock, nil)

		mock.ExpectExec(regexp.QuoteMeta(insertHazardQuery)).
			WithArgs(hazard.ID, hazard.Type, hazard.Latitude, hazard.Longitude, hazard.Source, hazard.Note, hazard.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err = repo.Insert(ctx, hazard)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - exec fails", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewHazardRepository(mock, nil)

		mock.ExpectExec(regexp.QuoteMeta(insertHazardQuery)).
			WithArgs(hazard.ID, hazard.Type, hazard.Latitude, hazard.Longitude, hazard.Source, hazard.Note, hazard.CreatedAt).
			WillReturnError(assert.AnError)

		err = repo.Insert(ctx, hazard)

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to insert hazard")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListHazards(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	newest := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	oldest := newest.Add(-2 * time.Hour)

	t.Run("success - newest first", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewHazardRepository(mock, nil)

		firstID := uuid.New()
		secondID := uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta(listHazardsQuery)).
			WillReturnRows(
				pgxmock.NewRows(hazardColumns).
					AddRow(firstID, models.TypeDebris, 32.53, -92.64, models.SourceUser, "", newest).
					AddRow(secondID, models.TypePothole, 32.52, -92.63, models.SourceCamera, "faded marking", oldest),
			)

		hazards, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, hazards, 2)
		assert.Equal(t, firstID, hazards[0].ID)
		assert.Equal(t, secondID, hazards[1].ID)
		assert.True(t, hazards[0].CreatedAt.After(hazards[1].CreatedAt))
		assert.Equal(t, models.SourceCamera, hazards[1].Source)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - empty store", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewHazardRepository(mock, nil)

		mock.ExpectQuery(regexp.QuoteMeta(listHazardsQuery)).
			WillReturnRows(pgxmock.NewRows(hazardColumns))

		hazards, err := repo.List(ctx)

		require.NoError(t, err)
		assert.Empty(t, hazards)
		assert.NotNil(t, hazards)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - query fails", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewHazardRepository(mock, nil)

		mock.ExpectQuery(regexp.QuoteMeta(listHazardsQuery)).
			WillReturnError(assert.AnError)

		hazards, err := repo.List(ctx)

		require.Nil(t, hazards)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to list hazards")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - row iteration fails", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewHazardRepository(mock, nil)

		mock.ExpectQuery(regexp.QuoteMeta(listHazardsQuery)).
			WillReturnRows(
				pgxmock.NewRows(hazardColumns).
					AddRow(uuid.New(), models.TypeOther, 1.0, 2.0, models.SourceUser, "", newest).
					RowError(0, assert.AnError),
			)

		hazards, err := repo.List(ctx)

		require.Nil(t, hazards)
		require.Error(t, err)
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCountHazards(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewHazardRepository(mock, nil)

		mock.ExpectQuery(regexp.QuoteMeta(countHazardsQuery)).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))

		count, err := repo.Count(ctx)

		require.NoError(t, err)
		assert.Equal(t, 42, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - query fails", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewHazardRepository(mock, nil)

		mock.ExpectQuery(regexp.QuoteMeta(countHazardsQuery)).
			WillReturnError(assert.AnError)

		count, err := repo.Count(ctx)

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to count hazards")
		assert.Zero(t, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
