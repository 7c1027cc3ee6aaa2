package promotion

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestUnitRepoGetByFilters(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepo(db)

	creatorID := uuid.New()
	promoID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "promotions" WHERE user_id = .+ AND "group" = .+ AND \(finish_at IS NULL OR finish_at > .+\) AND link = .+ LIMIT`).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "created_at", "updated_at", "user_id", "group", "type", "link"}).
				AddRow(promoID, now, now, creatorID, GroupNew, TypeDiscount, false),
		)

	promos, err := repo.GetByFilters([]Filter{
		CreatorFilter{ID: creatorID},
		GroupFilter{Group: GroupNew},
		NotFinishedFilter{Now: now},
		ListedFilter{},
		PageFilter{Offset: 0, Limit: 10},
	})
	require.NoError(t, err)
	require.Len(t, promos, 1)
	require.Equal(t, promoID, promos[0].ID)
	require.Equal(t, GroupNew, promos[0].Group)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitRepoGetByIDNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "promotions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(uuid.New())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
