package subscription

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

func TestUnitRepoGetActiveByConnectionID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepo(db)

	connID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "subscriptions_details" WHERE connection_id = .+ AND expired_at IS NULL`).
		WithArgs(connID, 1).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "created_at", "updated_at", "connection_id", "type", "price"}).
				AddRow(uuid.New(), now, now, connID, TypePaid, "9.99"),
		)

	detail, err := repo.GetActiveByConnectionID(connID)
	require.NoError(t, err)
	require.Equal(t, connID, detail.ConnectionID)
	require.Equal(t, TypePaid, detail.Type)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitRepoHasTrialClaim(t *testing.T) {
	viewerID := uuid.New()
	creatorID := uuid.New()
	planID := uuid.New()

	for name, tc := range map[string]struct {
		count    int64
		expected bool
	}{
		"claimed":   {count: 1, expected: true},
		"unclaimed": {count: 0, expected: false},
	} {
		t.Run(name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewRepo(db)

			mock.ExpectQuery(`SELECT count\(\*\) FROM "subscriptions_details" JOIN connections ON connections\.id = subscriptions_details\.connection_id JOIN lists ON lists\.id = connections\.list_id`).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tc.count))

			claimed, err := repo.HasTrialClaim(viewerID, creatorID, planID)
			require.NoError(t, err)
			require.Equal(t, tc.expected, claimed)
		})
	}
}
