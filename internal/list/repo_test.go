package list

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

func TestUnitRepoGetActiveConnection(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepo(db)

	listID := uuid.New()
	memberID := uuid.New()
	connID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "connections" WHERE list_id = .+ AND member_id = .+ AND expired_at IS NULL`).
		WithArgs(listID, memberID, 1).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "created_at", "updated_at", "list_id", "member_id", "expired_at"}).
				AddRow(connID, now, now, listID, memberID, nil),
		)

	conn, err := repo.GetActiveConnection(listID, memberID)
	require.NoError(t, err)
	require.Equal(t, connID, conn.ID)
	require.Nil(t, conn.ExpiredAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitRepoGetActiveConnectionNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "connections"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "list_id", "member_id", "expired_at"}))

	_, err := repo.GetActiveConnection(uuid.New(), uuid.New())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUnitRepoGetActiveMemberIDs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepo(db)

	listID := uuid.New()
	first := uuid.New()
	second := uuid.New()

	mock.ExpectQuery(`SELECT "member_id" FROM "connections" WHERE list_id = .+ AND expired_at IS NULL`).
		WithArgs(listID).
		WillReturnRows(
			sqlmock.NewRows([]string{"member_id"}).
				AddRow(first).
				AddRow(second),
		)

	ids, err := repo.GetActiveMemberIDs(listID)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{first, second}, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitRepoGetOwnersOfListsContaining(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepo(db)

	memberID := uuid.New()
	owner := uuid.New()

	mock.ExpectQuery(`SELECT "lists"\."user_id" FROM "lists" JOIN connections ON connections\.list_id = lists\.id`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(owner))

	ids, err := repo.GetOwnersOfListsContaining(memberID, []Type{TypeBlocked})
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{owner}, ids)
}
