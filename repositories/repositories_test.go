package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"room-server/confs"
	"room-server/db"
	"room-server/entities"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDatabase(t *testing.T) db.Database {
	t.Helper()
	database, err := db.Connect(confs.Database{Driver: "sqlite", SQLitePath: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func newMockDatabase(t *testing.T) (db.Database, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return &db.GormDatabase{DB: gdb}, mock
}

func sampleUser(internalID string) *entities.User {
	return &entities.User{
		InternalID:   internalID,
		Username:     "testuser",
		DisplayName:  "Test San",
		DateOfBirth:  entities.NewDate(2020, time.January, 1),
		Gender:       entities.GenderFemale,
		PasswordHash: "hash",
	}
}

func TestUserRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewUserPgRepository(newTestDatabase(t))

	user := sampleUser("internalid.auth0")
	require.NoError(t, repo.Create(ctx, user))
	require.NotEmpty(t, user.ID)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "internalid.auth0", got.InternalID)
	assert.Equal(t, "2020-01-01", got.DateOfBirth.String())
	assert.Equal(t, entities.GenderFemale, got.Gender)

	got.DisplayName = "Renamed"
	require.NoError(t, repo.Update(ctx, got))

	again, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", again.DisplayName)
	assert.Equal(t, "testuser", again.Username)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, user.ID))
	_, err = repo.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, user.ID), ErrNotFound)
}

func TestUserRepositoryGetAllEmpty(t *testing.T) {
	all, err := NewUserPgRepository(newTestDatabase(t)).GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestUserRepositoryExistsByInternalID(t *testing.T) {
	ctx := context.Background()
	repo := NewUserPgRepository(newTestDatabase(t))

	user := sampleUser("sub|123")
	require.NoError(t, repo.Create(ctx, user))

	exists, err := repo.ExistsByInternalID(ctx, "sub|123", "")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByInternalID(ctx, "sub|123", user.ID)
	require.NoError(t, err)
	assert.False(t, exists, "the user itself must not count")

	exists, err = repo.ExistsByInternalID(ctx, "sub|456", "")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepositoryUniqueInternalID(t *testing.T) {
	ctx := context.Background()
	repo := NewUserPgRepository(newTestDatabase(t))

	require.NoError(t, repo.Create(ctx, sampleUser("dup")))
	assert.Error(t, repo.Create(ctx, sampleUser("dup")))
}

func TestRoomRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewRoomPgRepository(newTestDatabase(t))

	room := &entities.Room{Name: "Lobby", Capacity: 10}
	require.NoError(t, repo.Create(ctx, room))
	require.NotEmpty(t, room.ID)

	got, err := repo.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lobby", got.Name)
	assert.Equal(t, "", got.Description)

	got.Description = "ground floor"
	require.NoError(t, repo.Update(ctx, got))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "ground floor", all[0].Description)

	require.NoError(t, repo.Delete(ctx, room.ID))
	_, err = repo.GetByID(ctx, room.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoomRepositoryMissing(t *testing.T) {
	repo := NewRoomPgRepository(newTestDatabase(t))

	_, err := repo.GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(context.Background(), "00000000-0000-0000-0000-000000000000"), ErrNotFound)
}

func TestUserRepositoryStorageFailure(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewUserPgRepository(database)
	boom := errors.New("connection reset by peer")

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).WillReturnError(boom)

	_, err := repo.GetByID(context.Background(), "abc")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepositoryDeleteFailure(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewRoomPgRepository(database)
	boom := errors.New("deadlock detected")

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "rooms" WHERE id = \$1`).WillReturnError(boom)
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), "abc")
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepositoryDeleteNoRows(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewRoomPgRepository(database)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "rooms" WHERE id = \$1`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.ErrorIs(t, repo.Delete(context.Background(), "abc"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
