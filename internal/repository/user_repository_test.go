package repository_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recordstore/internal/models"
	"recordstore/internal/repository"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestGormUserRepository_Create(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	users := repository.NewUserRepository(gormDB)

	user := &models.User{
		Username: "bob",
		Email:    "bob@example.com",
		PhnNo:    "+1-202-555-0143",
		Password: "digest",
		IsActive: true,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := users.Create(user)

	require.NoError(t, err)
	require.Equal(t, uint64(1), user.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_Create_DuplicateKeyTranslated(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	users := repository.NewUserRepository(db)

	err = users.Create(&models.User{
		Username: "bob",
		Email:    "bob@example.com",
		PhnNo:    "12345",
		Password: "digest",
		IsActive: true,
	})
	require.NoError(t, err)

	// A second insert hitting the unique username index must surface as
	// gorm.ErrDuplicatedKey so the service can map it to a conflict.
	err = users.Create(&models.User{
		Username: "bob",
		Email:    "other@example.com",
		PhnNo:    "12345",
		Password: "digest",
		IsActive: true,
	})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestGormUserRepository_FindByUsername(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	users := repository.NewUserRepository(gormDB)

	now := time.Now()
	mock.ExpectQuery(`SELECT .* FROM "users" WHERE username = .*`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "phn_no", "password", "is_active", "created_at", "updated_at"}).
			AddRow(1, "bob", "bob@example.com", "+1-202-555-0143", "digest", true, now, now))

	user, err := users.FindByUsername("bob")

	require.NoError(t, err)
	require.Equal(t, uint64(1), user.ID)
	require.Equal(t, "bob@example.com", user.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_FindByUsername_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	users := repository.NewUserRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE username = .*`).
		WillReturnError(gorm.ErrRecordNotFound)

	user, err := users.FindByUsername("missing")

	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.Nil(t, user)
	require.NoError(t, mock.ExpectationsWereMet())
}
