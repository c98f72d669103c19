package repository

import (
	"context"
	"testing"

	"jobportal/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockedRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		// Single-statement writes without the wrapping transaction keep
		// the mock expectations readable.
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewUserRepository(db), mock
}

func TestGetByEmailScopesOutSoftDeleted(t *testing.T) {
	repo, mock := newMockedRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 AND "users"\."deleted_at" IS NULL`).
		WithArgs("a@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password"}).
			AddRow(id, "Nguyễn Văn A", "a@example.com", "$2a$10$hash"))

	user, err := repo.GetByEmail(context.Background(), "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "a@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmailNotFound(t *testing.T) {
	repo, mock := newMockedRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("ghost@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByRefreshTokenMatchesExactly(t *testing.T) {
	repo, mock := newMockedRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE refresh_token = \$1`).
		WithArgs("stored.jwt.value", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "refresh_token"}).
			AddRow(id, "a@example.com", "stored.jwt.value"))

	user, err := repo.GetByRefreshToken(context.Background(), "stored.jwt.value")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByRefreshTokenSupersededTokenMatchesNothing(t *testing.T) {
	repo, mock := newMockedRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE refresh_token = \$1`).
		WithArgs("rotated.away.jwt", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByRefreshToken(context.Background(), "rotated.away.jwt")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRefreshTokenOverwrites(t *testing.T) {
	repo, mock := newMockedRepo(t)
	id := uuid.New()
	fresh := "fresh.jwt.value"

	mock.ExpectExec(`UPDATE "users" SET "refresh_token"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs(fresh, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateRefreshToken(context.Background(), id, &fresh)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteStampsActorThenDeletes(t *testing.T) {
	repo, mock := newMockedRepo(t)
	id := uuid.New()
	actorID := uuid.New()

	mock.ExpectExec(`UPDATE "users" SET .*"deleted_by_email".* WHERE id = \$`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "users" SET "deleted_at"=\$1 WHERE id = \$2 AND "users"\."deleted_at" IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SoftDelete(context.Background(), id, model.StampOf(actorID, "admin@example.com"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
