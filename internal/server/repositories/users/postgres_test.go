package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/jobinow/jobinow/internal/common"
	"github.com/jobinow/jobinow/internal/server/models"
)

const userColumnsPattern = `SELECT id, email, password_hash, role, status, created_at FROM users`

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func userRows(users ...*models.User) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "role", "status", "created_at"})
	for _, u := range users {
		rows.AddRow(u.ID, u.Email, u.PasswordHash, u.Role, u.Status, u.CreatedAt)
	}
	return rows
}

func sampleUser() *models.User {
	return &models.User{
		ID:           "u-1",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$hash",
		Role:         models.RoleJobSeeker,
		Status:       models.StatusOffline,
		CreatedAt:    time.Now(),
	}
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("a@x.com", "$2a$10$hash", models.RoleJobSeeker, models.StatusOffline).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("u-1", now))

	user := &models.User{Email: "a@x.com", PasswordHash: "$2a$10$hash", Role: models.RoleJobSeeker, Status: models.StatusOffline}
	created, err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	require.Equal(t, "u-1", created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`))

	_, err := repo.Create(context.Background(), &models.User{Email: "a@x.com"})
	require.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestFindByEmail(t *testing.T) {
	repo, mock := newMockRepo(t)
	u := sampleUser()

	mock.ExpectQuery(userColumnsPattern + `\s+WHERE email = \$1`).
		WithArgs("a@x.com").
		WillReturnRows(userRows(u))

	found, err := repo.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, found.ID)
	require.Equal(t, u.PasswordHash, found.PasswordHash)
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(userColumnsPattern).
		WithArgs("ghost@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "ghost@x.com")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdatePassword(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE users SET password_hash = \$1`).
		WithArgs("$2a$10$new", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdatePassword(context.Background(), "u-1", "$2a$10$new"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePassword_MissingUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE users SET password_hash = \$1`).
		WithArgs("$2a$10$new", "u-9").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePassword(context.Background(), "u-9", "$2a$10$new")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE users SET status = \$1`).
		WithArgs(models.StatusOnline, "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), "u-1", models.StatusOnline))
}

func TestFindAllByRole(t *testing.T) {
	repo, mock := newMockRepo(t)
	u := sampleUser()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users WHERE role = \$1`).
		WithArgs(models.RoleJobSeeker).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(userColumnsPattern+` WHERE role = \$1`).
		WithArgs(models.RoleJobSeeker, 20, 0).
		WillReturnRows(userRows(u))

	page, err := repo.FindAllByRole(context.Background(), models.RoleJobSeeker, models.PageRequest{})
	require.NoError(t, err)
	require.EqualValues(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	require.Equal(t, u.Email, page.Items[0].Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAllByStatus(t *testing.T) {
	repo, mock := newMockRepo(t)
	u := sampleUser()
	u.Status = models.StatusOnline

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users WHERE status = \$1`).
		WithArgs(models.StatusOnline).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(userColumnsPattern+` WHERE status = \$1`).
		WithArgs(models.StatusOnline, 20, 0).
		WillReturnRows(userRows(u))

	page, err := repo.FindAllByStatus(context.Background(), models.StatusOnline, models.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, models.StatusOnline, page.Items[0].Status)
}
