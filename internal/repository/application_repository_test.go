package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/aryankuttarmare14/job-board-app/internal/models"
)

func openMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

// The insert and the counter increment must commit together.
func TestApplicationRepository_CreateWithCounter(t *testing.T) {
	db, mock := openMockDB(t)
	repo := NewApplicationRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "applications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`UPDATE "jobs" SET "applications"=applications \+ \$1 WHERE id = \$2`).
		WithArgs(1, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateWithCounter(&models.Application{
		JobID:       3,
		ApplicantID: 7,
		CoverLetter: "Hello",
		ResumeURL:   "/uploads/resume.pdf",
		Status:      models.ApplicationStatusPending,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_CreateWithCounter_RollsBackOnInsertFailure(t *testing.T) {
	db, mock := openMockDB(t)
	repo := NewApplicationRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "applications"`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	err := repo.CreateWithCounter(&models.Application{
		JobID:       3,
		ApplicantID: 7,
		CoverLetter: "Hello",
		ResumeURL:   "/uploads/resume.pdf",
		Status:      models.ApplicationStatusPending,
	})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

// The delete and the counter decrement must commit together.
func TestApplicationRepository_DeleteWithCounter(t *testing.T) {
	db, mock := openMockDB(t)
	repo := NewApplicationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "applications" WHERE "applications"."id" = \$1`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "jobs" SET "applications"=applications - \$1 WHERE id = \$2`).
		WithArgs(1, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteWithCounter(&models.Application{
		ID:    5,
		JobID: 3,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
