package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/census-rm/caseapi/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB creates a gorm DB backed by a mocked SQL connection
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormCaseRepositoryDriverErrors(t *testing.T) {
	t.Run("FindByID surfaces driver failures unchanged", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		driverErr := errors.New("connection reset by peer")
		mock.ExpectQuery(`SELECT \* FROM "cases"`).WillReturnError(driverErr)

		found, err := NewGormCaseRepository(db).FindByID(context.Background(), uuid.New())

		assert.Nil(t, found)
		assert.ErrorIs(t, err, driverErr)
		assert.NotErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("FindByUPRN surfaces driver failures unchanged", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		driverErr := errors.New("connection reset by peer")
		mock.ExpectQuery(`SELECT \* FROM "cases"`).WillReturnError(driverErr)

		found, err := NewGormCaseRepository(db).FindByUPRN(context.Background(), "100040239948")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, driverErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormUacQidLinkRepositoryDriverErrors(t *testing.T) {
	t.Run("FindByQID surfaces driver failures unchanged", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		driverErr := errors.New("connection reset by peer")
		mock.ExpectQuery(`SELECT \* FROM "uac_qid_links"`).WillReturnError(driverErr)

		found, err := newLinkRepo(t, db).FindByQID(context.Background(), "0120000000000100")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, driverErr)
		assert.NotErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
