package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestPackageRepository_ListAll(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewPackageRepository(gormDB)

	first, second := uuid.New(), uuid.New()
	rows := sqlmock.NewRows([]string{"id", "name", "price", "category"}).
		AddRow(first, "Full Day Wedding", int64(150000), "photo").
		AddRow(second, "Highlight Film", int64(90000), "video")

	mock.ExpectQuery(`SELECT \* FROM "service_packages"`).WillReturnRows(rows)

	packages, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, packages, 2)

	assert.Equal(t, first, packages[0].ID)
	assert.Equal(t, int64(150000), packages[0].Price)
	assert.Equal(t, second, packages[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPackageRepository_GetByID_NotFound(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewPackageRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "service_packages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	pkg, err := repo.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, pkg)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddonRepository_ListAll(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewAddonRepository(gormDB)

	id := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "description", "price", "quantity", "is_taxable"}).
		AddRow(id, "Extra Album", int64(20000), 2, true)

	mock.ExpectQuery(`SELECT \* FROM "addons"`).WillReturnRows(rows)

	addons, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, addons, 1)

	assert.Equal(t, id, addons[0].ID)
	assert.Equal(t, int64(40000), addons[0].Amount())
	assert.NoError(t, mock.ExpectationsWereMet())
}
