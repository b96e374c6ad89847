package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockRepo(t *testing.T) (BugRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return NewBugRepository(db), mock
}

func TestGormBugRepository_FindByStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "title", "status"}).
		AddRow(1, "Crash on save", "Open").
		AddRow(2, "Typo in footer", "Open")

	mock.ExpectQuery("SELECT \\* FROM `bugs` WHERE status = \\?").
		WithArgs("Open").
		WillReturnRows(rows)

	bugs, err := repo.FindByStatus("Open")
	require.NoError(t, err)
	require.Len(t, bugs, 2)
	require.Equal(t, "Crash on save", bugs[0].Title)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBugRepository_FindPage_DefaultsToCreatedDateDesc(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `bugs`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	mock.ExpectQuery("SELECT \\* FROM `bugs` ORDER BY created_date DESC LIMIT").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(12, "Latest bug"))

	bugs, total, err := repo.FindPage(PageQuery{Page: 0, Size: 10, SortBy: "nonsense", Direction: "sideways"})
	require.NoError(t, err)
	require.EqualValues(t, 12, total)
	require.Len(t, bugs, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBugRepository_FindPage_AscendingIsCaseInsensitive(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `bugs`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	mock.ExpectQuery("SELECT \\* FROM `bugs` ORDER BY title ASC LIMIT").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
			AddRow(1, "A bug").
			AddRow(2, "B bug"))

	bugs, total, err := repo.FindPage(PageQuery{Page: 0, Size: 5, SortBy: "title", Direction: "ASC"})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, bugs, 2)

	require.NoError(t, mock.ExpectationsWereMet())
}
