package repositories

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CategoryRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    CategoryRepository
	context context.Context
}

func (suite *CategoryRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewCategoryRepo(mock)
	suite.context = context.Background()
}

func (suite *CategoryRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestCategoryRepoTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryRepoTestSuite))
}

func (suite *CategoryRepoTestSuite) TestList_Success() {
	rows := pgxmock.NewRows([]string{"id", "name"}).
		AddRow(int64(1), "Sparklers").
		AddRow(int64(2), "Rockets")

	suite.mock.ExpectQuery(`
		SELECT id, name
		FROM categories
		ORDER BY id
	`).WillReturnRows(rows)

	result, err := suite.repo.List(suite.context)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 2)
	assert.Equal(suite.T(), int64(1), result[0].ID)
	assert.Equal(suite.T(), "Sparklers", result[0].Name)
	assert.Equal(suite.T(), "Rockets", result[1].Name)
}

func (suite *CategoryRepoTestSuite) TestList_Empty() {
	rows := pgxmock.NewRows([]string{"id", "name"})

	suite.mock.ExpectQuery(`
		SELECT id, name
		FROM categories
		ORDER BY id
	`).WillReturnRows(rows)

	result, err := suite.repo.List(suite.context)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), result)
}

func (suite *CategoryRepoTestSuite) TestList_DatabaseError() {
	suite.mock.ExpectQuery(`
		SELECT id, name
		FROM categories
		ORDER BY id
	`).WillReturnError(errors.New("database connection failed"))

	result, err := suite.repo.List(suite.context)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), result)
	assert.Contains(suite.T(), err.Error(), "database connection failed")
}
