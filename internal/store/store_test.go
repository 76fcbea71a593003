package store

import (
	"testing"
	"time"

	"spendwise/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// StoreTestSuite exercises persistence against an in-memory database.
type StoreTestSuite struct {
	suite.Suite
	store *Store
}

func (s *StoreTestSuite) SetupTest() {
	st, err := Open(":memory:")
	require.NoError(s.T(), err, "failed to open test database")
	s.store = st
}

func (s *StoreTestSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
}

func (s *StoreTestSuite) TestGetBudgetEmpty() {
	b, err := s.store.GetBudget()
	assert.NoError(s.T(), err)
	assert.Nil(s.T(), b, "budget should be nil before first save")
}

func (s *StoreTestSuite) TestPutBudgetReplacesSingleton() {
	first := model.Budget{MonthlyIncome: 40000, Period: model.Monthly, MonthlyBudget: 15000}
	require.NoError(s.T(), s.store.PutBudget(first))

	second := model.Budget{MonthlyIncome: 45000, Period: model.Weekly, WeeklyBudget: 4000}
	require.NoError(s.T(), s.store.PutBudget(second))

	got, err := s.store.GetBudget()
	require.NoError(s.T(), err)
	require.NotNil(s.T(), got)
	assert.Equal(s.T(), second, *got, "second save should fully replace the first")
}

func (s *StoreTestSuite) TestAppendExpenseRoundTrip() {
	day := time.Date(2025, 6, 14, 13, 45, 0, 0, time.UTC) // time component must be dropped

	saved, err := s.store.AppendExpense(model.Expense{
		Amount:      249.50,
		Date:        day,
		Description: "groceries",
	})
	require.NoError(s.T(), err)
	assert.Positive(s.T(), saved.ID)
	assert.Equal(s.T(), model.DefaultCategory, saved.Category)

	list, err := s.store.ListExpenses()
	require.NoError(s.T(), err)
	require.Len(s.T(), list, 1)
	assert.Equal(s.T(), 249.50, list[0].Amount)
	assert.Equal(s.T(), "groceries", list[0].Description)
	assert.Equal(s.T(), time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), list[0].Date,
		"date should round-trip at day granularity")
}

func (s *StoreTestSuite) TestExpenseIDsMonotonic() {
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	a, err := s.store.AppendExpense(model.Expense{Amount: 1, Date: day})
	require.NoError(s.T(), err)
	b, err := s.store.AppendExpense(model.Expense{Amount: 2, Date: day})
	require.NoError(s.T(), err)
	assert.Greater(s.T(), b.ID, a.ID)
}

func (s *StoreTestSuite) TestListExpensesOrderedByDateDesc() {
	days := []string{"2025-03-01", "2025-03-15", "2025-03-08"}
	for i, d := range days {
		day, err := time.Parse("2006-01-02", d)
		require.NoError(s.T(), err)
		_, err = s.store.AppendExpense(model.Expense{Amount: float64(i + 1), Date: day})
		require.NoError(s.T(), err)
	}

	list, err := s.store.ListExpenses()
	require.NoError(s.T(), err)
	require.Len(s.T(), list, 3)
	assert.Equal(s.T(), "2025-03-15", list[0].Date.Format("2006-01-02"))
	assert.Equal(s.T(), "2025-03-08", list[1].Date.Format("2006-01-02"))
	assert.Equal(s.T(), "2025-03-01", list[2].Date.Format("2006-01-02"))
}

func (s *StoreTestSuite) TestClearExpenses() {
	day := time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)
	_, err := s.store.AppendExpense(model.Expense{Amount: 10, Date: day})
	require.NoError(s.T(), err)
	_, err = s.store.AppendExpense(model.Expense{Amount: 20, Date: day})
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.store.ClearExpenses())

	list, err := s.store.ListExpenses()
	require.NoError(s.T(), err)
	assert.Empty(s.T(), list)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
