package income

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	table := loadSample(t)
	assert.Equal(t, []string{"1인가구", "2인가구", "전체가구"}, table.Categories())
}

func TestSelectCategory(t *testing.T) {
	table := loadSample(t)

	t.Run("single person households", func(t *testing.T) {
		view := SelectCategory(table, "1인가구")

		require.Equal(t, 3, view.Len())
		assert.False(t, view.Empty())
		assert.Equal(t, "1인가구", view.HouseholdType)

		wage := view.Records[1]
		assert.Equal(t, "근로소득", wage.IncomeSource)
		require.NotNil(t, wage.MeanIncome)
		assert.Equal(t, 250.0, *wage.MeanIncome)
		assert.Nil(t, wage.MedianIncome)

		assert.Equal(t, []SeriesPoint{
			{IncomeSource: "가구소득", Value: 3423},
			{IncomeSource: "근로소득", Value: 250},
		}, view.MeanSeries())
		assert.Equal(t, []SeriesPoint{
			{IncomeSource: "가구소득", Value: 2600},
		}, view.MedianSeries())
	})

	t.Run("unknown household type", func(t *testing.T) {
		view := SelectCategory(table, "존재하지않는유형")

		assert.True(t, view.Empty())
		assert.Equal(t, 0, view.Len())
		assert.Empty(t, view.MeanSeries())
		assert.Empty(t, view.MedianSeries())
		assert.NotNil(t, view.MeanSeries())
		assert.Equal(t, 0, view.Frame().Nrow())
		assert.Equal(t, table.Headers, view.Frame().Names())
		assert.Empty(t, view.Rows())
	})

	t.Run("equality is exact", func(t *testing.T) {
		assert.True(t, SelectCategory(table, "1인").Empty())
		assert.True(t, SelectCategory(table, " 1인가구").Empty())
		assert.True(t, SelectCategory(table, "").Empty())
	})

	t.Run("nil table", func(t *testing.T) {
		view := SelectCategory(nil, "1인가구")
		assert.True(t, view.Empty())
		assert.Empty(t, view.Rows())
	})

	t.Run("every category view is consistent with the table", func(t *testing.T) {
		for _, category := range table.Categories() {
			view := SelectCategory(table, category)

			expected := 0
			for _, rec := range table.Records {
				if rec.HouseholdType == category {
					expected++
				}
			}
			assert.Equal(t, expected, view.Len(), category)
			assert.Equal(t, expected, view.Frame().Nrow(), category)

			for _, rec := range view.Records {
				assert.Equal(t, category, rec.HouseholdType)
			}
			for _, p := range view.MeanSeries() {
				assert.NotEqual(t, "이전소득", p.IncomeSource, "rows without a mean are skipped")
			}
		}
	})

	t.Run("rows render missing amounts as blanks", func(t *testing.T) {
		view := SelectCategory(table, "1인가구")
		assert.Equal(t, [][]string{
			{"1인가구", "가구소득", "3423", "2600"},
			{"1인가구", "근로소득", "250", ""},
			{"1인가구", "이전소득", "", ""},
		}, view.Rows())
	})
}

func TestSelectCategoryKeepsDuplicates(t *testing.T) {
	path := writeCP949(t, "가구특성별,원천별,2024,2024\n1인가구,근로소득,250,-\n가구특성별,원천별,2024,2024\n1인가구,근로소득,260,200\n")
	table, err := Load(path, "cp949", DefaultSchema())
	require.NoError(t, err)

	view := SelectCategory(table, "1인가구")
	require.Equal(t, 2, view.Len())
	assert.Equal(t, []SeriesPoint{
		{IncomeSource: "근로소득", Value: 250},
		{IncomeSource: "근로소득", Value: 260},
	}, view.MeanSeries())
	assert.Equal(t, []SeriesPoint{{IncomeSource: "근로소득", Value: 200}}, view.MedianSeries())
}

func TestSelectCategoryScenario(t *testing.T) {
	path := writeCP949(t, "가구특성별,원천별,2024,2024.1\n1인가구,근로소득,250,-\n")
	table, err := Load(path, "cp949", DefaultSchema())
	require.NoError(t, err)

	view := SelectCategory(table, "1인가구")
	require.Len(t, view.Records, 1)
	assert.Equal(t, []SeriesPoint{{IncomeSource: "근로소득", Value: 250}}, view.MeanSeries())
	assert.Empty(t, view.MedianSeries())
}
