package models

const (
	// IncomeUnit is the unit of every amount in the dataset (10,000 KRW).
	IncomeUnit = "만원"

	MetricMean   = "mean"
	MetricMedian = "median"
)
