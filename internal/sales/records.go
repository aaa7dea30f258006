// Package sales holds the daily sales series the chart is drawn from.
package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one reporting day.
type Record struct {
	Date              time.Time
	SalesTotal        decimal.Decimal
	TransactionsTotal int
}

// TopSales returns the largest SalesTotal, or zero for an empty series.
func TopSales(records []Record) decimal.Decimal {
	top := decimal.Zero
	for _, r := range records {
		if r.SalesTotal.GreaterThan(top) {
			top = r.SalesTotal
		}
	}
	return top
}

// Summary aggregates a series for logging.
type Summary struct {
	Days         int
	First, Last  time.Time
	Sales        decimal.Decimal
	Transactions int
	Top          decimal.Decimal
}

// Summarize totals records. The zero Summary describes an empty series.
func Summarize(records []Record) Summary {
	s := Summary{Days: len(records), Sales: decimal.Zero, Top: TopSales(records)}
	if len(records) == 0 {
		return s
	}
	s.First = records[0].Date
	s.Last = records[len(records)-1].Date
	for _, r := range records {
		s.Sales = s.Sales.Add(r.SalesTotal)
		s.Transactions += r.TransactionsTotal
	}
	return s
}
