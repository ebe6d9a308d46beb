package engine

import "github.com/shopspring/decimal"

// TotalCredit computes payable days for a cutoff. Overtime keeps the units
// it arrived in; holiday credit is zeroed for Project-Based employees
// regardless of the actual count.
func TotalCredit(in Input) decimal.Decimal {
	holidayCount := in.HolidayCount
	if in.EmployeeType == TypeProjectBased {
		holidayCount = 0
	}

	credit := in.TotalDays.
		Add(in.Overtime.Value).
		Add(decimal.NewFromInt(int64(holidayCount))).
		Add(in.PaidLeaveDays)
	return credit.Round(2)
}
