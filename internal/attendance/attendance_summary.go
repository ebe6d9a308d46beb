package attendance

import "github.com/shopspring/decimal"

var minutesPerHour = decimal.NewFromInt(60)

// Summarize folds a range of daily records into the cutoff aggregate.
// Rest days contribute nothing. Pure so payroll tests can drive it directly.
func Summarize(records []Record) Summary {
	var s Summary
	for _, r := range records {
		if r.IsRestDay {
			continue
		}
		s.TotalDays = s.TotalDays.Add(r.DaysCredited)
		s.OvertimeHours = s.OvertimeHours.Add(r.OvertimeHours)
		s.TotalRenderedHours = s.TotalRenderedHours.Add(r.TotalRenderedHours)
		if r.TotalRenderedHours.GreaterThan(s.MaxDailyHours) {
			s.MaxDailyHours = r.TotalRenderedHours
		}
		s.LateHours = s.LateHours.Add(
			decimal.NewFromInt(int64(r.LateMinutes)).Div(minutesPerHour),
		)
		if r.IsAbsence() {
			s.Absences++
		}
	}

	s.TotalDays = s.TotalDays.Round(2)
	s.OvertimeHours = s.OvertimeHours.Round(2)
	s.TotalRenderedHours = s.TotalRenderedHours.Round(2)
	s.MaxDailyHours = s.MaxDailyHours.Round(2)
	s.LateHours = s.LateHours.Round(2)
	return s
}
