package payroll

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var registerHeaders = []string{
	"Employee No", "Employee Name", "Holidays", "Leaves", "OT",
	"Total Reg Days", "Total Credit", "Rate", "Basic Pay", "Others",
	"Gross", "SSS", "PHIC", "HDMF", "Loan", "Total Deduction", "Net",
}

// ExportRegister renders the payroll register for one cutoff. Every figure
// is copied from the stored engine output; nothing is re-derived here.
func (s *service) ExportRegister(ctx context.Context, companyID string, q ListQuery) ([]byte, error) {
	from, until, err := parseCutoff(q.DateFrom, q.DateUntil)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindByCutoff(ctx, companyID, from, until)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Payroll Register"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	title := fmt.Sprintf("Payroll Register %s - %s", q.DateFrom, q.DateUntil)
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, err
	}

	for col, header := range registerHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := registerRowValues(row)
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+3)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func registerRowValues(row Row) []any {
	totalCredit := ""
	if row.TotalCredit.Valid {
		totalCredit = row.TotalCredit.Decimal.StringFixed(2)
	}

	rate := row.DailyRate
	if row.SalaryType == "MONTHLY" {
		rate = row.MonthlyRate
	}

	return []any{
		row.EmployeeNumber,
		row.EmployeeName,
		row.HolidayCount,
		row.PaidLeaveDays.StringFixed(2),
		row.OvertimeValue.StringFixed(2),
		row.TotalDays.StringFixed(2),
		totalCredit,
		rate.StringFixed(2),
		row.BasePay.StringFixed(2),
		row.OthersNet.StringFixed(2),
		row.Gross.StringFixed(2),
		row.SSSShare.StringFixed(2),
		row.PhilHealthShare.StringFixed(2),
		row.PagIBIGShare.StringFixed(2),
		row.LoanTotal.StringFixed(2),
		row.TotalDeduction.StringFixed(2),
		row.Net.StringFixed(2),
	}
}
