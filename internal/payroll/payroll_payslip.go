package payroll

import (
	"bytes"
	"context"

	"github.com/jung-kurt/gofpdf"
)

// BuildPayslip renders the payslip PDF with two copies of the same figures,
// one for the employee and one for the employer file.
func (s *service) BuildPayslip(ctx context.Context, companyID, rowID string) ([]byte, error) {
	row, err := s.findRow(ctx, companyID, rowID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	writePayslipCopy(pdf, *row, "EMPLOYEE COPY")
	pdf.Ln(8)
	pdf.SetDrawColor(120, 120, 120)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(8)
	writePayslipCopy(pdf, *row, "EMPLOYER COPY")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePayslipCopy(pdf *gofpdf.Fpdf, row Row, copyLabel string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, "PAYSLIP", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(0, 5, copyLabel, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(95, 5, "Employee: "+row.EmployeeName, "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 5, "Employee No: "+row.EmployeeNumber, "", 1, "L", false, 0, "")
	pdf.CellFormat(95, 5, "Cutoff: "+row.DateFrom.Format("2006-01-02")+" to "+row.DateUntil.Format("2006-01-02"), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 5, "Salary Type: "+row.SalaryType, "", 1, "L", false, 0, "")
	pdf.Ln(3)

	payslipLine(pdf, "Basic Pay", row.BasePay.StringFixed(2), false)
	if !row.EffectiveBase.Equal(row.BasePay) {
		payslipLine(pdf, "Commission (in lieu of base)", row.EffectiveBase.StringFixed(2), false)
	}
	if row.TotalCredit.Valid {
		payslipLine(pdf, "Total Credit (days)", row.TotalCredit.Decimal.StringFixed(2), false)
	}
	payslipLine(pdf, "Incentives", row.IncentiveAmount.StringFixed(2), false)
	payslipLine(pdf, "Retro Adjustments", row.TotalRetroApplied.StringFixed(2), false)
	payslipLine(pdf, "Others (net)", row.OthersNet.StringFixed(2), false)
	payslipLine(pdf, "GROSS", row.Gross.StringFixed(2), true)
	pdf.Ln(2)

	payslipLine(pdf, "SSS", row.SSSShare.StringFixed(2), false)
	payslipLine(pdf, "PhilHealth", row.PhilHealthShare.StringFixed(2), false)
	payslipLine(pdf, "Pag-IBIG", row.PagIBIGShare.StringFixed(2), false)
	payslipLine(pdf, "Loans", row.LoanTotal.StringFixed(2), false)
	if row.SalaryType == "MONTHLY" {
		payslipLine(pdf, "Late Deduction", row.LateDeduction.StringFixed(2), false)
	}
	payslipLine(pdf, "TOTAL DEDUCTION", row.TotalDeduction.StringFixed(2), true)
	pdf.Ln(2)

	payslipLine(pdf, "NET PAY", row.Net.StringFixed(2), true)
}

func payslipLine(pdf *gofpdf.Fpdf, label, amount string, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetFont("Arial", style, 9)
	pdf.CellFormat(120, 5, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(70, 5, amount, "", 1, "R", false, 0, "")
}
