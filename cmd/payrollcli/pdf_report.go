package main

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"tnpayroll"
)

// payslipReport builds a one-page-per-year payslip-style PDF, following the
// teacher's report-builder pattern: a wrapper struct around an *fpdf.Fpdf
// with one method per section.
type payslipReport struct {
	pdf *fpdf.Fpdf
}

func writePayslipPDF(result payroll.PayrollResult, outPath string) error {
	r := &payslipReport{pdf: fpdf.New("P", "mm", "A4", "")}
	r.addCoverPage(result)
	for _, year := range result.YearlyCalculations {
		r.addYearPage(year)
	}
	return r.pdf.OutputFileAndClose(outPath)
}

func (r *payslipReport) addCoverPage(result payroll.PayrollResult) {
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.Cell(0, 12, "Payroll Simulation Summary")
	r.pdf.Ln(16)

	r.pdf.SetFont("Arial", "", 12)
	r.pdf.Cell(0, 8, "Name: "+result.Employee.Name)
	r.pdf.Ln(7)
	r.pdf.Cell(0, 8, "Post: "+result.Employee.JoiningPost)
	r.pdf.Ln(7)
	r.pdf.Cell(0, 8, "Date of Joining: "+result.Employee.DateOfJoining)
	r.pdf.Ln(7)
	r.pdf.Cell(0, 8, "Date of Retirement: "+result.Employee.RetirementDate)
	r.pdf.Ln(12)

	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.Cell(0, 8, "Pay Commission Fixations")
	r.pdf.Ln(8)
	r.pdf.SetFont("Arial", "", 10)
	for _, fx := range []*payroll.FixationSnapshot{result.Fixation4thPC, result.Fixation5thPC, result.Fixation6thPC, result.Fixation7thPC} {
		if fx == nil {
			continue
		}
		r.pdf.Cell(0, 6, fmt.Sprintf("%d -> %d pay commission on %s: %s -> %s",
			fx.FromCommission, fx.ToCommission, fx.EffectiveDate.Format("02/01/2006"),
			payroll.FormatINR(int64(fx.InitialBasicPay)), payroll.FormatINR(int64(fx.InitialRevisedPay))))
		r.pdf.Ln(6)
	}

	r.pdf.Ln(6)
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.Cell(0, 8, "Increments Granted")
	r.pdf.Ln(8)
	r.pdf.SetFont("Arial", "", 10)
	a := result.IncrementAnalysis
	r.pdf.Cell(0, 6, fmt.Sprintf("Regular: %d   Selection Grade: %d   Special Grade: %d   Promotion: %d   Account Test: %d   Total: %d",
		a.Regular, a.SelectionGrade, a.SpecialGrade, a.Promotion, a.AccountTest, a.Total))
}

func (r *payslipReport) addYearPage(year payroll.YearlyPayroll) {
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 14)
	r.pdf.Cell(0, 10, fmt.Sprintf("Year %d", year.Year))
	r.pdf.Ln(12)

	r.pdf.SetFont("Arial", "B", 9)
	headers := []string{"Month", "Basic", "DA", "HRA", "CCA", "Gross", "Net"}
	widths := []float64{25, 25, 25, 25, 25, 30, 30}
	for i, h := range headers {
		r.pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	r.pdf.Ln(-1)

	r.pdf.SetFont("Arial", "", 9)
	for _, p := range year.Periods {
		r.pdf.CellFormat(widths[0], 6, p.Date.Format("Jan-2006"), "1", 0, "L", false, 0, "")
		r.pdf.CellFormat(widths[1], 6, payroll.FormatINR(p.BasicPay), "1", 0, "R", false, 0, "")
		r.pdf.CellFormat(widths[2], 6, payroll.FormatINR(p.DAAmount), "1", 0, "R", false, 0, "")
		r.pdf.CellFormat(widths[3], 6, payroll.FormatINR(p.HRAAmount), "1", 0, "R", false, 0, "")
		r.pdf.CellFormat(widths[4], 6, payroll.FormatINR(p.CCAAmount), "1", 0, "R", false, 0, "")
		r.pdf.CellFormat(widths[5], 6, payroll.FormatINR(p.GrossPay), "1", 0, "R", false, 0, "")
		r.pdf.CellFormat(widths[6], 6, payroll.FormatINR(p.NetPay), "1", 0, "R", false, 0, "")
		r.pdf.Ln(-1)
		if len(p.Remarks) > 0 {
			r.pdf.SetFont("Arial", "I", 8)
			r.pdf.MultiCell(0, 5, joinRemarks(p.Remarks), "", "L", false)
			r.pdf.SetFont("Arial", "", 9)
		}
	}
}

func joinRemarks(remarks []string) string {
	out := ""
	for i, r := range remarks {
		if i > 0 {
			out += "; "
		}
		out += r
	}
	return out
}
