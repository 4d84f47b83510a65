package main

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"tnpayroll"
)

// writeLedgerXLSX exports the full monthly ledger as a workbook, one sheet
// per year, following the teacher pack's header-row-plus-style convention
// for generated spreadsheets.
func writeLedgerXLSX(result payroll.PayrollResult, outPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	headers := []string{"Month", "Commission", "Level", "Grade Pay", "PIPB", "Basic", "DA", "HRA", "CCA", "Medical", "Gross", "PF", "Prof. Tax", "GIS", "Net", "Remarks"}

	firstSheet := "Summary"
	f.SetSheetName("Sheet1", firstSheet)
	writeSummarySheet(f, firstSheet, result, headerStyle)

	for _, year := range result.YearlyCalculations {
		sheet := fmt.Sprintf("%d", year.Year)
		f.NewSheet(sheet)

		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}
		f.SetRowStyle(sheet, 1, 1, headerStyle)

		for row, p := range year.Periods {
			r := row + 2
			values := []interface{}{
				p.Date.Format("Jan-2006"), p.Commission, p.Level, p.GradePay, p.PIPB,
				p.BasicPay, p.DAAmount, p.HRAAmount, p.CCAAmount, p.Medical, p.GrossPay,
				p.Deductions.ProvidentFund, p.Deductions.ProfessionTax, p.Deductions.GIS,
				p.NetPay, joinRemarks(p.Remarks),
			}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, r)
				f.SetCellValue(sheet, cell, v)
			}
		}
	}

	return f.SaveAs(outPath)
}

func writeSummarySheet(f *excelize.File, sheet string, result payroll.PayrollResult, headerStyle int) {
	f.SetCellValue(sheet, "A1", "Employee")
	f.SetCellValue(sheet, "B1", result.Employee.Name)
	f.SetCellValue(sheet, "A2", "Post")
	f.SetCellValue(sheet, "B2", result.Employee.JoiningPost)
	f.SetCellValue(sheet, "A3", "Date of Joining")
	f.SetCellValue(sheet, "B3", result.Employee.DateOfJoining)
	f.SetCellValue(sheet, "A4", "Date of Retirement")
	f.SetCellValue(sheet, "B4", result.Employee.RetirementDate)
	f.SetRowStyle(sheet, 1, 4, headerStyle)

	row := 6
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Fixation")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Date")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "Before")
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), "After")
	row++
	for _, fx := range []*payroll.FixationSnapshot{result.Fixation4thPC, result.Fixation5thPC, result.Fixation6thPC, result.Fixation7thPC} {
		if fx == nil {
			continue
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%d -> %d Pay Commission", fx.FromCommission, fx.ToCommission))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), fx.EffectiveDate.Format("02/01/2006"))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), fx.InitialBasicPay)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), fx.InitialRevisedPay)
		row++
	}
}
