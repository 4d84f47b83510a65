package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"tnpayroll"
)

// printTable renders the year-by-year pay history to stdout, in the
// teacher's console-table style: a tabwriter-aligned grid with a header
// banner and a trailing summary line.
func printTable(result payroll.PayrollResult) {
	fmt.Printf("Payroll simulation for %s\n", result.Employee.Name)
	fmt.Printf("Joined: %s   Retires: %s\n\n", result.Employee.DateOfJoining, result.Employee.RetirementDate)

	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tCOMM\tBASIC\tDA\tHRA\tCCA\tGROSS\tNET\tREMARKS")

	for _, year := range result.YearlyCalculations {
		for _, p := range year.Periods {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				p.Date.Format("Jan-2006"), p.Commission,
				payroll.FormatINR(p.BasicPay), payroll.FormatINR(p.DAAmount),
				payroll.FormatINR(p.HRAAmount), payroll.FormatINR(p.CCAAmount),
				payroll.FormatINR(p.GrossPay), payroll.FormatINR(p.NetPay),
				strings.Join(p.Remarks, "; "))
		}
	}
	w.Flush()

	fmt.Printf("\nIncrements granted: %d regular, %d selection grade, %d special grade, %d promotion, %d account test (total %d)\n",
		result.IncrementAnalysis.Regular, result.IncrementAnalysis.SelectionGrade,
		result.IncrementAnalysis.SpecialGrade, result.IncrementAnalysis.Promotion,
		result.IncrementAnalysis.AccountTest, result.IncrementAnalysis.Total)

	for _, fx := range []*payroll.FixationSnapshot{result.Fixation4thPC, result.Fixation5thPC, result.Fixation6thPC, result.Fixation7thPC} {
		if fx == nil {
			continue
		}
		fmt.Printf("Pay Commission fixation %d -> %d on %s: %s -> %s (%s)\n",
			fx.FromCommission, fx.ToCommission, fx.EffectiveDate.Format("02/01/2006"),
			payroll.FormatINR(int64(fx.InitialBasicPay)), payroll.FormatINR(int64(fx.InitialRevisedPay)), fx.Citation)
	}
}
