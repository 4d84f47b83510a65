// Command payrollcli is a boundary-collaborator demo around the payroll
// engine: it is not part of the engine's own test surface (spec.md §6 is
// explicit that the engine has no CLI surface of its own), but a Form/
// Presenter pairing built the way the teacher's command-line tool is
// built — flag-driven, YAML input, one of several output renderers.
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tnpayroll"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Tamil Nadu Payroll Simulation

Runs the payroll engine against a YAML-described career record and prints
(or exports) the resulting month-by-month pay history.

Usage:
  %s -input employee.yaml [options]

Options:
`, os.Args[0])
		flag.PrintDefaults()
	}

	inputPath := flag.String("input", "", "path to a YAML EmployeeInput document (required)")
	format := flag.String("format", "table", "output format: table, pdf, xlsx")
	outPath := flag.String("out", "", "output file path (required for pdf/xlsx)")
	flag.Parse()

	if *inputPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	input, err := loadInput(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading input: %v\n", err)
		os.Exit(1)
	}

	result, err := payroll.Simulate(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation failed: %v\n", err)
		os.Exit(1)
	}

	switch *format {
	case "table":
		printTable(result)
	case "pdf":
		if *outPath == "" {
			fmt.Fprintln(os.Stderr, "-out is required for -format pdf")
			os.Exit(2)
		}
		if err := writePayslipPDF(result, *outPath); err != nil {
			fmt.Fprintf(os.Stderr, "error writing PDF: %v\n", err)
			os.Exit(1)
		}
	case "xlsx":
		if *outPath == "" {
			fmt.Fprintln(os.Stderr, "-out is required for -format xlsx")
			os.Exit(2)
		}
		if err := writeLedgerXLSX(result, *outPath); err != nil {
			fmt.Fprintf(os.Stderr, "error writing XLSX: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *format)
		os.Exit(2)
	}
}

func loadInput(path string) (payroll.EmployeeInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return payroll.EmployeeInput{}, err
	}
	var input payroll.EmployeeInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return payroll.EmployeeInput{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return input, nil
}
