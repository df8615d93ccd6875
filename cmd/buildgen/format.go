package main

import (
	"fmt"

	"github.com/Helarga/TEASER-1/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if r.RunID != "" {
		fmt.Printf("Run %s\n\n", r.RunID)
	}

	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printResult(e)
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			printResult(w)
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printResult(res validation.Result) {
	fmt.Printf("  [%s] %s\n", res.Level, res.Message)
	if res.Zone != "" {
		fmt.Printf("    zone: %s\n", res.Zone)
	}
	if res.Row != 0 {
		fmt.Printf("    row %d", res.Row)
		if res.Field != "" {
			fmt.Printf(", column %s", res.Field)
		}
		if res.ActualValue != nil {
			fmt.Printf(" = %v", res.ActualValue)
		}
		fmt.Println()
	}
	if res.Expected != "" {
		fmt.Printf("    expected: %s\n", res.Expected)
	}
	for _, s := range res.Suggestions {
		fmt.Printf("    * %s\n", s)
	}
}
