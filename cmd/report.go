package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/okabe/htmlbak/pkg/backup"
)

var (
	successHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	updatesHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	failureHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// renderReport prints the grouped report for one dispatch and returns the
// number of failed folders.
func renderReport(act action, outcomes []backup.Outcome) int {
	var successes, failures []backup.Outcome
	for _, out := range outcomes {
		if out.OK() {
			successes = append(successes, out)
		} else {
			failures = append(failures, out)
		}
	}

	switch act {
	case actionDelete:
		fmt.Println(successHeader.Render("👋 Deleted Backups:"))
		printOutcomes(successes)
	case actionCheck:
		fmt.Println(updatesHeader.Render("👀 Updates Available:"))
		var updates []backup.Outcome
		for _, out := range successes {
			if out.UpdateAvailable() {
				updates = append(updates, out)
			}
		}
		if len(updates) == 0 {
			fmt.Println("  none")
		} else {
			printOutcomes(updates)
		}
	default:
		fmt.Println(successHeader.Render("😎 Backed Up:"))
		printOutcomes(successes)
	}

	if len(failures) > 0 {
		fmt.Println()
		fmt.Println(failureHeader.Render("😡 Failed:"))
		printOutcomes(failures)
	}

	return len(failures)
}

func printOutcomes(outcomes []backup.Outcome) {
	for _, out := range outcomes {
		fmt.Printf("  - %s: %s\n", out.Folder, out.Message)
	}
}
