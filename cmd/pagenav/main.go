// Command pagenav computes page windows and demonstrates auto-closing
// overlays in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var failStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#f07171",
	Dark:  "#f07178",
})

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, failStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
