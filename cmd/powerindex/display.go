package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/powerindex/voting"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	playerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	shareStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// renderResult prints one index as a table of player, weight, raw count
// and normalized share.
func renderResult(out io.Writer, title string, players []string, g *voting.Game, res *voting.Result) {
	fmt.Fprintf(out, "%s\n", headerStyle.Render(title))
	fmt.Fprintf(out, "%s\n\n", dimStyle.Render(gameSummary(g)))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("player"),
		headerStyle.Render("weight"),
		headerStyle.Render("count"),
		headerStyle.Render("share"))

	for i, name := range players {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			playerStyle.Render(name),
			g.Weight(i),
			countStyle.Render(res.Counts[i].String()),
			shareStyle.Render(formatShare(res.Shares[i])))
	}
	w.Flush()
	fmt.Fprintln(out)
}

// renderComparison prints both indices side by side.
func renderComparison(out io.Writer, players []string, g *voting.Game, banzhaf, shapley *voting.Result) {
	fmt.Fprintf(out, "%s\n", headerStyle.Render("power indices"))
	fmt.Fprintf(out, "%s\n\n", dimStyle.Render(gameSummary(g)))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("player"),
		headerStyle.Render("weight"),
		headerStyle.Render("banzhaf"),
		headerStyle.Render("shapley-shubik"))

	for i, name := range players {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			playerStyle.Render(name),
			g.Weight(i),
			shareStyle.Render(formatShare(banzhaf.Shares[i])),
			shareStyle.Render(formatShare(shapley.Shares[i])))
	}
	w.Flush()
	fmt.Fprintln(out)
}

func gameSummary(g *voting.Game) string {
	degenerate := ""
	if !g.Winnable() {
		degenerate = ", quota unreachable"
	}
	return fmt.Sprintf("%d players, total weight %d, quota %d%s",
		g.Players(), g.TotalWeight(), g.Quota(), degenerate)
}

func formatShare(s float64) string {
	return fmt.Sprintf("%.2f%%", s*100)
}
