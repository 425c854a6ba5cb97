package metrics

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/newtl/litecoinz/chaincore/ui"
)

var (
	cyanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func severityCaption(sev ui.Severity) string {
	switch sev {
	case ui.Error:
		return redStyle.Render("Error")
	case ui.Warning:
		return yellowStyle.Render("Warning")
	default:
		return cyanStyle.Render("Information")
	}
}

/*renderer - formats snapshots into the dashboard's fixed text sections.
Every section returns the number of lines it emitted so the refresh loop
can reposition the cursor for an in-place redraw. */
type renderer struct {
	out    io.Writer
	cols   int
	screen bool
}

//render - emit all sections for one pass and return the total line count
func (r *renderer) render(s *Snapshot) int {
	lines := 1
	if s.Loaded {
		lines += r.renderStats(s)
		lines += r.renderMiningStatus(s)
	}
	lines += r.renderMetrics(s)
	lines += r.renderMessageBox(s)
	lines += r.renderInitMessage(s)

	if r.screen {
		fmt.Fprintln(r.out, "[Press Ctrl+C to exit] [Set metrics.ui=false to hide]")
	} else {
		fmt.Fprintln(r.out, strings.Repeat("-", 40))
	}
	return lines
}

func (r *renderer) renderStats(s *Snapshot) int {
	// Number of lines that are always displayed
	lines := 4

	if s.Syncing {
		downloadPercent := int64(0)
		if s.NetHeight > 0 {
			downloadPercent = s.Height * 100 / s.NetHeight
		}
		colour := yellowStyle
		if downloadPercent >= 100 {
			colour = cyanStyle
		}
		fmt.Fprintf(r.out, "     Downloading blocks | %d / ~%d (%s)\n",
			s.Height, s.NetHeight, colour.Render(strconv.FormatInt(downloadPercent, 10)+"%"))
	} else {
		fmt.Fprintf(r.out, "           Block height | %s\n",
			cyanStyle.Render(strconv.FormatInt(s.Height, 10)))
	}
	fmt.Fprintf(r.out, "            Connections | %s\n",
		cyanStyle.Render(strconv.Itoa(s.Connections)))
	fmt.Fprintf(r.out, "     Network block rate | %s blocks/s\n",
		cyanStyle.Render(fmt.Sprintf("%.4f", s.NetworkRate)))
	if s.Mining && s.MinerRunning {
		fmt.Fprintf(r.out, "    Local solution rate | %s Sol/s\n",
			cyanStyle.Render(fmt.Sprintf("%.4f", s.LocalRate)))
		lines++
	}
	fmt.Fprintln(r.out)

	return lines
}

func (r *renderer) renderMiningStatus(s *Snapshot) int {
	// Number of lines that are always displayed
	lines := 1

	if s.Mining {
		if s.MinerThreads > 0 {
			fmt.Fprintf(r.out, "You are mining with the %s solver on %s threads.\n",
				cyanStyle.Render("equihash"),
				cyanStyle.Render(strconv.FormatUint(s.MinerThreads, 10)))
		} else if s.Connections == 0 {
			fmt.Fprintln(r.out, yellowStyle.Render("Mining is paused while waiting for connections."))
		} else if s.Syncing {
			fmt.Fprintln(r.out, yellowStyle.Render("Mining is paused while downloading blocks."))
		} else {
			fmt.Fprintln(r.out, yellowStyle.Render("Mining is paused."))
		}
		lines++
	} else {
		fmt.Fprintln(r.out, redStyle.Render("You are currently not mining."))
		fmt.Fprintln(r.out, yellowStyle.Render("To enable mining, set mining.enabled in your config and restart."))
		lines += 2
	}
	fmt.Fprintln(r.out)

	return lines
}

func (r *renderer) renderMetrics(s *Snapshot) int {
	// Number of lines that are always displayed
	lines := 3

	duration := formatUptime(s.Uptime)
	header := fmt.Sprintf("Since starting this node %s ago:", duration)
	fmt.Fprintln(r.out, header)
	lines += lipgloss.Width(header) / r.cols

	switch {
	case s.TransactionsValidated > 1:
		fmt.Fprintf(r.out, "- You have validated %s transactions!\n",
			cyanStyle.Render(strconv.FormatUint(s.TransactionsValidated, 10)))
	case s.TransactionsValidated == 1:
		fmt.Fprintln(r.out, "- You have validated a transaction!")
	default:
		fmt.Fprintln(r.out, "- "+yellowStyle.Render("You have validated no transactions."))
	}

	if s.Mining && s.Loaded {
		fmt.Fprintf(r.out, "- You have completed %s solver runs.\n",
			cyanStyle.Render(strconv.FormatUint(s.SolverRuns, 10)))
		lines++

		if s.Summary.Mined > 0 {
			fmt.Fprintln(r.out, "- "+greenStyle.Render(
				fmt.Sprintf("You have mined %d blocks!", s.Summary.Mined)))
			fmt.Fprintf(r.out, "  Orphaned: %s blocks, Immature: %s %s, Mature: %s %s\n",
				redStyle.Render(strconv.FormatUint(s.Summary.Discarded, 10)),
				yellowStyle.Render(s.Summary.Immature.String()), s.Units,
				greenStyle.Render(s.Summary.Mature.String()), s.Units)
			lines += 2
		}
	}
	fmt.Fprintln(r.out)

	return lines
}

func (r *renderer) renderMessageBox(s *Snapshot) int {
	if len(s.Messages) == 0 {
		return 0
	}

	lines := 2 + len(s.Messages)
	fmt.Fprintln(r.out, "Messages:")
	for _, msg := range s.Messages {
		wrapped := wrapParagraph(msg, r.cols, 2)
		fmt.Fprintln(r.out, "- "+wrapped)
		lines += strings.Count(wrapped, "\n")
	}
	fmt.Fprintln(r.out)

	return lines
}

func (r *renderer) renderInitMessage(s *Snapshot) int {
	if s.Loaded {
		return 0
	}

	msg := s.InitPhase
	if msg == DoneLoadingMessage {
		msg = greenStyle.Render(msg)
	} else {
		msg = yellowStyle.Render(msg)
	}
	fmt.Fprintln(r.out, "Init message: "+msg)
	fmt.Fprintln(r.out)

	return 2
}

//formatUptime - days, hours, minutes and seconds, omitting leading zero units
func formatUptime(uptime time.Duration) string {
	total := int64(uptime.Seconds())
	days := total / (24 * 60 * 60)
	hours := (total / (60 * 60)) % 24
	minutes := (total / 60) % 60
	seconds := total % 60

	c := func(n int64) string { return cyanStyle.Render(strconv.FormatInt(n, 10)) }
	switch {
	case days > 0:
		return fmt.Sprintf("%s days, %s hours, %s minutes, %s seconds",
			c(days), c(hours), c(minutes), c(seconds))
	case hours > 0:
		return fmt.Sprintf("%s hours, %s minutes, %s seconds", c(hours), c(minutes), c(seconds))
	case minutes > 0:
		return fmt.Sprintf("%s minutes, %s seconds", c(minutes), c(seconds))
	default:
		return fmt.Sprintf("%s seconds", c(seconds))
	}
}

/*wrapParagraph - greedy word wrap to the given width, indenting
continuation lines. Widths are measured ignoring styling sequences. */
func wrapParagraph(text string, width, indent int) string {
	if width <= indent {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	var b strings.Builder
	lineWidth := 0
	for i, word := range words {
		w := lipgloss.Width(word)
		if i == 0 {
			b.WriteString(word)
			lineWidth = w
			continue
		}
		if lineWidth+1+w > width {
			b.WriteString("\n" + strings.Repeat(" ", indent) + word)
			lineWidth = indent + w
		} else {
			b.WriteString(" " + word)
			lineWidth += 1 + w
		}
	}
	return b.String()
}
