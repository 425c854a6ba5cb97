package metrics

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

//refreshPoll - bounds the latency at which TriggerRefresh and cancellation
//are observed while the refresh loop waits out its deadline
const refreshPoll = 200 * time.Millisecond

/*Run - the metrics screen loop. Renders a pass, arms the next deadline and
then waits in short bounded sleeps, re-checking both the deadline and the
context. Cancelling the context is the only way the loop terminates. */
func (e *Engine) Run(ctx context.Context) {
	r := &renderer{out: e.cfg.Out, cols: 80, screen: e.cfg.Screen}

	if e.cfg.Screen {
		// Clear screen, then the static banner the redraw never touches
		fmt.Fprint(e.cfg.Out, "\x1b[1;1H\x1b[2J")
		fmt.Fprintln(e.cfg.Out, greenStyle.Render("Thank you for running a LitecoinZ node!"))
		fmt.Fprintln(e.cfg.Out)
	}

	for {
		r.cols = 80
		if e.cfg.TTY {
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				r.cols = w
			}
		}

		if e.cfg.Screen {
			// Erase below the current position
			fmt.Fprint(e.cfg.Out, "\x1b[J")
		}

		snap := e.snapshot()
		lines := r.render(snap)
		if !snap.Loaded && snap.InitPhase == DoneLoadingMessage {
			e.loaded.Store(true)
		}

		e.nextRefresh.Set(time.Now().Add(e.cfg.RefreshInterval))
		for time.Now().Before(e.nextRefresh.Get()) {
			select {
			case <-ctx.Done():
				return
			case <-time.After(refreshPoll):
			}
		}
		select {
		case <-ctx.Done():
			return
		default:
		}

		if e.cfg.Screen {
			// Return to the top of the updating section
			fmt.Fprintf(e.cfg.Out, "\x1b[%dA", lines)
		}
	}
}
