/*Package metrics aggregates the node's runtime telemetry and renders the
refreshing terminal dashboard. Worker goroutines report events (validated
transactions, solver runs, mined blocks) as a side effect of their own
work; a single refresh loop pulls a consistent snapshot, reconciles the
mined-block ledger against the chain and redraws the screen. */
package metrics

import (
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/newtl/litecoinz/chaincore/chain"
	"github.com/newtl/litecoinz/chaincore/ui"
	"github.com/newtl/litecoinz/core/common"
)

//DoneLoadingMessage - the init phase that marks the node fully loaded
const DoneLoadingMessage = "Done loading"

//maxMessages - the message box keeps this many most-recent lines
const maxMessages = 5

/*Config - the runtime configuration of the metrics engine, fixed at
construction. */
type Config struct {
	// Screen selects the full-screen in-place dashboard; otherwise the
	// sections are printed as rolling output.
	Screen bool

	// TTY - stdout is a terminal, so its width can be queried.
	TTY bool

	RefreshInterval time.Duration
	Mining          bool

	// Out defaults to os.Stdout.
	Out io.Writer
}

/*Engine - the single owned instance holding all of the node's telemetry
state. It is constructed once at startup and passed by reference to
whatever owns the worker goroutines. */
type Engine struct {
	chain *chain.Chain
	cfg   Config

	transactionsValidated Counter
	solverRuns            Counter
	targetChecks          Counter
	miningTimer           *IntervalTimer

	startTime   Synced[common.Timestamp]
	nextRefresh Synced[time.Time]
	initPhase   Synced[string]
	messages    Synced[[]string]
	loaded      atomic.Bool

	tracked trackedLedger
}

/*trackedLedger - the mined-block ledger. The lifetime count is carried
independently of the list so that blocks discarded by reconciliation still
count toward the mined total. */
type trackedLedger struct {
	mu       sync.Mutex
	hashes   []chain.Hash
	lifetime uint64
}

/*New - create the engine for the given chain. */
func New(c *chain.Chain, cfg Config) *Engine {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	return &Engine{
		chain:       c,
		cfg:         cfg,
		miningTimer: NewIntervalTimer(),
	}
}

//RecordValidatedTransaction - a transaction passed validation
func (e *Engine) RecordValidatedTransaction() {
	e.transactionsValidated.Inc()
}

//RecordSolverRun - a solver round completed
func (e *Engine) RecordSolverRun() {
	e.solverRuns.Inc()
}

//RecordTargetCheck - a candidate solution was checked against the target
func (e *Engine) RecordTargetCheck() {
	e.targetChecks.Inc()
}

/*RecordMinedBlock - the node mined a block. The block joins the tracked
ledger and stays there until reconciliation proves it unreachable from the
best chain. */
func (e *Engine) RecordMinedBlock(hash chain.Hash) {
	e.tracked.mu.Lock()
	defer e.tracked.mu.Unlock()
	e.tracked.lifetime++
	e.tracked.hashes = append(e.tracked.hashes, hash)
}

//MinedBlockCount - lifetime count of blocks mined by this node
func (e *Engine) MinedBlockCount() uint64 {
	e.tracked.mu.Lock()
	defer e.tracked.mu.Unlock()
	return e.tracked.lifetime
}

//StartMining - a mining worker became active
func (e *Engine) StartMining() {
	e.miningTimer.Start()
}

//StopMining - a mining worker went idle
func (e *Engine) StopMining() {
	e.miningTimer.Stop()
}

//MarkStartTime - record the node's start time
func (e *Engine) MarkStartTime() {
	e.startTime.Set(common.Now())
}

//Uptime - how long the node has been running
func (e *Engine) Uptime() time.Duration {
	return common.Since(e.startTime.Get())
}

//LocalSolutionRate - solutions checked per second of active mining time
func (e *Engine) LocalSolutionRate() float64 {
	return e.miningTimer.Rate(&e.targetChecks)
}

/*PostMessage - append a message line to the bounded message box, evicting
the oldest line when full, and wake the refresh loop. */
func (e *Engine) PostMessage(text string, sev ui.Severity) {
	line := severityCaption(sev) + ": " + text
	e.messages.Update(func(msgs []string) []string {
		msgs = append(msgs, line)
		if len(msgs) > maxMessages {
			msgs = msgs[len(msgs)-maxMessages:]
		}
		return msgs
	})
	e.TriggerRefresh()
}

//SetInitPhase - update the current init phase string
func (e *Engine) SetInitPhase(text string) {
	e.initPhase.Set(text)
}

/*ConnectScreen - register the engine as the sole handler for UI
notifications raised elsewhere in the node. */
func (e *Engine) ConnectScreen(u *ui.Interface) {
	u.ConnectMessageHandler(e.PostMessage)
	u.ConnectInitHandler(e.SetInitPhase)
}

/*TriggerRefresh - move the refresh deadline to now, then wait out the
refresh loop's poll interval so the next render pass has started before
returning. */
func (e *Engine) TriggerRefresh() {
	e.nextRefresh.Set(time.Now())
	time.Sleep(refreshPoll)
}
