/*Package node wires the chain view, the UI notification interface and the
metrics engine into one owned instance. There are no package-level
singletons: whatever owns the worker goroutines receives the Node and calls
into its engine. */
package node

import (
	"context"
	"os"

	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/newtl/litecoinz/chaincore/chain"
	"github.com/newtl/litecoinz/chaincore/config"
	"github.com/newtl/litecoinz/chaincore/ui"
	"github.com/newtl/litecoinz/core/common"
	"github.com/newtl/litecoinz/metrics"
)

/*Node - the long-running process: the chain state the engine reconciles
against, the notification surface other subsystems raise messages on, and
the metrics engine that renders it all. */
type Node struct {
	Chain  *chain.Chain
	UI     *ui.Interface
	Engine *metrics.Engine
}

/*NewNode - build the node from the loaded configuration. */
func NewNode() *Node {
	params := chain.Params{
		GenesisTime:      common.Timestamp(viper.GetInt64("chain.genesis_time")),
		TargetSpacing:    viper.GetDuration("chain.target_spacing"),
		MaturityDepth:    viper.GetInt64("chain.maturity_depth"),
		HalvingInterval:  viper.GetInt64("chain.halving_interval"),
		BaseSubsidy:      common.Amount(viper.GetInt64("chain.base_subsidy")),
		CheckpointHeight: viper.GetInt64("chain.checkpoint.height"),
		CheckpointTime:   common.Timestamp(viper.GetInt64("chain.checkpoint.time")),
		CurrencyUnits:    viper.GetString("chain.currency_units"),
	}
	c := chain.NewChain(params)
	u := &ui.Interface{}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	e := metrics.New(c, metrics.Config{
		Screen:          config.Configuration.MetricsUI,
		TTY:             isTTY,
		RefreshInterval: config.Configuration.RefreshInterval,
		Mining:          config.Configuration.MiningEnabled,
	})

	return &Node{Chain: c, UI: u, Engine: e}
}

/*Start - mark the start time, register the engine as the UI's sole
handler and launch the refresh loop. The returned channel closes once the
loop has observed cancellation. */
func (n *Node) Start(ctx context.Context) <-chan struct{} {
	n.Engine.MarkStartTime()
	n.Engine.ConnectScreen(n.UI)

	n.UI.NotifyInit("Loading block index...")

	done := make(chan struct{})
	go func() {
		n.Engine.Run(ctx)
		close(done)
	}()

	n.UI.NotifyInit(metrics.DoneLoadingMessage)
	return done
}
