package metrics

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/newtl/litecoinz/chaincore/chain"
	"github.com/newtl/litecoinz/chaincore/ui"
	"github.com/newtl/litecoinz/core/common"
)

func testParams() chain.Params {
	return chain.Params{
		GenesisTime:      1000,
		TargetSpacing:    150 * time.Second,
		MaturityDepth:    100,
		HalvingInterval:  840000,
		BaseSubsidy:      common.Coin * 25 / 2,
		CheckpointHeight: 1,
		CheckpointTime:   1150,
		CurrencyUnits:    "LTZ",
	}
}

func testEngine(c *chain.Chain) *Engine {
	return New(c, Config{
		RefreshInterval: time.Hour,
		Mining:          true,
		Out:             io.Discard,
	})
}

func TestEngineMessageBoxBound(t *testing.T) {
	e := testEngine(chain.NewChain(testParams()))

	for i := 1; i <= maxMessages+1; i++ {
		e.PostMessage(fmt.Sprintf("message %d", i), ui.Info)
	}

	msgs := e.messages.Get()
	require.Len(t, msgs, maxMessages)

	// The oldest line was evicted, the rest kept in arrival order.
	require.NotContains(t, msgs[0], "message 1")
	for i, msg := range msgs {
		require.Contains(t, msg, fmt.Sprintf("message %d", i+2))
	}
}

func TestEngineMessageSeverities(t *testing.T) {
	e := testEngine(chain.NewChain(testParams()))

	e.PostMessage("disk is full", ui.Error)
	e.PostMessage("clock skew detected", ui.Warning)
	e.PostMessage("peer connected", ui.Info)

	msgs := e.messages.Get()
	require.Len(t, msgs, 3)
	require.Contains(t, msgs[0], "Error")
	require.Contains(t, msgs[0], "disk is full")
	require.Contains(t, msgs[1], "Warning")
	require.Contains(t, msgs[2], "Information")
}

func TestEngineConnectScreen(t *testing.T) {
	e := testEngine(chain.NewChain(testParams()))
	var u ui.Interface
	e.ConnectScreen(&u)

	u.NotifyMessage("raised elsewhere", ui.Warning)
	u.NotifyInit("Verifying blocks...")

	require.Len(t, e.messages.Get(), 1)
	require.Contains(t, e.messages.Get()[0], "raised elsewhere")
	require.Equal(t, "Verifying blocks...", e.initPhase.Get())
}

func TestEngineUptime(t *testing.T) {
	e := testEngine(chain.NewChain(testParams()))
	e.MarkStartTime()
	got := e.Uptime()
	require.GreaterOrEqual(t, got, time.Duration(0))
	require.Less(t, got, 2*time.Second)
}

func TestEngineReconcile(t *testing.T) {
	params := testParams()
	c := chain.NewChain(params)
	e := testEngine(c)

	// Build a chain deep enough that early blocks are mature.
	for h := int64(0); h < 150; h++ {
		c.AcceptBlock(chain.Hash(fmt.Sprintf("block-%d", h)), common.Timestamp(1000+150*h))
	}

	// A is buried past the maturity depth, B is recent, C was never accepted.
	e.RecordMinedBlock("block-10")
	e.RecordMinedBlock("block-139")
	e.RecordMinedBlock("orphan")

	s := e.reconcile()
	require.Equal(t, uint64(3), s.Mined)
	require.Equal(t, uint64(1), s.Discarded)
	require.Equal(t, params.BaseSubsidy, s.Mature)
	require.Equal(t, params.BaseSubsidy, s.Immature)

	// The discarded block is gone for good; the rest survive further passes.
	s = e.reconcile()
	require.Equal(t, uint64(3), s.Mined)
	require.Equal(t, uint64(1), s.Discarded)
	require.Equal(t, []chain.Hash{"block-10", "block-139"}, e.tracked.hashes)
}

func TestEngineReconcileAfterReorg(t *testing.T) {
	c := chain.NewChain(testParams())
	e := testEngine(c)

	for h := int64(0); h < 10; h++ {
		c.AcceptBlock(chain.Hash(fmt.Sprintf("block-%d", h)), common.Timestamp(1000+150*h))
	}
	e.RecordMinedBlock("block-8")

	s := e.reconcile()
	require.Equal(t, uint64(0), s.Discarded)

	// The mined block gets reorganized out and is discarded on the next pass.
	c.ReorgTo(7)
	c.AcceptBlock("block-8b", 2250)
	s = e.reconcile()
	require.Equal(t, uint64(1), s.Mined)
	require.Equal(t, uint64(1), s.Discarded)
	require.Empty(t, e.tracked.hashes)
}

func TestEngineSnapshot(t *testing.T) {
	c := chain.NewChain(testParams())
	e := testEngine(c)
	e.MarkStartTime()

	for h := int64(0); h < 20; h++ {
		c.AcceptBlock(chain.Hash(fmt.Sprintf("block-%d", h)), common.Timestamp(1000+150*h))
	}
	c.SetConnectionCount(3)
	e.RecordValidatedTransaction()
	e.RecordValidatedTransaction()
	e.RecordSolverRun()
	e.StartMining()
	defer e.StopMining()

	s := e.snapshot()
	require.Equal(t, int64(19), s.Height)
	require.True(t, s.Syncing)
	require.Positive(t, s.NetHeight)
	require.Equal(t, 3, s.Connections)
	require.True(t, s.MinerRunning)
	require.Equal(t, uint64(1), s.MinerThreads)
	require.Equal(t, uint64(2), s.TransactionsValidated)
	require.Equal(t, uint64(1), s.SolverRuns)
	require.Equal(t, "LTZ", s.Units)

	// Out of initial block download the estimate is skipped.
	c.SetSynced(true)
	s = e.snapshot()
	require.False(t, s.Syncing)
	require.Zero(t, s.NetHeight)
}
