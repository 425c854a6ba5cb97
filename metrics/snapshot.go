package metrics

import (
	"time"

	"github.com/newtl/litecoinz/core/common"
)

/*Snapshot - everything a render pass needs, captured once per pass so the
renderer itself stays pure. */
type Snapshot struct {
	Loaded    bool
	InitPhase string

	Height      int64
	NetHeight   int64
	Syncing     bool
	Connections int
	NetworkRate float64

	Mining       bool
	MinerRunning bool
	MinerThreads uint64
	LocalRate    float64

	Uptime                time.Duration
	TransactionsValidated uint64
	SolverRuns            uint64
	Summary               Summary

	Messages []string
	Units    string
}

func (e *Engine) snapshot() *Snapshot {
	params := e.chain.Params()
	s := &Snapshot{
		Loaded:    e.loaded.Load(),
		InitPhase: e.initPhase.Get(),

		Height:      e.chain.Height(),
		Syncing:     e.chain.IsInitialBlockDownload(),
		Connections: e.chain.ConnectionCount(),
		NetworkRate: e.chain.NetworkRate(),

		Mining:       e.cfg.Mining,
		MinerRunning: e.miningTimer.Running(),
		MinerThreads: e.miningTimer.ThreadCount(),
		LocalRate:    e.LocalSolutionRate(),

		Uptime:                e.Uptime(),
		TransactionsValidated: e.transactionsValidated.Get(),
		SolverRuns:            e.solverRuns.Get(),
		Summary:               e.reconcile(),

		Messages: e.messages.Get(),
		Units:    params.CurrencyUnits,
	}
	if s.Syncing {
		s.NetHeight = EstimateNetHeight(common.Now(), s.Height, e.chain.TipMedianTime(),
			params.CheckpointHeight, params.CheckpointTime, params.GenesisTime,
			params.TargetSpacing)
	}
	return s
}
