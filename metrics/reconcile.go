package metrics

import (
	"time"

	"github.com/newtl/litecoinz/chaincore/chain"
	"github.com/newtl/litecoinz/core/common"
)

/*Summary - the result of reconciling the mined-block ledger against the
best chain. Recomputed from scratch on every render pass. */
type Summary struct {
	// Mined - lifetime count of blocks mined, including discarded ones.
	Mined uint64

	// Discarded - mined blocks no longer reachable from the best chain.
	Discarded uint64

	Mature   common.Amount
	Immature common.Amount
}

/*reconcile - classify every tracked block against the best chain. Blocks
on the best chain count their subsidy as mature or immature depending on
their confirmation depth and stay in the ledger; blocks the chain no
longer reaches are dropped permanently. The chain view is taken before the
ledger lock, matching the lock order of every other chain consumer. */
func (e *Engine) reconcile() Summary {
	start := time.Now()
	defer ReconcileTimer.UpdateSince(start)

	var s Summary
	e.chain.View(func(v *chain.View) {
		e.tracked.mu.Lock()
		defer e.tracked.mu.Unlock()

		tip := v.Height()
		maturity := v.MaturityDepth()
		kept := e.tracked.hashes[:0]
		for _, hash := range e.tracked.hashes {
			if !v.Contains(hash) {
				// Never indexed, or reorganized out: discard.
				continue
			}
			height, _ := v.HeightOf(hash)
			subsidy := v.Subsidy(height)
			if maturity-(tip-height) > 0 {
				s.Immature += subsidy
			} else {
				s.Mature += subsidy
			}
			kept = append(kept, hash)
		}
		e.tracked.hashes = kept

		s.Mined = e.tracked.lifetime
		s.Discarded = e.tracked.lifetime - uint64(len(kept))
	})
	return s
}
