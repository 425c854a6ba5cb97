package metrics

import (
	"time"

	"github.com/newtl/litecoinz/core/common"
)

//medianTimeSpan - the trailing window over which a tip's reported time is a median
const medianTimeSpan = 11

/*EstimateNetHeight - estimate the network's current height from the local
tip and the last checkpoint. The target spacing is averaged with the
spacing observed against the checkpoint (from below or above depending on
the local height) to dampen variance, and the result is rounded to the
nearest ten to reduce display noise.

Precondition: checkpointHeight >= 1 and the resulting average spacing is
strictly positive; degenerate checkpoint data yields meaningless results. */
func EstimateNetHeight(now common.Timestamp, height int64, tipMedianTime common.Timestamp,
	checkpointHeight int64, checkpointTime, genesisTime common.Timestamp,
	targetSpacing time.Duration) int64 {

	// The tip's reported time is a median over a trailing window, so shift
	// the height back to the block that time actually belongs to.
	medianHeight := height / 2
	if height > medianTimeSpan {
		medianHeight = height - (1 + (medianTimeSpan-1)/2)
	}

	var checkpointSpacing float64
	if medianHeight > checkpointHeight {
		checkpointSpacing = float64(tipMedianTime-checkpointTime) / float64(medianHeight-checkpointHeight)
	} else {
		checkpointSpacing = float64(checkpointTime-genesisTime) / float64(checkpointHeight)
	}
	averageSpacing := (targetSpacing.Seconds() + checkpointSpacing) / 2
	netHeight := medianHeight + int64(float64(now-tipMedianTime)/averageSpacing)

	// Round to nearest ten
	return ((netHeight + 5) / 10) * 10
}
