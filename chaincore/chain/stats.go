package chain

import (
	metrics "github.com/rcrowley/go-metrics"
)

var BlockAcceptanceMeter metrics.Meter

func init() {
	BlockAcceptanceMeter = metrics.GetOrRegisterMeter("block_acceptance_rate", nil)
}
