package metrics

import (
	gometrics "github.com/rcrowley/go-metrics"
)

var ReconcileTimer gometrics.Timer

func init() {
	ReconcileTimer = gometrics.GetOrRegisterTimer("ledger_reconcile_time", nil)
}
