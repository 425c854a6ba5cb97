package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/newtl/litecoinz/core/common"
)

func TestEstimateNetHeight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		now              common.Timestamp
		height           int64
		tipMedianTime    common.Timestamp
		checkpointHeight int64
		checkpointTime   common.Timestamp
		genesisTime      common.Timestamp
		targetSpacing    time.Duration
		want             int64
	}{
		{
			// medianHeight = 100 - (1 + 5) = 94; the checkpoint spacing is
			// (tip - checkpoint time) / (94 - 50) = 6600/44 = 150, averaged
			// with the 150s target it stays 150; 300s of lag adds 2 blocks;
			// 96 rounds to 100.
			name:             "Test_EstimateNetHeight_Above_Checkpoint",
			now:              1000300,
			height:           100,
			tipMedianTime:    1000000,
			checkpointHeight: 50,
			checkpointTime:   993400,
			genesisTime:      986800,
			targetSpacing:    150 * time.Second,
			want:             100,
		},
		{
			// Below the checkpoint the spacing is taken from genesis to the
			// checkpoint: (16000 - 1000) / 100 = 150. medianHeight = 8/2 = 4,
			// lag 1500s adds 10 blocks; 14 rounds to 10.
			name:             "Test_EstimateNetHeight_Below_Checkpoint",
			now:              21500,
			height:           8,
			tipMedianTime:    20000,
			checkpointHeight: 100,
			checkpointTime:   16000,
			genesisTime:      1000,
			targetSpacing:    150 * time.Second,
			want:             10,
		},
		{
			// No lag at all: the estimate is just the rounded median height.
			name:             "Test_EstimateNetHeight_No_Lag",
			now:              1000000,
			height:           100,
			tipMedianTime:    1000000,
			checkpointHeight: 50,
			checkpointTime:   993400,
			genesisTime:      986800,
			targetSpacing:    150 * time.Second,
			want:             90,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := EstimateNetHeight(tt.now, tt.height, tt.tipMedianTime,
				tt.checkpointHeight, tt.checkpointTime, tt.genesisTime, tt.targetSpacing)
			require.Equal(t, tt.want, got)
		})
	}
}
