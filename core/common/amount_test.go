package common

import (
	"testing"
)

func TestAmountString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount Amount
		want   string
	}{
		{name: "Test_Amount_Zero", amount: 0, want: "0.00"},
		{name: "Test_Amount_One_Coin", amount: Coin, want: "1.00"},
		{name: "Test_Amount_Half_Coin", amount: Coin / 2, want: "0.50"},
		{name: "Test_Amount_Subsidy", amount: 25 * Coin / 2, want: "12.50"},
		{name: "Test_Amount_Base_Unit", amount: 1, want: "0.00000001"},
		{name: "Test_Amount_Negative", amount: -3 * Coin / 4, want: "-0.75"},
		{name: "Test_Amount_Mixed", amount: 123*Coin + 45600000, want: "123.456"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.amount.String(); got != tt.want {
				t.Errorf("String() = %v, want %v", got, tt.want)
			}
		})
	}
}
