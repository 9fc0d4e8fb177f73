package payment

import "testing"

func TestToMinorUnitsTruncates(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{0, 0},
		{10, 1000},
		{12.5, 1250},
		{0.015, 1},
		{10.255, 1025},
	}
	for _, tc := range cases {
		if got := ToMinorUnits(tc.amount); got != tc.want {
			t.Errorf("ToMinorUnits(%v) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}
