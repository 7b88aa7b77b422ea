// SPDX-License-Identifier: Unlicense OR MIT

package unit

import "testing"

func TestMetricRounding(t *testing.T) {
	m := Metric{PxPerDp: 2.5, PxPerSp: 3}
	tests := []struct {
		dp   Dp
		want int
	}{
		{0, 0},
		{1, 3}, // 2.5 rounds away from zero
		{2, 5},
		{10, 25},
		{-1, -3}, // math.Round rounds half away from zero
	}
	for _, tc := range tests {
		if got := m.Dp(tc.dp); got != tc.want {
			t.Errorf("Dp(%v): got %d, want %d", tc.dp, got, tc.want)
		}
	}
	if got := m.Sp(2); got != 6 {
		t.Errorf("Sp(2): got %d, want 6", got)
	}
}

func TestZeroMetric(t *testing.T) {
	var m Metric
	if got := m.Dp(42); got != 42 {
		t.Errorf("zero metric Dp(42): got %d, want 42", got)
	}
	if got := m.Sp(17); got != 17 {
		t.Errorf("zero metric Sp(17): got %d, want 17", got)
	}
	if got := m.PxToDp(13); got != 13 {
		t.Errorf("zero metric PxToDp(13): got %v, want 13", got)
	}
}

func TestConversions(t *testing.T) {
	m := Metric{PxPerDp: 2, PxPerSp: 4}
	if got := m.DpToSp(8); got != 4 {
		t.Errorf("DpToSp(8): got %v, want 4", got)
	}
	if got := m.SpToDp(4); got != 8 {
		t.Errorf("SpToDp(4): got %v, want 8", got)
	}
	if got := m.PxToSp(8); got != 2 {
		t.Errorf("PxToSp(8): got %v, want 2", got)
	}
}
