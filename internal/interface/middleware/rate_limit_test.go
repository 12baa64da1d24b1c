package middleware

import "testing"

func TestRemainingAfterNeverNegative(t *testing.T) {
	t.Parallel()

	cases := []struct {
		max   int
		count int64
		want  int
	}{
		{10, 1, 9},
		{10, 10, 0},
		{10, 11, 0},
		{10, 250, 0},
		{1, 1, 0},
	}
	for _, tc := range cases {
		if got := remainingAfter(tc.max, tc.count); got != tc.want {
			t.Errorf("remainingAfter(%d, %d) = %d, want %d", tc.max, tc.count, got, tc.want)
		}
	}
}
