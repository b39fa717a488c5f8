// Package reviewsvc - Test làm tròn điểm trung bình đánh giá.
package reviewsvc

import "testing"

func TestRoundRating(t *testing.T) {
	cases := []struct {
		avg  float64
		want float64
	}{
		{0, 0},
		{5, 5},
		{4.333333, 4.3},
		{4.25, 4.3},
		{4.24, 4.2},
		{3.666666, 3.7},
	}
	for _, tc := range cases {
		if got := RoundRating(tc.avg); got != tc.want {
			t.Errorf("RoundRating(%v) = %v, muốn %v", tc.avg, got, tc.want)
		}
	}
}
