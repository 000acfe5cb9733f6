package utils

import "testing"

func TestFloatApproximates(t *testing.T) {
	tests := []struct {
		name      string
		actual    float64
		ref       float64
		tolerance float64
		want      bool
	}{
		{"equal", 1.0, 1.0, 0, true},
		{"inside", 1.05, 1.0, 0.1, true},
		{"boundary", 1.5, 1.0, 0.5, true},
		{"outside", 1.2, 1.0, 0.1, false},
		{"negative side", 0.8, 1.0, 0.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FloatApproximates(tt.actual, tt.ref, tt.tolerance); got != tt.want {
				t.Errorf("FloatApproximates(%v, %v, %v) = %v, want %v", tt.actual, tt.ref, tt.tolerance, got, tt.want)
			}
		})
	}
}

func TestFloatApproximates1e5(t *testing.T) {
	if !FloatApproximates1e5(0.1+0.2, 0.3) {
		t.Errorf("Expected 0.1+0.2 to approximate 0.3")
	}
	if FloatApproximates1e5(0.3001, 0.3) {
		t.Errorf("Expected 0.3001 not to approximate 0.3")
	}
}
