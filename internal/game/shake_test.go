package game

import (
	"testing"
	"time"
)

func TestShakeOffset(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := Shake{Start: start, Duration: time.Second, IntensityX: 4, IntensityY: 2}

	tests := []struct {
		name   string
		at     time.Duration
		dx, dy int
		done   bool
	}{
		{"start", 0, 0, 2, false},
		{"quarter", 250 * time.Millisecond, 4, 0, false},
		{"half", 500 * time.Millisecond, 0, -2, false},
		{"three quarters", 750 * time.Millisecond, -4, 0, false},
		{"end", time.Second, 0, 0, true},
		{"after end", 3 * time.Second, 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy, done := s.Offset(start.Add(tc.at))
			if dx != tc.dx || dy != tc.dy || done != tc.done {
				t.Errorf("Offset(+%v) = (%d, %d, %v), expected (%d, %d, %v)", tc.at, dx, dy, done, tc.dx, tc.dy, tc.done)
			}
		})
	}
}

func TestShakeZeroDuration(t *testing.T) {
	s := Shake{Start: time.Now()}
	if _, _, done := s.Offset(s.Start); !done {
		t.Error("zero-length effect should be done immediately")
	}
}

func TestSurfaceFor(t *testing.T) {
	s := SurfaceFor(101, 31, 0.8)
	if s.Width != 80 || s.Height != 24 {
		t.Errorf("SurfaceFor(101, 31) = %+v, expected 80x24", s)
	}
	if s := SurfaceFor(-5, -5, 0.8); s.Width != 0 || s.Height != 0 {
		t.Errorf("negative viewport should give empty surface, got %+v", s)
	}
}
