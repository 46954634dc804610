package pdf

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func parseSpinOp(t *testing.T, op string) [6]float64 {
	t.Helper()
	fields := strings.Fields(strings.TrimSuffix(strings.TrimSpace(op), "cm"))
	if len(fields) != 6 {
		t.Fatalf("expected 6 matrix entries, got %q", op)
	}
	var m [6]float64
	for i, f := range fields {
		if _, err := fmt.Sscanf(f, "%f", &m[i]); err != nil {
			t.Fatalf("bad matrix entry %q: %v", f, err)
		}
	}
	return m
}

func TestSpinOpZeroAngle(t *testing.T) {
	m := parseSpinOp(t, SpinOp(0, 306, 396))
	want := [6]float64{1, 0, 0, 1, 0, 0}
	for i := range m {
		if math.Abs(m[i]-want[i]) > 1e-4 {
			t.Errorf("entry %d = %v, want %v", i, m[i], want[i])
		}
	}
}

func TestSpinOpKeepsCenterFixed(t *testing.T) {
	const cx, cy = 300.0, 400.0
	for _, angle := range []float64{45, -20, 90, 180, 33.3} {
		m := parseSpinOp(t, SpinOp(angle, cx, cy))
		// Apply the matrix to the center point; it must not move.
		x := m[0]*cx + m[2]*cy + m[4]
		y := m[1]*cx + m[3]*cy + m[5]
		if math.Abs(x-cx) > 1e-2 || math.Abs(y-cy) > 1e-2 {
			t.Errorf("angle %v moved center to (%v, %v)", angle, x, y)
		}
	}
}

func TestSpinOpPureRotation(t *testing.T) {
	m := parseSpinOp(t, SpinOp(45, 0, 0))
	// No reflection, no scale: determinant 1.
	det := m[0]*m[3] - m[1]*m[2]
	if math.Abs(det-1) > 1e-4 {
		t.Errorf("determinant = %v, want 1", det)
	}
	if math.Abs(m[1]-(-m[2])) > 1e-4 {
		t.Errorf("not a rotation matrix: %v", m)
	}
}

func TestSpinOpEndsInCm(t *testing.T) {
	if !strings.HasSuffix(strings.TrimSpace(SpinOp(45, 1, 2)), "cm") {
		t.Errorf("spin op must be a cm operation: %q", SpinOp(45, 1, 2))
	}
}
