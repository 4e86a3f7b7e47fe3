package mot

import (
	"math"
	"testing"
)

func TestIoU(t *testing.T) {
	cases := []struct {
		name     string
		b1, b2   BBox
		expected float64
	}{
		{"identical", NewBBox(0, 0, 10, 10), NewBBox(0, 0, 10, 10), 1.0},
		{"disjoint", NewBBox(0, 0, 10, 10), NewBBox(100, 100, 110, 110), 0.0},
		{"touching edges", NewBBox(0, 0, 10, 10), NewBBox(10, 0, 20, 10), 0.0},
		{"half shifted", NewBBox(0, 0, 10, 10), NewBBox(5, 0, 15, 10), 1.0 / 3.0},
		{"contained", NewBBox(0, 0, 10, 10), NewBBox(0, 0, 5, 10), 0.5},
		{"zero area identical", NewBBox(5, 5, 5, 5), NewBBox(5, 5, 5, 5), 0.0},
		{"zero width inside other", NewBBox(5, 0, 5, 10), NewBBox(0, 0, 10, 10), 0.0},
		{"negative size", NewBBox(10, 10, 0, 0), NewBBox(0, 0, 10, 10), 0.0},
		{"nan coordinates", NewBBox(math.NaN(), 0, 10, 10), NewBBox(0, 0, 10, 10), 0.0},
	}
	for _, c := range cases {
		answer := IoU(c.b1, c.b2)
		if math.Abs(answer-c.expected) > eps {
			t.Errorf("%s: wrong IoU: %v, expected: %v", c.name, answer, c.expected)
		}
		reversed := IoU(c.b2, c.b1)
		if answer != reversed {
			t.Errorf("%s: IoU is not symmetric: %v vs %v", c.name, answer, reversed)
		}
	}
}

func TestIoUMatrix(t *testing.T) {
	tracks := []BBox{NewBBox(0, 0, 10, 10), NewBBox(100, 100, 110, 110)}
	detections := []BBox{NewBBox(5, 0, 15, 10), NewBBox(0, 0, 10, 10), NewBBox(100, 100, 110, 110)}
	m := iouMatrix(tracks, detections)
	rows, cols := m.Dims()
	if rows != 2 || cols != 3 {
		t.Fatalf("Wrong matrix dims: %dx%d, expected 2x3", rows, cols)
	}
	if math.Abs(m.At(0, 0)-1.0/3.0) > eps {
		t.Errorf("Wrong IoU at (0, 0): %v", m.At(0, 0))
	}
	if m.At(1, 0) != 0 || m.At(1, 1) != 0 || m.At(0, 2) != 0 {
		t.Errorf("Disjoint pairs should have zero IoU")
	}

	bestCols, bestIoU := rowArgMax(m)
	if bestCols[0] != 1 || bestIoU[0] != 1.0 {
		t.Errorf("Row 0: expected column 1 with IoU 1.0, got column %d with IoU %v", bestCols[0], bestIoU[0])
	}
	if bestCols[1] != 2 || bestIoU[1] != 1.0 {
		t.Errorf("Row 1: expected column 2 with IoU 1.0, got column %d with IoU %v", bestCols[1], bestIoU[1])
	}
}

func TestRowArgMaxTies(t *testing.T) {
	tracks := []BBox{NewBBox(0, 0, 10, 10), NewBBox(500, 500, 510, 510)}
	// Both detections overlap first track equally, none overlaps second one
	detections := []BBox{NewBBox(-5, 0, 5, 10), NewBBox(5, 0, 15, 10)}
	bestCols, bestIoU := rowArgMax(iouMatrix(tracks, detections))
	if bestCols[0] != 0 {
		t.Errorf("First column should win on ties, got %d", bestCols[0])
	}
	if bestCols[1] != 0 || bestIoU[1] != 0 {
		t.Errorf("All-zero row should point to column 0 with zero IoU, got column %d with IoU %v", bestCols[1], bestIoU[1])
	}
}
