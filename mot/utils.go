package mot

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// IoU calculates Intersection over Union between two corner-form boxes.
// Degenerate boxes (zero or negative area, NaN coordinates) give 0 instead of dividing by zero.
func IoU(b1, b2 BBox) float64 {
	xA := maxFloat64(b1.X1, b2.X1)
	yA := maxFloat64(b1.Y1, b2.Y1)
	xB := minFloat64(b1.X2, b2.X2)
	yB := minFloat64(b1.Y2, b2.Y2)

	interArea := maxFloat64(0, xB-xA) * maxFloat64(0, yB-yA)
	if !(interArea > 0) {
		return 0.0
	}

	unionArea := b1.Area() + b2.Area() - interArea
	if !(unionArea > 0) {
		return 0.0
	}
	return interArea / unionArea
}

// iouMatrix builds tracks x detections IoU matrix. Both slices must be non-empty
func iouMatrix(trackBoxes, detectionBoxes []BBox) *mat.Dense {
	m := mat.NewDense(len(trackBoxes), len(detectionBoxes), nil)
	for i := range trackBoxes {
		for j := range detectionBoxes {
			m.Set(i, j, IoU(trackBoxes[i], detectionBoxes[j]))
		}
	}
	return m
}

// rowArgMax returns column index and value of the maximum for every row.
// The first column wins on ties
func rowArgMax(m *mat.Dense) ([]int, []float64) {
	rows, _ := m.Dims()
	cols := make([]int, rows)
	values := make([]float64, rows)
	for i := 0; i < rows; i++ {
		row := m.RawRowView(i)
		cols[i] = floats.MaxIdx(row)
		values[i] = row[cols[i]]
	}
	return cols, values
}

func maxFloat64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
