package mot

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	detectionsHeader = []string{"frame", "cx", "cy", "w", "h"}
	tracksHeader     = []string{"run", "frame", "track", "x1", "y1", "x2", "y2", "path"}
)

// ReadDetectionsCSV reads per-frame detections in center form.
// Format: frame;cx;cy;w;h with header line. Frame numbers start from 0 and must not decrease.
// Frames without rows (including gaps between frame numbers) are returned as empty slices.
func ReadDetectionsCSV(r io.Reader) ([][]CenterBox, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = len(detectionsHeader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return [][]CenterBox{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "Can't read detections header")
	}
	for i := range detectionsHeader {
		if strings.TrimSpace(header[i]) != detectionsHeader[i] {
			return nil, errors.Errorf("unexpected detections header %v, expected %v", header, detectionsHeader)
		}
	}

	frames := make([][]CenterBox, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "Can't read detections row")
		}
		line, _ := reader.FieldPos(0)
		frame, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, errors.Wrapf(err, "Bad frame number on line %d", line)
		}
		if frame < 0 || frame < len(frames)-1 {
			return nil, errors.Errorf("frame number %d on line %d is negative or decreasing", frame, line)
		}
		values := make([]float64, 4)
		for i := range values {
			values[i], err = strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "Bad %s value on line %d", detectionsHeader[i+1], line)
			}
		}
		for len(frames) <= frame {
			frames = append(frames, []CenterBox{})
		}
		frames[frame] = append(frames[frame], NewCenterBox(values[0], values[1], values[2], values[3]))
	}
	return frames, nil
}

// TrackCSVWriter writes tracker output frame by frame.
// Format: run;frame;track;x1;y1;x2;y2;path where path is x,y|x,y|...
type TrackCSVWriter struct {
	writer        *csv.Writer
	runID         uuid.UUID
	headerWritten bool
}

// NewTrackCSVWriter creates writer stamping every row with given run identifier
func NewTrackCSVWriter(w io.Writer, runID uuid.UUID) *TrackCSVWriter {
	writer := csv.NewWriter(w)
	writer.Comma = ';'
	return &TrackCSVWriter{
		writer: writer,
		runID:  runID,
	}
}

// WriteFrame writes one row per track. Header is written before the first frame
func (tw *TrackCSVWriter) WriteFrame(frame int, tracks []Track) error {
	if !tw.headerWritten {
		if err := tw.writer.Write(tracksHeader); err != nil {
			return errors.Wrap(err, "Can't write tracks header")
		}
		tw.headerWritten = true
	}
	for _, track := range tracks {
		box := track.GetBBox()
		row := []string{
			tw.runID.String(),
			strconv.Itoa(frame),
			strconv.Itoa(track.GetID()),
			formatFloat(box.X1),
			formatFloat(box.Y1),
			formatFloat(box.X2),
			formatFloat(box.Y2),
			formatPath(track.GetPath()),
		}
		if err := tw.writer.Write(row); err != nil {
			return errors.Wrapf(err, "Can't write track %d on frame %d", track.GetID(), frame)
		}
	}
	return nil
}

// Flush flushes buffered rows to the underlying writer
func (tw *TrackCSVWriter) Flush() error {
	tw.writer.Flush()
	return errors.Wrap(tw.writer.Error(), "Can't flush tracks")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatPath(path []Point) string {
	data := make([]string, len(path))
	for idx, pt := range path {
		data[idx] = formatFloat(pt.X) + "," + formatFloat(pt.Y)
	}
	return strings.Join(data, "|")
}
