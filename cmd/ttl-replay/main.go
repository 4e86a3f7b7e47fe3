// Command ttl-replay runs TTLTracker over detections stored in CSV and writes tracks to CSV.
//
// Detections are expected in the detector grid coordinates; -sx and -sy scale tracks
// to display resolution before writing.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/LdDl/ttl-tracker/mot"
	"github.com/pkg/errors"
)

func main() {
	configPath := flag.String("config", "", "path to tracker JSON config (optional)")
	inPath := flag.String("in", "detections.csv", "detections CSV: frame;cx;cy;w;h")
	outPath := flag.String("out", "tracks.csv", "output tracks CSV")
	sx := flag.Float64("sx", 1.0, "horizontal scale applied to output boxes and paths")
	sy := flag.Float64("sy", 1.0, "vertical scale applied to output boxes and paths")
	flag.Parse()

	cfg := mot.DefaultTrackerConfig()
	if *configPath != "" {
		var err error
		cfg, err = mot.LoadTrackerConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	in, err := os.Open(*inPath)
	if err != nil {
		log.Fatalf("failed to open detections: %v", err)
	}
	defer in.Close()

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("failed to create output: %v", err)
	}
	defer out.Close()

	frames, tracks, err := replay(cfg, in, out, *sx, *sy)
	if err != nil {
		log.Fatalf("replay failed: %v", err)
	}
	log.Printf("processed %d frames, %d tracks created, output written to %s", frames, tracks, *outPath)
}

// replay feeds every frame to a fresh tracker and writes live tracks after each update.
// Returns number of processed frames and number of created tracks
func replay(cfg *mot.TrackerConfig, in io.Reader, out io.Writer, sx, sy float64) (int, int, error) {
	tracker, err := mot.NewTTLTrackerFromConfig(cfg)
	if err != nil {
		return 0, 0, err
	}
	frames, err := mot.ReadDetectionsCSV(in)
	if err != nil {
		return 0, 0, errors.Wrap(err, "Can't read detections")
	}
	writer := mot.NewTrackCSVWriter(out, tracker.RunID())
	for frameIdx, detections := range frames {
		tracker.Update(detections)
		live := tracker.Tracks()
		for i := range live {
			live[i] = live[i].Scale(sx, sy)
		}
		if err := writer.WriteFrame(frameIdx, live); err != nil {
			return 0, 0, err
		}
	}
	if err := writer.Flush(); err != nil {
		return 0, 0, err
	}
	return len(frames), tracker.NextID(), nil
}
