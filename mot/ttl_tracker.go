package mot

import (
	"sort"

	"github.com/google/uuid"
)

const (
	// DefaultAliveDuration is number of frames an unmatched track survives
	DefaultAliveDuration = 5
	// DefaultMatchThreshold accepts any pairing, zero IoU included
	DefaultMatchThreshold = 0.0
)

// TTLTracker is a greedy IoU multi-object tracker (MOT) with time-to-live aging.
// It has no motion model: track boxes are replaced by matched detections as is.
// TTLTracker is not safe for concurrent use: call Update once per frame from a single goroutine.
type TTLTracker struct {
	// Number of frames an unmatched track is kept alive. Default is 5
	aliveDuration int
	// Minimal IoU for committing a match. Default 0.0 (every pairing is accepted)
	matchThreshold float64
	// When set, unmatched tracks age AND unmatched detections spawn tracks on every frame.
	// Default behaviour picks exactly one of these branches by comparing tracks and detections counts
	independentLifecycle bool
	// Identifier of this tracker instance
	runID uuid.UUID
	// Next identifier to assign
	nextID int
	// Live identifiers in creation order
	order []int
	// Main storage
	objects map[int]*Track
}

// NewDefaultTTLTracker creates a default instance of TTLTracker.
// Default values: aliveDuration=5, matchThreshold=0.0
func NewDefaultTTLTracker() *TTLTracker {
	return NewTTLTracker(DefaultAliveDuration, DefaultMatchThreshold)
}

// NewTTLTracker creates a new instance of TTLTracker with specified parameters.
// aliveDuration less than 1 is treated as 1
func NewTTLTracker(aliveDuration int, matchThreshold float64) *TTLTracker {
	if aliveDuration < 1 {
		aliveDuration = 1
	}
	return &TTLTracker{
		aliveDuration:  aliveDuration,
		matchThreshold: matchThreshold,
		runID:          uuid.New(),
		order:          make([]int, 0),
		objects:        make(map[int]*Track),
	}
}

// NewTTLTrackerFromConfig creates a new instance of TTLTracker from validated configuration
func NewTTLTrackerFromConfig(cfg *TrackerConfig) (*TTLTracker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tracker := NewTTLTracker(cfg.GetAliveDuration(), cfg.GetMatchThreshold())
	tracker.SetIndependentLifecycle(cfg.GetAgeAndSpawn())
	return tracker, nil
}

// SetIndependentLifecycle toggles aging and spawning on every frame
func (tracker *TTLTracker) SetIndependentLifecycle(enabled bool) {
	tracker.independentLifecycle = enabled
}

// GetAliveDuration returns ttl assigned to created and matched tracks
func (tracker *TTLTracker) GetAliveDuration() int {
	return tracker.aliveDuration
}

// GetMatchThreshold returns minimal IoU for a match
func (tracker *TTLTracker) GetMatchThreshold() float64 {
	return tracker.matchThreshold
}

// RunID returns identifier of this tracker instance
func (tracker *TTLTracker) RunID() uuid.UUID {
	return tracker.runID
}

// NextID returns identifier which will be given to the next created track
func (tracker *TTLTracker) NextID() int {
	return tracker.nextID
}

// Len returns number of live tracks
func (tracker *TTLTracker) Len() int {
	return len(tracker.order)
}

// Track returns copy of the live track with given identifier
func (tracker *TTLTracker) Track(id int) (Track, bool) {
	track, ok := tracker.objects[id]
	if !ok {
		return Track{}, false
	}
	return track.clone(), true
}

// Tracks returns copies of all live tracks in creation order
func (tracker *TTLTracker) Tracks() []Track {
	tracks := make([]Track, 0, len(tracker.order))
	for _, id := range tracker.order {
		tracks = append(tracks, tracker.objects[id].clone())
	}
	return tracks
}

// Update consumes detections of a single frame (center form) and returns boxes (corner form)
// and center paths of all live tracks. Both slices are index-aligned and ordered by track creation.
func (tracker *TTLTracker) Update(detections []CenterBox) ([]BBox, [][]Point) {
	boxes := make([]BBox, len(detections))
	centers := make([]Point, len(detections))
	for i, detection := range detections {
		boxes[i] = detection.BBox()
		centers[i] = detection.Center()
	}

	switch {
	case len(boxes) == 0:
		// Pure aging step
		tracker.ageObjects(tracker.order)
	case len(tracker.order) == 0:
		for i := range boxes {
			tracker.register(boxes[i], centers[i])
		}
	default:
		tracker.matchObjects(boxes, centers)
	}
	return tracker.current()
}

// matchObjects greedily assigns detections to live tracks.
// Rows are committed in ascending order of their best IoU, so weakly matched tracks pick first.
func (tracker *TTLTracker) matchObjects(boxes []BBox, centers []Point) {
	ids := make([]int, len(tracker.order))
	copy(ids, tracker.order)
	trackBoxes := make([]BBox, len(ids))
	for i, id := range ids {
		trackBoxes[i] = tracker.objects[id].box
	}

	bestCols, bestIoU := rowArgMax(iouMatrix(trackBoxes, boxes))
	rows := make([]int, len(ids))
	for i := range rows {
		rows[i] = i
	}
	sort.SliceStable(rows, func(a, b int) bool {
		return bestIoU[rows[a]] < bestIoU[rows[b]]
	})

	usedRows := make([]bool, len(ids))
	usedCols := make([]bool, len(boxes))
	for _, row := range rows {
		col := bestCols[row]
		if usedRows[row] || usedCols[col] {
			continue
		}
		if bestIoU[row] < tracker.matchThreshold {
			continue
		}
		tracker.objects[ids[row]].match(boxes[col], centers[col], tracker.aliveDuration)
		usedRows[row] = true
		usedCols[col] = true
	}

	// Only one of branches is executed unless independent lifecycle is enabled
	ageUnmatched := len(ids) >= len(boxes)
	spawnUnmatched := !ageUnmatched
	if tracker.independentLifecycle {
		ageUnmatched, spawnUnmatched = true, true
	}

	if ageUnmatched {
		unmatched := make([]int, 0, len(ids))
		for row, used := range usedRows {
			if !used {
				unmatched = append(unmatched, ids[row])
			}
		}
		tracker.ageObjects(unmatched)
	}
	if spawnUnmatched {
		for col, used := range usedCols {
			if !used {
				tracker.register(boxes[col], centers[col])
			}
		}
	}
}

// register creates new track
func (tracker *TTLTracker) register(box BBox, center Point) {
	id := tracker.nextID
	tracker.nextID++
	tracker.objects[id] = newTrack(id, box, center, tracker.aliveDuration)
	tracker.order = append(tracker.order, id)
}

// ageObjects decrements ttl of given tracks and removes expired ones
func (tracker *TTLTracker) ageObjects(ids []int) {
	expired := make(map[int]struct{})
	for _, id := range ids {
		if tracker.objects[id].age() {
			expired[id] = struct{}{}
		}
	}
	if len(expired) == 0 {
		return
	}
	alive := tracker.order[:0]
	for _, id := range tracker.order {
		if _, ok := expired[id]; ok {
			delete(tracker.objects, id)
			continue
		}
		alive = append(alive, id)
	}
	tracker.order = alive
}

// current returns copies of boxes and paths in creation order
func (tracker *TTLTracker) current() ([]BBox, [][]Point) {
	boxes := make([]BBox, 0, len(tracker.order))
	paths := make([][]Point, 0, len(tracker.order))
	for _, id := range tracker.order {
		track := tracker.objects[id]
		path := make([]Point, len(track.path))
		copy(path, track.path)
		boxes = append(boxes, track.box)
		paths = append(paths, path)
	}
	return boxes, paths
}
