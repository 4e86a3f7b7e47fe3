package mot

// Track is a persistent identity associated with a sequence of matched detections.
// Values returned by TTLTracker are copies: mutating them does not affect tracker state.
type Track struct {
	id   int
	box  BBox
	path []Point
	ttl  int
}

func newTrack(id int, box BBox, center Point, ttl int) *Track {
	track := Track{
		id:   id,
		box:  box,
		path: make([]Point, 0, 16),
		ttl:  ttl,
	}
	track.path = append(track.path, center)
	return &track
}

// GetID returns track's identifier
func (track *Track) GetID() int {
	return track.id
}

// GetBBox returns track's current bounding box (corner form)
func (track *Track) GetBBox() BBox {
	return track.box
}

// GetPath returns center points accumulated over the track's lifetime, oldest first
func (track *Track) GetPath() []Point {
	return track.path
}

// GetTTL returns how many unmatched frames the track may still survive
func (track *Track) GetTTL() int {
	return track.ttl
}

// match replaces box, extends path and resets ttl
func (track *Track) match(box BBox, center Point, aliveDuration int) {
	track.box = box
	track.path = append(track.path, center)
	track.ttl = aliveDuration
}

// age decrements ttl and reports whether the track has expired
func (track *Track) age() bool {
	track.ttl--
	return track.ttl <= 0
}

func (track *Track) clone() Track {
	path := make([]Point, len(track.path))
	copy(path, track.path)
	return Track{
		id:   track.id,
		box:  track.box,
		path: path,
		ttl:  track.ttl,
	}
}

// Scale returns copy of the track with box and path multiplied by given factors
func (track *Track) Scale(sx, sy float64) Track {
	path := make([]Point, len(track.path))
	for i, pt := range track.path {
		path[i] = pt.Scale(sx, sy)
	}
	return Track{
		id:   track.id,
		box:  track.box.Scale(sx, sy),
		path: path,
		ttl:  track.ttl,
	}
}
