package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/LdDl/ttl-tracker/mot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplay(t *testing.T) {
	// Object is seen twice, vanishes for five frames and a new one shows up
	input := `frame;cx;cy;w;h
0;5;5;10;10
1;5;5;10;10
7;50;50;10;10
`
	out := &bytes.Buffer{}
	frames, created, err := replay(mot.DefaultTrackerConfig(), strings.NewReader(input), out, 2.0, 2.0)
	require.NoError(t, err)
	assert.Equal(t, 8, frames)
	assert.Equal(t, 2, created)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// header + frames 0..5 with the first track + frame 7 with the second one
	require.Len(t, lines, 8)
	assert.Equal(t, "run;frame;track;x1;y1;x2;y2;path", lines[0])

	first := strings.Split(lines[1], ";")
	assert.Equal(t, []string{"0", "0", "0", "0", "20", "20", "10,10"}, first[1:])

	last := strings.Split(lines[7], ";")
	assert.Equal(t, []string{"7", "1", "90", "90", "110", "110", "100,100"}, last[1:])
}

func TestReplayInvalidConfig(t *testing.T) {
	cfg := &mot.TrackerConfig{AliveDuration: new(int)}
	_, _, err := replay(cfg, strings.NewReader(""), &bytes.Buffer{}, 1, 1)
	assert.ErrorIs(t, err, mot.ErrInvalidConfig)
}
