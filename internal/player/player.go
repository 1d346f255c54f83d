// Package player drives playback across a year series: play, pause and
// scrub over a fixed-cadence tick. The player owns no timers; the UI
// schedules ticks tagged with the player's generation, and any generation
// bump (stop, scrub, reload) makes the pending tick stale so it is dropped
// instead of firing.
package player

import "time"

// Interval is the fixed playback cadence between year advances.
const Interval = 2 * time.Second

// Player tracks the current year index and playback state for one loaded
// series. All methods are for single-goroutine use from the UI event loop.
type Player struct {
	length     int
	index      int
	playing    bool
	generation int
}

// New returns a stopped player positioned at index 0.
func New(length int) *Player {
	return &Player{length: length}
}

// Len reports the number of entries in the loaded series.
func (p *Player) Len() int { return p.length }

// Index reports the current position.
func (p *Player) Index() int { return p.index }

// Playing reports whether playback is running.
func (p *Player) Playing() bool { return p.playing }

// Generation identifies the currently valid tick stream. Ticks carrying any
// other generation are stale and must be ignored.
func (p *Player) Generation() int { return p.generation }

// Start begins playback and returns the generation to tag scheduled ticks
// with. It is a guarded no-op when already playing or when the series has
// at most one entry.
func (p *Player) Start() (int, bool) {
	if p.playing || p.length <= 1 {
		return p.generation, false
	}
	p.playing = true
	p.generation++
	return p.generation, true
}

// Stop halts playback. The generation bump invalidates the pending tick,
// so exactly nothing fires after a stop. Guarded no-op when not playing.
func (p *Player) Stop() bool {
	if !p.playing {
		return false
	}
	p.playing = false
	p.generation++
	return true
}

// Tick advances the index cyclically. Ticks from a stale generation, or
// arriving after a stop, are dropped and report ok=false.
func (p *Player) Tick(gen int) (int, bool) {
	if !p.playing || gen != p.generation {
		return p.index, false
	}
	p.index = (p.index + 1) % p.length
	return p.index, true
}

// Scrub stops playback if running, then jumps to index i. It reports
// whether the position actually changed; jumping to the current index or
// out of range changes nothing (the stop still applies).
func (p *Player) Scrub(i int) (int, bool) {
	if p.playing {
		p.Stop()
	}
	if i < 0 || i >= p.length || i == p.index {
		return p.index, false
	}
	p.index = i
	return p.index, true
}

// Reset rebinds the player to a newly loaded series of n entries, stopped
// at position start. Pending ticks from the old series become stale.
func (p *Player) Reset(n, start int) {
	p.playing = false
	p.generation++
	p.length = n
	p.index = 0
	if start > 0 && start < n {
		p.index = start
	}
}
