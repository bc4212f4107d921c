// Package replay journals the per-tick input of a game and drives a game
// from a journal, either live in the terminal or headless.
//
// A replay is exact: the game is deterministic given its seed, its
// configuration and the sequence of input frames, so re-stepping the frames
// reproduces every tick.
package replay

import (
	"github.com/vovakirdan/nibbles/internal/core"
	"github.com/vovakirdan/nibbles/internal/registry"
	"github.com/vovakirdan/nibbles/internal/storage"
)

// Fingerprinter is implemented by games that can summarise their state in a
// single hash for replay verification.
type Fingerprinter interface {
	Fingerprint() uint64
}

// Freezer is implemented by games that ignore input in some situations that
// depend on the host, such as a terminal that is too small. Frames are
// neither stepped nor journaled while a game is frozen.
type Freezer interface {
	Frozen() bool
}

// Frozen reports whether g currently ignores input.
func Frozen(g registry.Game) bool {
	f, ok := g.(Freezer)
	return ok && f.Frozen()
}

// Fingerprint returns g's fingerprint, or 0 when it has none.
func Fingerprint(g registry.Game) uint64 {
	if f, ok := g.(Fingerprinter); ok {
		return f.Fingerprint()
	}
	return 0
}

// Recorder journals the input of a live game.
type Recorder struct {
	meta   storage.Replay
	frames []storage.Frame
}

// NewRecorder starts a journal for a game reset with cfg.
// settings is the serialized game configuration in effect.
func NewRecorder(variant string, cfg core.RuntimeConfig, players, startLevel int, settings string) *Recorder {
	return &Recorder{
		meta: storage.Replay{
			Variant:    variant,
			Seed:       cfg.Seed,
			Speed:      cfg.Speed,
			Players:    players,
			StartLevel: startLevel,
			Config:     settings,
		},
	}
}

// Record appends one stepped tick.
func (r *Recorder) Record(in core.MultiInputFrame) {
	r.frames = append(r.frames, storage.FrameOf(in))
}

// Len returns the number of journaled ticks.
func (r *Recorder) Len() int {
	return len(r.frames)
}

// Finish builds the replay, stamping it with the game's final fingerprint.
func (r *Recorder) Finish(g registry.Game) storage.Replay {
	out := r.meta
	out.Frames = append([]storage.Frame(nil), r.frames...)
	out.Ticks = len(out.Frames)
	out.FieldHash = Fingerprint(g)
	return out
}

// Player feeds journaled frames back one tick at a time.
type Player struct {
	frames []storage.Frame
	pos    int
}

// NewPlayer creates a player positioned at the first frame.
func NewPlayer(r *storage.Replay) *Player {
	return &Player{frames: r.Frames}
}

// Next returns the next frame. ok is false once the journal is exhausted.
func (p *Player) Next() (in core.MultiInputFrame, ok bool) {
	if p.pos >= len(p.frames) {
		return core.NewMultiInputFrame(), false
	}
	in = p.frames[p.pos].Input()
	p.pos++
	return in, true
}

// Pos returns how many frames have been played.
func (p *Player) Pos() int {
	return p.pos
}

// Len returns the total number of frames.
func (p *Player) Len() int {
	return len(p.frames)
}

// Done reports whether every frame has been played.
func (p *Player) Done() bool {
	return p.pos >= len(p.frames)
}

// Result is the outcome of a headless run.
type Result struct {
	Ticks       int
	State       core.GameState
	Fingerprint uint64
	Verified    bool // fingerprint matches the one journaled
}

// Simulate resets g with the replay's seed and speed and steps every frame
// on a full-size screen.
func Simulate(g registry.Game, r *storage.Replay, screenW, screenH int) Result {
	g.Reset(core.RuntimeConfig{
		ScreenW: screenW,
		ScreenH: screenH,
		Speed:   r.Speed,
		Seed:    r.Seed,
	})

	var res Result
	p := NewPlayer(r)
	for {
		in, ok := p.Next()
		if !ok {
			break
		}
		res.State = g.Step(in).State
		res.Ticks++
	}
	res.Fingerprint = Fingerprint(g)
	res.Verified = res.Fingerprint == r.FieldHash
	return res
}
