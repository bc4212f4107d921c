package storage

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/nibbles/internal/core"
)

// SeatInput is one player's input for one tick.
type SeatInput struct {
	Bits       uint16  `msgpack:"b"`
	Spinner    float64 `msgpack:"s,omitempty"`
	HasSpinner bool    `msgpack:"h,omitempty"`
}

// Frame is the journaled input of one tick.
type Frame struct {
	System uint16                     `msgpack:"y,omitempty"`
	Seats  [core.MaxPlayers]SeatInput `msgpack:"p"`
}

// FrameOf captures a tick's input.
func FrameOf(in core.MultiInputFrame) Frame {
	fr := Frame{System: in.System.Bits()}
	for id := range core.MaxPlayers {
		p := in.Player(core.PlayerID(id))
		fr.Seats[id] = SeatInput{Bits: p.Bits(), Spinner: p.Spinner, HasSpinner: p.HasSpinner}
	}
	return fr
}

// Input rebuilds the tick's input.
func (fr Frame) Input() core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	in.System = core.FrameFromBits(fr.System)
	for id, seat := range fr.Seats {
		if seat.Bits == 0 && !seat.HasSpinner {
			continue
		}
		f := core.FrameFromBits(seat.Bits)
		if seat.HasSpinner {
			f.SetSpinner(seat.Spinner)
		}
		in.SetPlayer(core.PlayerID(id), f)
	}
	return in
}

func encodeFrames(frames []Frame) ([]byte, error) {
	data, err := msgpack.Marshal(frames)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot encode frames: %w", err)
	}
	return data, nil
}

func decodeFrames(data []byte) ([]Frame, error) {
	var frames []Frame
	if err := msgpack.Unmarshal(data, &frames); err != nil {
		return nil, fmt.Errorf("storage: cannot decode frames: %w", err)
	}
	return frames, nil
}
