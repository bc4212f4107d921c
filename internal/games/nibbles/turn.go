package nibbles

import (
	"math"

	"github.com/vovakirdan/nibbles/internal/core"
)

// padHeading maps the d-pad to a heading. Earlier entries win.
func padHeading(in core.InputFrame) (float64, bool) {
	switch {
	case in.Has(core.ActionUp):
		return core.HeadingUp, true
	case in.Has(core.ActionDown):
		return core.HeadingDown, true
	case in.Has(core.ActionLeft):
		return core.HeadingLeft, true
	case in.Has(core.ActionRight):
		return core.HeadingRight, true
	}
	return 0, false
}

const angleEps = 1e-9

// isReversal reports whether heading to points exactly opposite from.
func isReversal(from, to float64) bool {
	d := core.NormalizeAngle(to - from)
	return math.Abs(d-math.Pi) < angleEps
}

// resolveTurn updates a snake's heading from its input for this tick.
func (s *Session) resolveTurn(sn *Snake, in core.InputFrame) {
	if h, ok := padHeading(in); ok && !isReversal(sn.Heading, h) {
		sn.pending = h
		sn.hasPending = true
	}

	if s.Rules.Spinner && in.HasSpinner {
		switch {
		case !sn.seenSpinner:
			sn.seenSpinner = true
		case in.Spinner != sn.lastSpinner:
			sn.Heading = core.NormalizeAngle(sn.Heading + in.Spinner - sn.lastSpinner)
			sn.quanta = 0
		}
		sn.lastSpinner = in.Spinner
	}

	switch {
	case !s.Rules.Quantized():
		s.applyPendingTurn(sn)
	case sn.hasPending && sn.quanta == 0:
		// A pad press takes steering back from the spinner.
		s.applyPendingTurn(sn)
		sn.quanta = s.Rules.Quantization
	}
}

// applyPendingTurn applies a sticky pad request unless it has become a
// reversal since it was made.
func (s *Session) applyPendingTurn(sn *Snake) {
	if !sn.hasPending {
		return
	}
	if !isReversal(sn.Heading, sn.pending) {
		sn.Heading = sn.pending
	}
	sn.hasPending = false
}
