// Package viewstate holds the quote widget's state machine.
//
// A State is an immutable value: every transition returns a new State and
// leaves the receiver untouched. The presentation layer owns exactly one
// current State and replaces it on each transition.
package viewstate

import (
	"time"

	"github.com/diogo/quoteweb/internal/api"
	"github.com/diogo/quoteweb/internal/models"
)

// CopyResetDelay is how long the copied indicator stays on
const CopyResetDelay = 2 * time.Second

// FallbackMessage is shown when every remote source failed
const FallbackMessage = "Couldn't reach the quote service, showing a saved quote instead."

// Phase is the active view phase
type Phase int

const (
	Loading Phase = iota
	Ready
	Error
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// State is one snapshot of the widget
type State struct {
	phase   Phase
	quote   models.Quote
	message string
	source  string
	copied  bool

	// token changes whenever a new quote is applied, even an identical one
	token uint64
	// request identifies the latest fetch; older results are discarded
	request uint64
	// copySeq identifies the latest copy; older reset timers are ignored
	copySeq uint64
}

// Initial returns the state on first load
func Initial() State {
	return State{phase: Loading}
}

func (s State) Phase() Phase { return s.phase }
func (s State) Quote() models.Quote { return s.quote }
func (s State) Message() string { return s.message }
func (s State) Source() string { return s.source }
func (s State) Copied() bool { return s.copied }
func (s State) Token() uint64 { return s.token }
func (s State) Request() uint64 { return s.request }
func (s State) CopySeq() uint64 { return s.copySeq }
func (s State) HasQuote() bool { return !s.quote.IsZero() }
func (s State) IsLoading() bool { return s.phase == Loading }
func (s State) CanCopy() bool { return s.phase != Loading && s.HasQuote() }

// Begin starts a new fetch. The previous quote stays visible while loading.
func (s State) Begin() State {
	s.phase = Loading
	s.message = ""
	s.copied = false
	s.request++
	return s
}

// Resolve applies the result of fetch request. It returns false, and the
// unchanged state, when request is not the latest one.
func (s State) Resolve(request uint64, res api.FetchResult) (State, bool) {
	if request != s.request || s.phase != Loading {
		return s, false
	}

	s.quote = res.Quote
	s.source = res.Source
	s.copied = false
	s.token++

	if res.Fallback {
		s.phase = Error
		s.message = FallbackMessage
	} else {
		s.phase = Ready
		s.message = ""
	}

	return s, true
}

// Copy marks the quote as copied and returns the sequence number the reset
// timer must present to ClearCopied. It is a no-op while loading.
func (s State) Copy() (State, uint64, bool) {
	if !s.CanCopy() {
		return s, s.copySeq, false
	}
	s.copied = true
	s.copySeq++
	return s, s.copySeq, true
}

// ClearCopied turns the copied indicator off if seq is the latest copy
func (s State) ClearCopied(seq uint64) State {
	if seq == s.copySeq {
		s.copied = false
	}
	return s
}
