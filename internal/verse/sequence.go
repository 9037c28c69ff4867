package verse

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded is reported for a call that a newer call on the same slot replaced.
var ErrSuperseded = errors.New("superseded by a newer request")

// Sequencer hands out monotonic tokens per logical slot, such as one client's
// verse view. Starting a call cancels the slot's previous call.
type Sequencer struct {
	mu    sync.Mutex
	next  uint64
	slots map[string]*slotState
}

type slotState struct {
	token  uint64
	cancel context.CancelFunc
}

func NewSequencer() *Sequencer {
	return &Sequencer{slots: make(map[string]*slotState)}
}

// Ticket tracks one call. A nil Ticket is never superseded.
type Ticket struct {
	seq    *Sequencer
	slot   string
	token  uint64
	cancel context.CancelFunc
}

// Begin starts a call on slot and returns the context it must run under. An
// empty slot opts out of sequencing.
func (s *Sequencer) Begin(ctx context.Context, slot string) (context.Context, *Ticket) {
	if slot == "" {
		return ctx, nil
	}
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	if prev, ok := s.slots[slot]; ok {
		prev.cancel()
	}
	s.slots[slot] = &slotState{token: s.next, cancel: cancel}
	return ctx, &Ticket{seq: s, slot: slot, token: s.next, cancel: cancel}
}

// Superseded reports whether a newer call has begun on the ticket's slot.
func (t *Ticket) Superseded() bool {
	if t == nil {
		return false
	}
	t.seq.mu.Lock()
	defer t.seq.mu.Unlock()
	cur, ok := t.seq.slots[t.slot]
	return !ok || cur.token != t.token
}

// Done releases the ticket's context and clears its slot if it is still the latest.
func (t *Ticket) Done() {
	if t == nil {
		return
	}
	t.cancel()
	t.seq.mu.Lock()
	defer t.seq.mu.Unlock()
	if cur, ok := t.seq.slots[t.slot]; ok && cur.token == t.token {
		delete(t.seq.slots, t.slot)
	}
}
