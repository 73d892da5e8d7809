package comparison

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"
)

var (
	ErrLoopStopped = errors.New("comparison: loop stopped")
	ErrLoopStarted = errors.New("comparison: loop already started")
)

type EventKind int

const (
	EventPointerDown EventKind = iota
	EventPointerMove
	EventPointerUp
	EventPointerCancel
	EventKey
	EventNext
	EventPrevious
	EventSelect
)

// Target identifies which part of the slider received a pointer event.
type Target int

const (
	TargetSurface Target = iota
	TargetHandle
)

// Event is renderer input. Only the fields relevant to Kind are read.
type Event struct {
	Kind    EventKind
	Target  Target
	Pointer PointerID
	ClientX float64
	Rect    Rect
	Key     Key
	Index   int
}

func PointerDown(target Target, pointer PointerID, clientX float64, rect Rect) Event {
	return Event{Kind: EventPointerDown, Target: target, Pointer: pointer, ClientX: clientX, Rect: rect}
}

func PointerMove(pointer PointerID, clientX float64, rect Rect) Event {
	return Event{Kind: EventPointerMove, Pointer: pointer, ClientX: clientX, Rect: rect}
}

func PointerUp(pointer PointerID) Event {
	return Event{Kind: EventPointerUp, Pointer: pointer}
}

func PointerCancel() Event {
	return Event{Kind: EventPointerCancel}
}

func KeyDown(key Key) Event {
	return Event{Kind: EventKey, Key: key}
}

func Select(index int) Event {
	return Event{Kind: EventSelect, Index: index}
}

type Option func(*Loop)

// WithInterval overrides AutoplayInterval.
func WithInterval(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

func WithoutAutoplay() Option {
	return func(l *Loop) {
		l.autoplay = false
	}
}

// WithTicks replaces the internal ticker with an external tick source.
func WithTicks(ticks <-chan time.Time) Option {
	return func(l *Loop) {
		l.ticks = ticks
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Loop is the single owner of a Controller for one mount. Input events and
// autoplay ticks are applied in one goroutine, so the controller needs no
// locking. A Loop runs at most once.
type Loop struct {
	ctrl     *Controller
	events   chan Event
	updates  chan State
	done     chan struct{}
	ticks    <-chan time.Time
	interval time.Duration
	autoplay bool
	started  atomic.Bool
	logger   *slog.Logger
}

func NewLoop(ctrl *Controller, opts ...Option) *Loop {
	l := &Loop{
		ctrl:     ctrl,
		events:   make(chan Event),
		updates:  make(chan State, 1),
		done:     make(chan struct{}),
		interval: AutoplayInterval,
		autoplay: true,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Updates delivers state snapshots. Only the latest unread snapshot is kept.
// The channel is closed when Run returns.
func (l *Loop) Updates() <-chan State {
	return l.updates
}

// Send hands an event to the running loop. It blocks until the loop accepts
// the event, the loop stops, or ctx is done.
func (l *Loop) Send(ctx context.Context, ev Event) error {
	select {
	case l.events <- ev:
		return nil
	case <-l.done:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes events until ctx is cancelled. On return the ticker is
// stopped, any drag is cancelled and Updates is closed.
func (l *Loop) Run(ctx context.Context) error {
	if !l.started.CompareAndSwap(false, true) {
		return ErrLoopStarted
	}
	defer close(l.done)
	defer close(l.updates)
	defer l.ctrl.DragCancel()

	var ticks <-chan time.Time
	if l.autoplay {
		if l.ticks != nil {
			ticks = l.ticks
		} else {
			ticker := time.NewTicker(l.interval)
			defer ticker.Stop()
			ticks = ticker.C
		}
	}

	l.logger.DebugContext(ctx, "comparison loop started", "slides", l.ctrl.Len(), "autoplay", l.autoplay)
	l.publish()

	for {
		select {
		case <-ctx.Done():
			l.logger.DebugContext(ctx, "comparison loop stopped", "reason", ctx.Err())
			return ctx.Err()
		case ev := <-l.events:
			if l.apply(ev) {
				l.publish()
			}
		case <-ticks:
			if l.ctrl.Tick() {
				l.publish()
			}
		}
	}
}

func (l *Loop) apply(ev Event) bool {
	switch ev.Kind {
	case EventPointerDown:
		// the surface never starts a drag, only the handle does
		if ev.Target != TargetHandle {
			return false
		}
		return l.ctrl.DragStart(ev.Pointer, ev.ClientX, ev.Rect)
	case EventPointerMove:
		return l.ctrl.DragMove(ev.Pointer, ev.ClientX, ev.Rect)
	case EventPointerUp:
		return l.ctrl.DragEnd(ev.Pointer)
	case EventPointerCancel:
		return l.ctrl.DragCancel()
	case EventKey:
		return l.ctrl.HandleKey(ev.Key)
	case EventNext:
		l.ctrl.Next()
	case EventPrevious:
		l.ctrl.Previous()
	case EventSelect:
		l.ctrl.GoTo(ev.Index)
	default:
		return false
	}
	return true
}

func (l *Loop) publish() {
	s := l.ctrl.Snapshot()
	select {
	case l.updates <- s:
		return
	default:
	}
	// drop the stale snapshot; Run is the only sender so the retry fits
	select {
	case <-l.updates:
	default:
	}
	select {
	case l.updates <- s:
	default:
	}
}
