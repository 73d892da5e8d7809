package comparison

import (
	"errors"
	"math"
	"time"

	"github.com/0tsuro/SparkCar/internal/model"
)

const (
	// InitialPosition is the reveal boundary on mount and after every slide change.
	InitialPosition = 50.0

	// AutoplayInterval is the wall-clock period between automatic advances.
	AutoplayInterval = 8 * time.Second
)

var ErrEmptySlideSet = errors.New("comparison: slide set is empty")

type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

type PointerID int64

type Key string

const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// Rect is the horizontal extent of the slider container in client coordinates.
type Rect struct {
	Left  float64
	Width float64
}

// SlideSet is an ordered, non-empty, read-only list of pairs.
type SlideSet struct {
	pairs []model.SlidePair
}

func NewSlideSet(pairs ...model.SlidePair) (SlideSet, error) {
	if len(pairs) == 0 {
		return SlideSet{}, ErrEmptySlideSet
	}
	owned := make([]model.SlidePair, len(pairs))
	for i, p := range pairs {
		owned[i] = p.Clone()
	}
	return SlideSet{pairs: owned}, nil
}

func (s SlideSet) Len() int {
	return len(s.pairs)
}

// At returns a copy of the i-th pair; changing it leaves the set untouched.
func (s SlideSet) At(i int) model.SlidePair {
	return s.pairs[i].Clone()
}

// State is a value snapshot handed to renderers.
type State struct {
	Position      float64
	ActiveIndex   int
	Direction     Direction
	Dragging      bool
	ActivePointer *PointerID
}

// RevealInset is the right-hand inset, in percent, of the "before" layer.
func (s State) RevealInset() float64 {
	return 100 - s.Position
}

// Controller turns pointer, keyboard and timer input into slider state.
// It is not safe for concurrent use: a single goroutine (see Loop) owns it.
type Controller struct {
	slides        SlideSet
	position      float64
	activeIndex   int
	direction     Direction
	dragging      bool
	activePointer PointerID
}

func NewController(slides SlideSet) (*Controller, error) {
	if slides.Len() == 0 {
		return nil, ErrEmptySlideSet
	}
	return &Controller{
		slides:    slides,
		position:  InitialPosition,
		direction: Forward,
	}, nil
}

// PositionFromPointerX maps a client X coordinate to a percentage of the
// container width. The result is always within [0, 100]; degenerate
// geometry (zero, negative, NaN or infinite width, NaN inputs) yields 0.
func PositionFromPointerX(clientX float64, rect Rect) float64 {
	if !(rect.Width > 0) || math.IsInf(rect.Width, 1) {
		return 0
	}
	localX := clamp(clientX-rect.Left, 0, rect.Width)
	return clamp(localX/rect.Width*100, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v):
		return lo
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

// UpdateFromPointerX overwrites the position from a pointer coordinate.
func (c *Controller) UpdateFromPointerX(clientX float64, rect Rect) float64 {
	c.position = PositionFromPointerX(clientX, rect)
	return c.position
}

// DragStart begins a drag from the handle. The start coordinate is applied
// immediately so a press without movement still moves the boundary.
// A second pointer cannot take over an ongoing drag.
func (c *Controller) DragStart(pointer PointerID, clientX float64, rect Rect) bool {
	if c.dragging && pointer != c.activePointer {
		return false
	}
	c.dragging = true
	c.activePointer = pointer
	c.UpdateFromPointerX(clientX, rect)
	return true
}

// DragMove updates the position for the pointer that started the drag.
// Moves from any other pointer, or while idle, are ignored.
func (c *Controller) DragMove(pointer PointerID, clientX float64, rect Rect) bool {
	if !c.dragging || pointer != c.activePointer {
		return false
	}
	c.UpdateFromPointerX(clientX, rect)
	return true
}

// DragEnd returns to idle when the active pointer is released.
func (c *Controller) DragEnd(pointer PointerID) bool {
	if !c.dragging || pointer != c.activePointer {
		return false
	}
	c.releasePointer()
	return true
}

// DragCancel returns to idle regardless of which pointer was active.
func (c *Controller) DragCancel() bool {
	if !c.dragging {
		return false
	}
	c.releasePointer()
	return true
}

func (c *Controller) releasePointer() {
	c.dragging = false
	c.activePointer = 0
}

// ChangeSlide activates index modulo the slide count and recentres the boundary.
func (c *Controller) ChangeSlide(index int, dir Direction) {
	n := c.slides.Len()
	c.activeIndex = ((index % n) + n) % n
	c.position = InitialPosition
	c.direction = dir
}

func (c *Controller) Next() {
	c.ChangeSlide((c.activeIndex+1)%c.slides.Len(), Forward)
}

func (c *Controller) Previous() {
	n := c.slides.Len()
	c.ChangeSlide((c.activeIndex-1+n)%n, Backward)
}

// GoTo selects a slide directly. Selecting the active slide keeps the index
// but still recentres the boundary.
func (c *Controller) GoTo(index int) {
	dir := Backward
	if index > c.activeIndex {
		dir = Forward
	}
	c.ChangeSlide(index, dir)
}

// HandleKey maps arrow keys to navigation and reports whether the key was used.
func (c *Controller) HandleKey(key Key) bool {
	switch key {
	case KeyArrowLeft:
		c.Previous()
	case KeyArrowRight:
		c.Next()
	default:
		return false
	}
	return true
}

// Tick is the autoplay callback: it advances unless a drag is in progress.
func (c *Controller) Tick() bool {
	if c.dragging {
		return false
	}
	c.Next()
	return true
}

func (c *Controller) Position() float64 {
	return c.position
}

func (c *Controller) ActiveIndex() int {
	return c.activeIndex
}

func (c *Controller) Direction() Direction {
	return c.direction
}

func (c *Controller) Dragging() bool {
	return c.dragging
}

func (c *Controller) Len() int {
	return c.slides.Len()
}

func (c *Controller) CurrentPair() model.SlidePair {
	return c.slides.At(c.activeIndex)
}

func (c *Controller) RevealInset() float64 {
	return 100 - c.position
}

func (c *Controller) Snapshot() State {
	s := State{
		Position:    c.position,
		ActiveIndex: c.activeIndex,
		Direction:   c.direction,
		Dragging:    c.dragging,
	}
	if c.dragging {
		p := c.activePointer
		s.ActivePointer = &p
	}
	return s
}
