package comparison_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/0tsuro/SparkCar/internal/comparison"
)

var _ = Describe("Loop", func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc
		ticks  chan time.Time
		loop   *comparison.Loop
		ctrl   *comparison.Controller
		runErr chan error
		rect   comparison.Rect
	)

	// latest drains the updates channel until a received snapshot matches.
	latest := func(match func(comparison.State) bool) comparison.State {
		var (
			got  comparison.State
			seen bool
		)
		Eventually(func() bool {
			select {
			case s, ok := <-loop.Updates():
				if ok {
					got, seen = s, true
				}
			default:
			}
			return seen && match(got)
		}).WithTimeout(2 * time.Second).Should(BeTrue())
		return got
	}

	send := func(ev comparison.Event) {
		Expect(loop.Send(ctx, ev)).To(Succeed())
	}

	BeforeEach(func() {
		var err error
		ctrl, err = comparison.NewController(threeSlides())
		Expect(err).NotTo(HaveOccurred())

		ctx, cancel = context.WithCancel(context.Background())
		ticks = make(chan time.Time)
		rect = comparison.Rect{Left: 0, Width: 100}
		loop = comparison.NewLoop(ctrl, comparison.WithTicks(ticks))

		runErr = make(chan error, 1)
		go func() { runErr <- loop.Run(ctx) }()

		latest(func(s comparison.State) bool { return s.Position == 50 })
	})

	AfterEach(func() {
		cancel()
		Eventually(runErr).Should(Receive(MatchError(context.Canceled)))
	})

	It("starts a drag only from the handle", func() {
		send(comparison.PointerDown(comparison.TargetSurface, 1, 80, rect))
		send(comparison.PointerMove(1, 90, rect))
		send(comparison.KeyDown("Shift"))

		Consistently(loop.Updates(), 50*time.Millisecond).ShouldNot(Receive())

		send(comparison.PointerDown(comparison.TargetHandle, 1, 80, rect))
		s := latest(func(s comparison.State) bool { return s.Dragging })
		Expect(s.Position).To(Equal(80.0))
		Expect(*s.ActivePointer).To(Equal(comparison.PointerID(1)))
	})

	It("applies the last move of a burst", func() {
		send(comparison.PointerDown(comparison.TargetHandle, 3, 10, rect))
		for x := 11.0; x <= 60; x++ {
			send(comparison.PointerMove(3, x, rect))
		}

		latest(func(s comparison.State) bool { return s.Position == 60 })
	})

	It("skips autoplay ticks while dragging", func() {
		send(comparison.PointerDown(comparison.TargetHandle, 1, 30, rect))
		latest(func(s comparison.State) bool { return s.Dragging })

		ticks <- time.Now()
		send(comparison.PointerUp(1))
		s := latest(func(s comparison.State) bool { return !s.Dragging })
		Expect(s.ActiveIndex).To(Equal(0))
		Expect(s.Position).To(Equal(30.0))

		ticks <- time.Now()
		s = latest(func(s comparison.State) bool { return s.ActiveIndex == 1 })
		Expect(s.Position).To(Equal(50.0))
		Expect(s.Direction).To(Equal(comparison.Forward))
	})

	It("navigates from keys, arrows and indicators", func() {
		send(comparison.KeyDown(comparison.KeyArrowLeft))
		latest(func(s comparison.State) bool { return s.ActiveIndex == 2 })

		send(comparison.Event{Kind: comparison.EventNext})
		latest(func(s comparison.State) bool { return s.ActiveIndex == 0 })

		send(comparison.Event{Kind: comparison.EventPrevious})
		latest(func(s comparison.State) bool { return s.ActiveIndex == 2 })

		send(comparison.Select(1))
		s := latest(func(s comparison.State) bool { return s.ActiveIndex == 1 })
		Expect(s.Direction).To(Equal(comparison.Backward))
	})

	It("does not reset the autoplay phase on manual navigation", func() {
		send(comparison.KeyDown(comparison.KeyArrowRight))
		latest(func(s comparison.State) bool { return s.ActiveIndex == 1 })

		// the next tick still advances immediately instead of waiting a full interval
		ticks <- time.Now()
		latest(func(s comparison.State) bool { return s.ActiveIndex == 2 })
	})

	It("cancels the drag and closes updates when stopped", func() {
		send(comparison.PointerDown(comparison.TargetHandle, 1, 30, rect))
		latest(func(s comparison.State) bool { return s.Dragging })

		cancel()
		Eventually(runErr).Should(Receive(MatchError(context.Canceled)))
		// refill so AfterEach can drain it
		runErr <- context.Canceled

		Expect(ctrl.Dragging()).To(BeFalse())
		Eventually(loop.Updates()).Should(BeClosed())
		Expect(loop.Send(context.Background(), comparison.PointerUp(1))).To(MatchError(comparison.ErrLoopStopped))
	})

	It("refuses to run twice", func() {
		Expect(loop.Run(ctx)).To(MatchError(comparison.ErrLoopStarted))
	})
})
