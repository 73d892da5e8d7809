package preview

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/0tsuro/SparkCar/internal/comparison"
	"github.com/0tsuro/SparkCar/internal/site"
)

var _ = Describe("Model", func() {
	var (
		ctx     context.Context
		cancel  context.CancelFunc
		loop    *comparison.Loop
		m       *Model
		pending tea.Cmd
		runErr  chan error
	)

	// await feeds loop snapshots into the model until one matches.
	await := func(match func(comparison.State) bool) {
		for i := 0; i < 10; i++ {
			msgs := make(chan tea.Msg, 1)
			cmd := pending
			go func() { msgs <- cmd() }()

			var msg tea.Msg
			Eventually(msgs).WithTimeout(2 * time.Second).Should(Receive(&msg))
			Expect(msg).To(BeAssignableToTypeOf(stateMsg{}))

			_, pending = m.Update(msg)
			if match(m.state) {
				return
			}
		}
		Fail("no matching state received")
	}

	BeforeEach(func() {
		slides := site.DefaultSlideSet()
		ctrl, err := comparison.NewController(slides)
		Expect(err).NotTo(HaveOccurred())

		ctx, cancel = context.WithCancel(context.Background())
		loop = comparison.NewLoop(ctrl, comparison.WithoutAutoplay())
		runErr = make(chan error, 1)
		go func() { runErr <- loop.Run(ctx) }()

		m = NewModel(ctx, cancel, loop, slides)
		m.Update(tea.WindowSizeMsg{Width: 104, Height: 30})
		pending = m.Init()
		await(func(s comparison.State) bool { return s.Position == 50 })
	})

	AfterEach(func() {
		cancel()
		Eventually(runErr).Should(Receive())
	})

	It("changes slide with the arrow keys", func() {
		m.Update(tea.KeyMsg{Type: tea.KeyRight})
		await(func(s comparison.State) bool { return s.ActiveIndex == 1 })

		m.Update(tea.KeyMsg{Type: tea.KeyLeft})
		m.Update(tea.KeyMsg{Type: tea.KeyLeft})
		await(func(s comparison.State) bool { return s.ActiveIndex == 2 })
		Expect(m.state.Direction).To(Equal(comparison.Backward))
	})

	It("jumps to a slide with the digit keys", func() {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
		await(func(s comparison.State) bool { return s.ActiveIndex == 2 })
	})

	It("drags the boundary from the handle", func() {
		Expect(m.handleColumn()).To(Equal(52))

		m.Update(tea.MouseMsg{X: 52, Y: barRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		m.Update(tea.MouseMsg{X: 101, Y: barRow, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
		await(func(s comparison.State) bool { return s.Dragging && s.Position == 100 })
		Expect(m.View()).To(ContainSubstring("avant 100%"))

		m.Update(tea.MouseMsg{X: 101, Y: barRow, Action: tea.MouseActionRelease})
		await(func(s comparison.State) bool { return !s.Dragging })
		Expect(m.state.Position).To(Equal(100.0))
	})

	It("does not start a drag away from the handle", func() {
		m.Update(tea.MouseMsg{X: 10, Y: barRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		m.Update(tea.MouseMsg{X: 20, Y: barRow, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
		m.Update(tea.KeyMsg{Type: tea.KeyRight})

		await(func(s comparison.State) bool { return s.ActiveIndex == 1 })
		Expect(m.state.Dragging).To(BeFalse())
		Expect(m.state.Position).To(Equal(50.0))
	})

	It("stops the loop on quit", func() {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

		Expect(cmd()).To(Equal(tea.Quit()))
		Eventually(runErr).Should(Receive(MatchError(context.Canceled)))
		runErr <- context.Canceled
	})

	It("renders the active pair", func() {
		view := m.View()

		Expect(view).To(ContainSubstring(site.DefaultSlides()[0].Title))
		Expect(view).To(ContainSubstring("●"))
	})
})

var _ = Describe("indicatorKey", func() {
	DescribeTable("maps digits to slide indices",
		func(key string, n, want int, ok bool) {
			got, gotOK := indicatorKey(key, n)
			Expect(gotOK).To(Equal(ok))
			if ok {
				Expect(got).To(Equal(want))
			}
		},
		Entry("first", "1", 3, 0, true),
		Entry("last", "3", 3, 2, true),
		Entry("out of range", "4", 3, 0, false),
		Entry("zero", "0", 3, 0, false),
		Entry("letter", "a", 3, 0, false),
		Entry("multi-character", "12", 3, 0, false),
	)
})
