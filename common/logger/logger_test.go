package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"unicode/utf8"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/0tsuro/SparkCar/common/logger"
)

var _ = Describe("TraceHandler", func() {
	var (
		buf *bytes.Buffer
		log *slog.Logger
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		log = slog.New(logger.NewTraceHandler(slog.NewTextHandler(buf, nil)))
	})

	It("adds context log fields to every record", func() {
		ctx := logger.WithLogFields(context.Background(), logger.LogFields{
			SubmissionID: logger.Ptr(int64(42)),
			Component:    "sparkcar.contact",
		})

		log.InfoContext(ctx, "dispatching")

		Expect(buf.String()).To(ContainSubstring("submission_id=42"))
		Expect(buf.String()).To(ContainSubstring("component=sparkcar.contact"))
	})

	It("omits fields that are not set", func() {
		log.InfoContext(context.Background(), "plain")

		Expect(buf.String()).NotTo(ContainSubstring("submission_id"))
		Expect(buf.String()).NotTo(ContainSubstring("trace_id"))
	})
})

var _ = Describe("WithLogFields", func() {
	It("merges fields with newer values winning", func() {
		ctx := logger.WithLogFields(context.Background(), logger.LogFields{
			Route:     logger.Ptr("/api/contact"),
			Component: "sparkcar.http",
		})
		ctx = logger.WithLogFields(ctx, logger.LogFields{
			SubmissionID: logger.Ptr(int64(7)),
			Component:    "sparkcar.contact",
		})

		fields := logger.GetLogFields(ctx)
		Expect(*fields.Route).To(Equal("/api/contact"))
		Expect(*fields.SubmissionID).To(Equal(int64(7)))
		Expect(fields.Component).To(Equal("sparkcar.contact"))
	})
})

var _ = Describe("Truncate", func() {
	It("keeps short strings intact", func() {
		Expect(logger.Truncate("abc", 5)).To(Equal("abc"))
	})

	It("cuts long strings and appends an ellipsis", func() {
		Expect(logger.Truncate("abcdefgh", 3)).To(Equal("abc..."))
	})

	It("never splits a multi-byte character", func() {
		got := logger.Truncate("aé€b", 3)

		Expect(got).To(Equal("aé..."))
		Expect(utf8.ValidString(got)).To(BeTrue())
	})
})

var _ = Describe("CutUTF8", func() {
	DescribeTable("returns the longest valid prefix within the byte limit",
		func(s string, maxLen int, want string) {
			Expect(logger.CutUTF8(s, maxLen)).To(Equal(want))
		},
		Entry("fits", "abc", 3, "abc"),
		Entry("ascii cut", "abcdef", 4, "abcd"),
		Entry("inside a two-byte rune", "aé", 2, "a"),
		Entry("inside a three-byte rune", "a€", 3, "a"),
		Entry("zero limit", "abc", 0, ""),
	)
})
