package service_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/0tsuro/SparkCar/internal/model"
	"github.com/0tsuro/SparkCar/internal/service"
)

var _ = Describe("ParseSubmission", func() {
	It("trims string fields", func() {
		sub, err := service.ParseSubmission(map[string]any{
			"name":    "  Alice Martin ",
			"phone":   "\t06 11 22 33 44\n",
			"message": " Bonjour ",
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(sub).To(Equal(model.Submission{Name: "Alice Martin", Phone: "06 11 22 33 44", Message: "Bonjour"}))
	})

	It("treats missing and non-string fields as empty", func() {
		sub, err := service.ParseSubmission(map[string]any{
			"name":  42.0,
			"phone": nil,
			"extra": "ignored",
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(sub).To(Equal(model.Submission{}))
	})

	DescribeTable("rejects bodies that are not objects",
		func(raw any) {
			_, err := service.ParseSubmission(raw)
			Expect(err).To(MatchError(service.ErrMalformedInput))
		},
		Entry("nil", nil),
		Entry("string", "name=Alice"),
		Entry("number", 12.0),
		Entry("array", []any{"Alice", "0611223344"}),
		Entry("map with non-string keys", map[int]any{1: "Alice"}),
	)
})

var _ = Describe("ValidateSubmission", func() {
	It("accepts the reference submission", func() {
		errs := service.ValidateSubmission(model.Submission{
			Name:    "Al",
			Phone:   "0611223344",
			Message: "Bonjour, besoin d'un lavage",
		})

		Expect(errs).To(BeEmpty())
	})

	It("accepts a message of exactly ten characters", func() {
		errs := service.ValidateSubmission(model.Submission{Name: "Al", Phone: "0611223344", Message: "0123456789"})
		Expect(errs).To(BeEmpty())
	})

	It("collects every invalid field", func() {
		errs := service.ValidateSubmission(model.Submission{Name: "A", Phone: "0611223344", Message: "short"})

		Expect(errs).To(HaveLen(2))
		Expect(errs.Has(service.InvalidName)).To(BeTrue())
		Expect(errs.Has(service.InvalidMessage)).To(BeTrue())
		Expect(errs.Has(service.InvalidPhone)).To(BeFalse())
		Expect(errs.Fields()).To(Equal(map[string]string{
			"name":    "Le nom doit contenir au moins 2 caractères",
			"message": "Le message doit contenir au moins 10 caractères",
		}))
	})

	It("reports fields in form order", func() {
		errs := service.ValidateSubmission(model.Submission{})

		Expect(errs).To(HaveLen(3))
		Expect(errs[0].Code).To(Equal(service.InvalidName))
		Expect(errs[0].Summary).To(Equal("Nom invalide"))
		Expect(errs[1].Code).To(Equal(service.InvalidPhone))
		Expect(errs[1].Summary).To(Equal("Téléphone invalide"))
		Expect(errs[2].Code).To(Equal(service.InvalidMessage))
		Expect(errs[2].Summary).To(Equal("Message invalide"))
	})

	It("counts characters rather than bytes", func() {
		errs := service.ValidateSubmission(model.Submission{Name: "Zoé", Phone: "0611223344", Message: "Très sâle!"})
		Expect(errs).To(BeEmpty())

		errs = service.ValidateSubmission(model.Submission{Name: "é", Phone: "0611223344", Message: "Très sâle!"})
		Expect(errs.Has(service.InvalidName)).To(BeTrue())
	})

	It("is an error matching ErrValidationFailed", func() {
		var err error = service.ValidateSubmission(model.Submission{Name: "A", Phone: "12", Message: "0123456789"})

		Expect(errors.Is(err, service.ErrValidationFailed)).To(BeTrue())
		Expect(err.Error()).To(Equal("validation failed: invalid_name, invalid_phone"))
	})
})

var _ = Describe("ValidPhone", func() {
	DescribeTable("French phone numbers",
		func(phone string, valid bool) {
			Expect(service.ValidPhone(phone)).To(Equal(valid))
		},
		Entry("compact mobile", "0611223344", true),
		Entry("spaced mobile", "06 11 22 33 44", true),
		Entry("dotted", "06.11.22.33.44", true),
		Entry("hyphenated", "06-11-22-33-44", true),
		Entry("international plus", "+33611223344", true),
		Entry("international plus spaced", "+33 6 11 22 33 44", true),
		Entry("international 0033", "0033611223344", true),
		Entry("landline", "0321987654", true),
		Entry("too short", "12", false),
		Entry("empty", "", false),
		Entry("zero after prefix", "0011223344", false),
		Entry("missing digit", "061122334", false),
		Entry("extra digit", "06112233445", false),
		Entry("letters", "06 11 22 33 AB", false),
		Entry("foreign prefix", "+44611223344", false),
		Entry("mixed separators", "06.11-22 33.44", true),
	)
})
