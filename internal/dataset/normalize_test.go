package dataset_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/popviz/internal/dataset"
)

var _ = Describe("Normalize", func() {
	var doc dataset.Document

	BeforeEach(func() {
		doc = dataset.Document{
			Year:    2025,
			Country: "Algeria",
			Data: []dataset.AgeBand{
				{AgeGroup: "0-4", Male: 100, Female: 95},
				{AgeGroup: "5-9", Male: 110, Female: 105},
			},
		}
	})

	It("reverses the band order exactly", func() {
		all := dataset.Normalize(doc)
		Expect(all).To(HaveLen(1))
		s := all[0]
		Expect(s.AgeGroups).To(Equal([]string{"5-9", "0-4"}))
		Expect(s.Male).To(Equal([]float64{110, 100}))
		Expect(s.Female).To(Equal([]float64{105, 95}))
	})

	It("carries year and country through", func() {
		s := dataset.Normalize(doc)[0]
		Expect(s.Year).To(Equal(2025))
		Expect(s.Country).To(Equal("Algeria"))
	})

	It("preserves equal lengths across all three slices", func() {
		s := dataset.Normalize(doc)[0]
		Expect(s.Male).To(HaveLen(len(s.AgeGroups)))
		Expect(s.Female).To(HaveLen(len(s.AgeGroups)))
		Expect(s.Validate()).To(Succeed())
	})

	It("does not mutate the input document", func() {
		dataset.Normalize(doc)
		Expect(doc.Data[0].AgeGroup).To(Equal("0-4"))
		Expect(doc.Data[1].Male).To(Equal(110.0))
	})

	It("handles an empty document", func() {
		all := dataset.Normalize(dataset.Document{Year: 2025, Country: "Algeria"})
		Expect(all).To(HaveLen(1))
		Expect(all[0].AgeGroups).To(BeEmpty())
	})
})

var _ = Describe("FindYear", func() {
	all := []dataset.Series{
		{Year: 2023, Country: "Algeria"},
		{Year: 2024, Country: "Algeria"},
	}

	It("finds an exact match", func() {
		i, err := dataset.FindYear(all, 2024)
		Expect(err).NotTo(HaveOccurred())
		Expect(i).To(Equal(1))
	})

	It("reports a missing year and falls back to index 0", func() {
		i, err := dataset.FindYear(all, 1800)
		Expect(errors.Is(err, dataset.ErrYearNotFound)).To(BeTrue())
		Expect(i).To(Equal(0))
	})
})

var _ = Describe("Series", func() {
	It("rejects mismatched lengths", func() {
		s := dataset.Series{
			Country:   "Algeria",
			Year:      2025,
			AgeGroups: []string{"0-4", "5-9"},
			Male:      []float64{1},
			Female:    []float64{1, 2},
		}
		err := s.Validate()
		var re *dataset.RenderError
		Expect(errors.As(err, &re)).To(BeTrue())
		Expect(errors.Is(err, dataset.ErrLengthMismatch)).To(BeTrue())
	})

	It("computes totals and the scale maximum", func() {
		s := dataset.Series{
			AgeGroups: []string{"5-9", "0-4"},
			Male:      []float64{110, 100},
			Female:    []float64{105, 95},
		}
		Expect(s.TotalMale()).To(Equal(210.0))
		Expect(s.TotalFemale()).To(Equal(200.0))
		Expect(s.Total()).To(Equal(410.0))
		Expect(s.Max()).To(Equal(110.0))
	})
})

var _ = Describe("FileName", func() {
	It("replaces spaces with underscores", func() {
		Expect(dataset.FileName("United States")).To(Equal("United_States_pyramid.json"))
	})

	It("strips punctuation like the generator does", func() {
		Expect(dataset.FileName("Cote d'Ivoire")).To(Equal("Cote_dIvoire_pyramid.json"))
	})

	It("leaves plain names alone", func() {
		Expect(dataset.FileName("Algeria")).To(Equal("Algeria_pyramid.json"))
	})
})
