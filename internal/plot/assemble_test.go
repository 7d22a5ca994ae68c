package plot_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sumviz/internal/plot"
	"github.com/san-kum/sumviz/internal/resolve"
	"github.com/san-kum/sumviz/internal/series"
)

// stubCase implements plot.SummarySource over fixed columns.
type stubCase struct {
	name string
	data map[string][]float64
}

func (s *stubCase) Name() string { return s.name }

func (s *stubCase) HasKey(key string) bool {
	_, ok := s.data[key]
	return ok
}

func (s *stubCase) Timestamps(key string) []float64 {
	if !s.HasKey(key) {
		return nil
	}
	return []float64{0, 30, 60}
}

func (s *stubCase) Values(key string) []float64 { return s.data[key] }

func labels(g plot.Group) []string {
	var out []string
	for _, l := range g.Lines {
		out = append(out, l.Label)
	}
	return out
}

var _ = Describe("Assemble", func() {
	var (
		case1, case2 *stubCase
		cases        []plot.SummarySource
		opts         plot.Options
	)

	BeforeEach(func() {
		case1 = &stubCase{name: "CASE1", data: map[string][]float64{
			"FOPR":      {100, 95, 90},
			"FOPRH":     {102, 96, 89},
			"WOPR:OP_1": {10, 9, 8},
		}}
		case2 = &stubCase{name: "CASE2", data: map[string][]float64{
			"FOPR": {80, 78, 75},
		}}
		cases = []plot.SummarySource{case1, case2}
		opts = plot.Options{LegendCap: plot.DefaultLegendCap}
	})

	Describe("default layout", func() {
		It("builds one group per vector with a fresh color cycle", func() {
			groups := plot.Assemble([]string{"FOPR", "WOPR:OP_1"}, nil, cases, opts)

			Expect(groups).To(HaveLen(2))
			Expect(groups[0].Title).To(Equal("FOPR"))
			Expect(groups[0].ResetColors).To(BeTrue())
			Expect(labels(groups[0])).To(Equal([]string{"case1", "case2"}))
			Expect(groups[1].Title).To(Equal("WOPR:OP_1"))
		})

		It("skips cases lacking the key without error", func() {
			groups := plot.Assemble([]string{"WOPR:OP_1"}, nil, cases, opts)

			Expect(groups).To(HaveLen(1))
			Expect(labels(groups[0])).To(Equal([]string{"case1"}))
		})

		It("builds one group per restart spec", func() {
			spec := resolve.RestartSpec{Quantity: "SOIL", I: 10, J: 5, K: 3}
			rs := []series.Series{
				{Spec: spec, Case: "CASE1", CaseIndex: 0, Days: []float64{0, 30}, Values: []float64{0.7, 0.65}},
				{Spec: spec, Case: "CASE2", CaseIndex: 1, Days: []float64{0, 30}, Values: []float64{0.6, 0.55}},
			}

			groups := plot.Assemble(nil, rs, cases, opts)

			Expect(groups).To(HaveLen(1))
			Expect(groups[0].Title).To(Equal("SOIL:10,5,3"))
			Expect(labels(groups[0])).To(Equal([]string{"case1", "case2"}))
		})
	})

	Describe("single-figure layout", func() {
		BeforeEach(func() {
			opts.SingleFigure = true
		})

		It("puts everything into one untitled group with a shared color cycle", func() {
			groups := plot.Assemble([]string{"FOPR"}, nil, cases, opts)

			Expect(groups).To(HaveLen(1))
			Expect(groups[0].Title).To(BeEmpty())
			Expect(groups[0].ResetColors).To(BeFalse())
			Expect(labels(groups[0])).To(Equal([]string{"fopr case1", "fopr case2"}))
		})

		It("prefixes restart series with their spec", func() {
			spec := resolve.RestartSpec{Quantity: "SWAT", I: 1, J: 2, K: 3}
			rs := []series.Series{
				{Spec: spec, Case: "CASE1", CaseIndex: 0, Days: []float64{0}, Values: []float64{0.2}},
			}

			groups := plot.Assemble([]string{"FOPR"}, rs, cases, opts)

			Expect(groups).To(HaveLen(1))
			Expect(labels(groups[0])).To(Equal([]string{
				"fopr case1", "fopr case2", "swat:1,2,3 case1",
			}))
		})
	})

	Describe("historic overlay", func() {
		BeforeEach(func() {
			opts.Historic = true
		})

		It("adds a non-legended point series from the reference case", func() {
			groups := plot.Assemble([]string{"FOPR"}, nil, cases, opts)

			Expect(groups[0].Lines).To(HaveLen(3))
			hist := groups[0].Lines[2]
			Expect(hist.Label).To(Equal(plot.OmitLabel))
			Expect(hist.Legended()).To(BeFalse())
			Expect(hist.Style).To(Equal(plot.StylePoint))
			Expect(hist.Y).To(Equal([]float64{102, 96, 89}))
		})

		It("preserves the qualifier when deriving the historic key", func() {
			case1.data["WOPRH:OP_1"] = []float64{11, 10, 9}

			groups := plot.Assemble([]string{"WOPR:OP_1"}, nil, cases, opts)

			Expect(groups[0].Lines).To(HaveLen(2))
			Expect(groups[0].Lines[1].Y).To(Equal([]float64{11, 10, 9}))
		})

		It("is silent when no historic variant exists", func() {
			groups := plot.Assemble([]string{"WOPR:OP_1"}, nil, cases, opts)

			Expect(groups[0].Lines).To(HaveLen(1))
		})
	})

	Describe("legend policy", func() {
		It("caps visible legend entries by case index", func() {
			var many []plot.SummarySource
			for i := 0; i < 7; i++ {
				many = append(many, &stubCase{
					name: fmt.Sprintf("CASE%d", i),
					data: map[string][]float64{"FOPR": {1, 2, 3}},
				})
			}

			groups := plot.Assemble([]string{"FOPR"}, nil, many, opts)

			got := labels(groups[0])
			Expect(got[:5]).To(Equal([]string{"case0", "case1", "case2", "case3", "case4"}))
			Expect(got[5]).To(Equal(plot.OmitLabel))
			Expect(got[6]).To(Equal(plot.OmitLabel))
		})

		It("never produces the sentinel when the cap is disabled", func() {
			opts.LegendCap = 0
			var many []plot.SummarySource
			for i := 0; i < 7; i++ {
				many = append(many, &stubCase{
					name: fmt.Sprintf("CASE%d", i),
					data: map[string][]float64{"FOPR": {1, 2, 3}},
				})
			}

			groups := plot.Assemble([]string{"FOPR"}, nil, many, opts)

			for _, label := range labels(groups[0]) {
				Expect(label).NotTo(Equal(plot.OmitLabel))
			}
		})

		It("omits every legend entry with NoLegend", func() {
			opts.NoLegend = true

			groups := plot.Assemble([]string{"FOPR"}, nil, cases, opts)

			for _, l := range groups[0].Lines {
				Expect(l.Legended()).To(BeFalse())
			}
		})
	})

	It("assembles identical structures for identical inputs", func() {
		spec := resolve.RestartSpec{Quantity: "SOIL", I: 1, J: 1, K: 1}
		rs := []series.Series{
			{Spec: spec, Case: "CASE1", CaseIndex: 0, Days: []float64{0}, Values: []float64{0.5}},
		}

		first := plot.Assemble([]string{"FOPR"}, rs, cases, opts)
		second := plot.Assemble([]string{"FOPR"}, rs, cases, opts)

		Expect(second).To(Equal(first))
	})
})
