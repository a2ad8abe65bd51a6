package lsystem

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// GrowthSample describes one generation produced during growth analysis.
type GrowthSample struct {
	Generation int
	Length     int
	// Ratio is Length divided by the previous sample's length, 0 for the axiom.
	Ratio  float64
	Counts map[Symbol]int
	Stable bool
}

// GrowthReport is the result of AnalyseGrowth.
type GrowthReport struct {
	Axiom   string
	Rules   RuleSet
	Samples []GrowthSample
}

// AnalyseGrowth evolves a fresh copy of l for n generations and records how
// the state grows. l itself is not advanced.
func (l *LSystem) AnalyseGrowth(n int) GrowthReport {
	lsystem := &LSystem{
		Axiom:   l.Axiom,
		Rules:   l.Rules,
		MemPool: NewBufferPool(l.MemPool.GetCap()),
	}
	lsystem.Reset()

	report := GrowthReport{Axiom: l.Axiom, Rules: l.Rules.Clone()}
	report.Samples = append(report.Samples, sample(0, lsystem.State(), 0, false))

	prevLen := len([]rune(lsystem.State()))
	it := lsystem.Evolve(n)
	for it.Next() {
		s := sample(it.Index(), it.State(), prevLen, lsystem.IsStable())
		prevLen = s.Length
		report.Samples = append(report.Samples, s)
	}
	return report
}

func sample(generation int, state string, prevLen int, stable bool) GrowthSample {
	s := GrowthSample{
		Generation: generation,
		Counts:     make(map[Symbol]int),
		Stable:     stable,
	}
	for _, r := range state {
		s.Counts[Symbol(r)]++
		s.Length++
	}
	if prevLen > 0 {
		s.Ratio = float64(s.Length) / float64(prevLen)
	}
	return s
}

// AverageGrowth returns the mean generation-to-generation growth ratio.
func (gr GrowthReport) AverageGrowth() float64 {
	total := 0.0
	count := 0
	for _, s := range gr.Samples {
		if s.Ratio == 0 {
			continue
		}
		total += s.Ratio
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// RenderChart writes an HTML bar chart of state length per generation, with
// one extra series per rule variable.
func (gr GrowthReport) RenderChart(w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "Growth Analysis",
		Subtitle: "axiom " + gr.Axiom + " with rules " + gr.Rules.String() + " (avg growth " + strconv.FormatFloat(gr.AverageGrowth(), 'f', 4, 64) + ")",
	}))

	labels := make([]string, len(gr.Samples))
	lengths := make([]opts.BarData, len(gr.Samples))
	for i, s := range gr.Samples {
		labels[i] = strconv.Itoa(s.Generation)
		lengths[i] = opts.BarData{Value: s.Length}
	}
	bar.SetXAxis(labels).AddSeries("length", lengths)

	for _, rule := range gr.Rules.Rules() {
		counts := make([]opts.BarData, len(gr.Samples))
		for i, s := range gr.Samples {
			counts[i] = opts.BarData{Value: s.Counts[rule.Predecessor]}
		}
		bar.AddSeries(rule.Predecessor.String(), counts)
	}
	return bar.Render(w)
}
