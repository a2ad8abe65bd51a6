package lsystem

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyseGrowth(t *testing.T) {
	ls := newSystem(t, "A", RuleSet{'A': "AB", 'B': "A"})
	ls.Step(1)

	report := ls.AnalyseGrowth(4)

	require.Len(t, report.Samples, 5)
	lengths := make([]int, len(report.Samples))
	for i, s := range report.Samples {
		lengths[i] = s.Length
		assert.Equal(t, i, s.Generation)
	}
	assert.Equal(t, []int{1, 2, 3, 5, 8}, lengths)
	assert.Equal(t, 0.0, report.Samples[0].Ratio)
	assert.InDelta(t, 1.6, report.Samples[4].Ratio, 1e-9)
	assert.Equal(t, map[Symbol]int{'A': 5, 'B': 3}, report.Samples[4].Counts)

	// the analysed engine is untouched
	assert.Equal(t, "AB", ls.State())
	assert.Equal(t, 1, ls.Generation())
}

func TestAnalyseGrowthStable(t *testing.T) {
	ls := newSystem(t, "AB", RuleSet{'A': ""})
	report := ls.AnalyseGrowth(3)

	require.Len(t, report.Samples, 4)
	assert.True(t, report.Samples[3].Stable)
	assert.Equal(t, 1, report.Samples[3].Length)
	assert.InDelta(t, (0.5+1+1)/3, report.AverageGrowth(), 1e-9)
}

func TestRenderChart(t *testing.T) {
	ls := newSystem(t, "F", RuleSet{'F': "F+F"})

	var buf bytes.Buffer
	require.NoError(t, ls.AnalyseGrowth(3).RenderChart(&buf))
	assert.Contains(t, buf.String(), "Growth Analysis")
}
