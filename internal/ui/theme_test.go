package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBar(t *testing.T) {
	tests := []struct {
		value  int
		filled int
	}{
		{value: 0, filled: 0},
		{value: 50, filled: 10},
		{value: 100, filled: 20},
		{value: 140, filled: 20},
		{value: -5, filled: 0},
	}

	for _, tt := range tests {
		bar := Bar(tt.value)
		assert.Equal(t, tt.filled, strings.Count(bar, "█"), "value %d", tt.value)
		assert.Equal(t, barWidth-tt.filled, strings.Count(bar, "░"), "value %d", tt.value)
	}
}

func TestRateAndTrendText(t *testing.T) {
	assert.Contains(t, RateText(70), "70%")
	assert.Contains(t, RateText(5), "5%")
	assert.Contains(t, TrendText(12), "▲ 12")
	assert.Contains(t, TrendText(-3), "▼ 3")
	assert.Contains(t, TrendText(0), "= 0")
}

func TestLabelValue(t *testing.T) {
	assert.Contains(t, LabelValue("Today", "2024-01-10"), "2024-01-10")
	assert.Contains(t, Heading(IconChart, "Stats"), "Stats")
}
