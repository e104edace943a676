package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgeOverlap(t *testing.T) {
	tests := []struct {
		name     string
		qMin     int
		qMax     int
		itemMin  *int
		itemMax  *int
		expected float64
	}{
		{
			name:     "missing item bounds returns neutral",
			qMin:     4,
			qMax:     8,
			itemMin:  nil,
			itemMax:  nil,
			expected: NeutralOverlap,
		},
		{
			name:     "missing upper bound returns neutral",
			qMin:     4,
			qMax:     8,
			itemMin:  intPtr(3),
			itemMax:  nil,
			expected: NeutralOverlap,
		},
		{
			name:     "disjoint ranges return zero",
			qMin:     2,
			qMax:     4,
			itemMin:  intPtr(10),
			itemMax:  intPtr(14),
			expected: 0,
		},
		{
			name:     "identical ranges return one",
			qMin:     3,
			qMax:     7,
			itemMin:  intPtr(3),
			itemMax:  intPtr(7),
			expected: 1,
		},
		{
			name:     "partial overlap normalized by average width",
			qMin:     4,
			qMax:     8, // width 4
			itemMin:  intPtr(6),
			itemMax:  intPtr(12), // width 6, intersection [6,8] = 2
			expected: 0.4,
		},
		{
			name:     "single age inside item range",
			qMin:     5,
			qMax:     5,
			itemMin:  intPtr(3),
			itemMax:  intPtr(7), // intersection 0 wide, avg 2 -> 0
			expected: 0,
		},
		{
			name:     "both single ages intersecting",
			qMin:     5,
			qMax:     5,
			itemMin:  intPtr(5),
			itemMax:  intPtr(5),
			expected: 1,
		},
		{
			name:     "wide query over narrow item clamps to one",
			qMin:     0,
			qMax:     2,
			itemMin:  intPtr(0),
			itemMax:  intPtr(2),
			expected: 1,
		},
		{
			name:     "touching endpoints yield zero width",
			qMin:     2,
			qMax:     6,
			itemMin:  intPtr(6),
			itemMax:  intPtr(10), // zero-width intersection at 6
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AgeOverlap(tt.qMin, tt.qMax, tt.itemMin, tt.itemMax)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }
