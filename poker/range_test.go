package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func class(t *testing.T, s string) HandClass {
	t.Helper()
	c, err := ParseHandClass(s)
	require.NoError(t, err)
	return c
}

func TestParseRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     map[string]float64
	}{
		{
			name:     "single pair",
			notation: "AA",
			want:     map[string]float64{"AA": 1},
		},
		{
			name:     "frequencies",
			notation: "AKs:0.5,AKo",
			want:     map[string]float64{"AKs": 0.5, "AKo": 1},
		},
		{
			name:     "pair plus",
			notation: "TT+",
			want:     map[string]float64{"TT": 1, "JJ": 1, "QQ": 1, "KK": 1, "AA": 1},
		},
		{
			name:     "suited plus with frequency",
			notation: "KTs+:0.25",
			want:     map[string]float64{"KTs": 0.25, "KJs": 0.25, "KQs": 0.25},
		},
		{
			name:     "offsuit plus",
			notation: "A9o+",
			want:     map[string]float64{"A9o": 1, "ATo": 1, "AJo": 1, "AQo": 1, "AKo": 1},
		},
		{
			name:     "top kicker plus is a single class",
			notation: "AKs+",
			want:     map[string]float64{"AKs": 1},
		},
		{
			name:     "whitespace",
			notation: " AA , KQs : 0.75 ",
			want:     map[string]float64{"AA": 1, "KQs": 0.75},
		},
		{
			name:     "empty",
			notation: "",
			want:     map[string]float64{},
		},
		{
			name:     "later token wins",
			notation: "22+,77:0.5",
			want: map[string]float64{
				"22": 1, "33": 1, "44": 1, "55": 1, "66": 1, "77": 0.5,
				"88": 1, "99": 1, "TT": 1, "JJ": 1, "QQ": 1, "KK": 1, "AA": 1,
			},
		},
		{
			name:     "zero frequency is kept",
			notation: "72o:0",
			want:     map[string]float64{"72o": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := ParseRange(tt.notation)
			require.NoError(t, err)

			want := make(Range, len(tt.want))
			for s, f := range tt.want {
				want[class(t, s)] = f
			}
			assert.Equal(t, want, r)
		})
	}
}

func TestParseRangeDocumentedExamples(t *testing.T) {
	t.Parallel()
	tests := []struct {
		notation string
		size     int
		contains map[string]float64
		excludes []string
	}{
		{
			notation: "AA,KQs,T9o",
			size:     3,
			contains: map[string]float64{"AA": 1, "KQs": 1, "T9o": 1},
		},
		{
			notation: "AA,KQs:0.5,T9o:0.25",
			size:     3,
			contains: map[string]float64{"AA": 1, "KQs": 0.5, "T9o": 0.25},
		},
		{
			notation: "22+",
			size:     13,
			contains: map[string]float64{"22": 1, "44": 1, "AA": 1},
			excludes: []string{"23s", "A2s"},
		},
		{
			notation: "A3s+",
			size:     11,
			contains: map[string]float64{"A3s": 1, "A4s": 1, "AKs": 1},
			excludes: []string{"A2s", "AA", "A3o"},
		},
		{
			notation: "KTo+",
			size:     3,
			contains: map[string]float64{"KTo": 1, "KJo": 1, "KQo": 1},
			excludes: []string{"K9o", "KTs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			t.Parallel()
			r, err := ParseRange(tt.notation)
			require.NoError(t, err)
			assert.Len(t, r, tt.size)
			for s, f := range tt.contains {
				c := class(t, s)
				require.True(t, r.Contains(c), "missing %s", s)
				assert.Equal(t, f, r.Frequency(c), s)
			}
			for _, s := range tt.excludes {
				assert.False(t, r.Contains(class(t, s)), "unexpected %s", s)
			}
		})
	}

	empty, err := ParseRange("")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestParseRangeErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
	}{
		{"bad class", "AXs"},
		{"unpaired without modifier", "AK"},
		{"bad frequency", "AA:x"},
		{"frequency above one", "AA:1.5"},
		{"negative frequency", "AA:-0.1"},
		{"nan frequency", "AA:NaN"},
		{"infinite frequency", "AKs:+Inf"},
		{"trailing comma", "AA,"},
		{"bad plus base", "AK+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseRange(tt.notation)
			assert.Error(t, err)
		})
	}
}

func TestRangeFrequency(t *testing.T) {
	t.Parallel()
	r, err := ParseRange("AKs:0.5,72o:0")
	require.NoError(t, err)

	assert.Equal(t, 0.5, r.Frequency(class(t, "AKs")))
	assert.True(t, r.Contains(class(t, "72o")))
	assert.Equal(t, 0.0, r.Frequency(class(t, "72o")))
	assert.False(t, r.Contains(class(t, "AA")))
	assert.Equal(t, 0.0, r.Frequency(class(t, "AA")))
}

func TestRangeMerge(t *testing.T) {
	t.Parallel()
	call, err := ParseRange("AKs:0.5,QQ")
	require.NoError(t, err)
	raise, err := ParseRange("AKs:0.25,AA")
	require.NoError(t, err)

	merged := call.Merge(raise)
	assert.Len(t, merged, 3)
	assert.Equal(t, 0.25, merged[class(t, "AKs")])
	assert.Equal(t, 1.0, merged[class(t, "QQ")])
	assert.Equal(t, 1.0, merged[class(t, "AA")])

	// inputs are not modified
	assert.Equal(t, 0.5, call[class(t, "AKs")])
	assert.Len(t, call, 2)
}

func TestFormatRange(t *testing.T) {
	t.Parallel()
	r, err := ParseRange("AKs:0.5,QQ+,T9o:0.125")
	require.NoError(t, err)

	s := FormatRange(r)
	assert.Equal(t, "QQ,KK,AA,AKs:0.5,T9o:0.125", s)

	again, err := ParseRange(s)
	require.NoError(t, err)
	assert.Equal(t, r, again)

	assert.Equal(t, "", FormatRange(Range{}))
}
