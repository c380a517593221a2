package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePosition(t *testing.T) {
	for _, p := range Positions {
		got, err := ParsePosition(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := ParsePosition("btn")
	require.NoError(t, err)
	assert.Equal(t, BTN, got)

	_, err = ParsePosition("HJ")
	assert.Error(t, err)
	_, err = ParsePosition("")
	assert.Error(t, err)
}

func TestPositionLabels(t *testing.T) {
	assert.Equal(t, "UTG", UTG.Label())
	assert.Equal(t, "Button", BTN.Label())
	assert.Equal(t, "Small Blind", SB.Label())
	assert.Equal(t, "Big Blind", BB.Label())
	assert.True(t, SB.IsOpener())
	assert.False(t, BB.IsOpener())
}

func TestParseSituation(t *testing.T) {
	tests := []struct {
		input   string
		want    Situation
		wantErr bool
	}{
		{input: "Open_UTG", want: Open{Position: UTG}},
		{input: "Open_sb", want: Open{Position: SB}},
		{input: "BBDefense_BTN", want: BBDefense{Opener: BTN}},
		{input: "BBDefense_CO", want: BBDefense{Opener: CO}},
		{input: "Open_BB", wantErr: true},
		{input: "BBDefense_BB", wantErr: true},
		{input: "Limp_UTG", wantErr: true},
		{input: "Open", wantErr: true},
		{input: "Open_UTG_extra", wantErr: true},
		{input: "Open_XX", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSituation(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSituationText(t *testing.T) {
	assert.Equal(t, "Open_BTN", Open{Position: BTN}.ID())
	assert.Equal(t, "Open from Button", Open{Position: BTN}.String())
	assert.Equal(t, "BBDefense_SB", BBDefense{Opener: SB}.ID())
	assert.Equal(t, "BB vs Small Blind Open", BBDefense{Opener: SB}.String())
	assert.Equal(t, "BB vs UTG Open", BBDefense{Opener: UTG}.String())
}

func TestDefaultSituations(t *testing.T) {
	sits := DefaultSituations()
	require.Len(t, sits, 10)

	ids := make([]string, len(sits))
	for i, s := range sits {
		ids[i] = s.ID()
		parsed, err := ParseSituation(s.ID())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	assert.Equal(t, []string{
		"Open_UTG", "Open_MP", "Open_CO", "Open_BTN", "Open_SB",
		"BBDefense_UTG", "BBDefense_MP", "BBDefense_CO", "BBDefense_BTN", "BBDefense_SB",
	}, ids)
}
