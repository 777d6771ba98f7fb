package sound

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCueForEvent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		event string
		want  Cue
		ok    bool
	}{
		{"deal_started", CueDeal, true},
		{"bet_placed", CueChip, true},
		{"power_used", CuePower, true},
		{"swap_done", CueCard, true},
		{"showdown_complete", CueWin, true},
		{"hand_dealt", "", false},
		{"betting_closed", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.event, func(t *testing.T) {
			t.Parallel()
			got, ok := CueForEvent(tt.event)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEveryCueHasTone(t *testing.T) {
	t.Parallel()

	for _, c := range Cues() {
		assert.NotEmpty(t, cueTones[c], "cue %s", c)
	}
}

func TestDisabledManagerIsSilent(t *testing.T) {
	t.Parallel()

	sm := NewSoundManager()
	assert.NotPanics(t, func() {
		sm.PlayCue(CueWin)
		sm.Play("missing")
		sm.Close()
	})
}
