package sound

// Cue identifies a short sound played on a table event.
type Cue string

const (
	CueDeal  Cue = "deal"
	CueChip  Cue = "chip"
	CuePower Cue = "power"
	CueCard  Cue = "card"
	CueWin   Cue = "win"
)

// Cues lists every cue in a stable order.
func Cues() []Cue {
	return []Cue{CueDeal, CueChip, CuePower, CueCard, CueWin}
}

// cueTones are the fallback tones (Hz, ms) used when no sound file is present.
var cueTones = map[Cue][]tone{
	CueDeal:  {{660, 40}, {880, 40}},
	CueChip:  {{1320, 30}},
	CuePower: {{440, 60}, {550, 60}, {660, 90}},
	CueCard:  {{990, 35}},
	CueWin:   {{523, 90}, {659, 90}, {784, 160}},
}

type tone struct {
	freq float64
	ms   int
}

// CueForEvent maps a table event type to the cue played for it.
func CueForEvent(eventType string) (Cue, bool) {
	switch eventType {
	case "deal_started":
		return CueDeal, true
	case "bet_placed":
		return CueChip, true
	case "power_used":
		return CuePower, true
	case "swap_done":
		return CueCard, true
	case "showdown_complete":
		return CueWin, true
	default:
		return "", false
	}
}
