package impasse

import "testing"

func TestPositionStringFormatsRankAndFile(t *testing.T) {
	p := Position{X: 0, Y: 0, OldSign: 1, NewSign: 0}
	got := p.String()
	want := "A8 - from 1 to 0"
	if got != want {
		t.Errorf("Position.String() = %q, want %q", got, want)
	}
}

func TestEmptyPositionSentinel(t *testing.T) {
	if emptyPosition.OldSign != 3 || emptyPosition.NewSign != 3 {
		t.Errorf("emptyPosition = %+v, want OldSign and NewSign both 3", emptyPosition)
	}
}
