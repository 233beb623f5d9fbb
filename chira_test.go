package chira

import (
	"testing"
)

type closeRecorder struct {
	name  string
	trail *[]string
}

func (c closeRecorder) Close() error {
	*c.trail = append(*c.trail, c.name)
	return nil
}

func TestAtExitClosesInReverseOrder(t *testing.T) {
	var trail []string
	for _, name := range []string{"readline", "logfile", "history"} {
		AtExit(closeRecorder{name: name, trail: &trail})
	}
	closeAll()
	if len(trail) != 3 || trail[0] != "history" || trail[1] != "logfile" || trail[2] != "readline" {
		t.Errorf("expected resources closed in reverse order, are %v", trail)
	}
	closeAll()
	if len(trail) != 3 {
		t.Errorf("expected resources to be closed once, closed %v", trail)
	}
}
