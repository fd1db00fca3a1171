//go:build !picolog_off

package picolog

import (
	"bytes"
	"testing"
)

// The facade tests share the package default Logger, so each one starts
// from Init and ends by resetting it.
func resetDefault(t *testing.T) *bytes.Buffer {
	t.Helper()
	freezeClock(t)
	plainColors(t)

	orig := Output()
	buf := &bytes.Buffer{}
	SetOutput(buf)
	t.Cleanup(func() {
		SetOutput(orig)
		Default().Reset()
	})
	return buf
}

func TestGlobalInitAndEmit(t *testing.T) {
	buf := resetDefault(t)

	Init(Warning)
	Infof("below threshold")
	Errorf("x=%d", 9)

	want := "[ERROR] 15:04:05 x=9\n"
	if buf.String() != want {
		t.Errorf("console output %q, want %q", buf.String(), want)
	}
}

func TestGlobalLevelHelpers(t *testing.T) {
	resetDefault(t)
	Default().Reset()

	ring := NewMemorySink(16)
	if err := Subscribe(ring.Sink(), Trace); err != nil {
		t.Fatal(err)
	}

	Tracef("t")
	Debugf("d")
	Infof("i")
	Warningf("w")
	Errorf("e")
	Criticalf("c")
	Alwaysf("a")

	recs := ring.Records()
	if len(recs) != len(allLevels) {
		t.Fatalf("got %d records, want %d", len(recs), len(allLevels))
	}
	for i, lv := range allLevels {
		if recs[i].Level != lv {
			t.Errorf("helper %d emitted at %s, want %s", i, recs[i].Level, lv)
		}
	}
}

func TestGlobalEmit(t *testing.T) {
	resetDefault(t)
	Default().Reset()

	ring := NewMemorySink(4)
	if err := Subscribe(ring.Sink(), Info); err != nil {
		t.Fatal(err)
	}

	Emit(Debug, "filtered")
	Emit(Always, "kept %s", "message")

	recs := ring.Records()
	if len(recs) != 1 || recs[0].Message != "kept message" {
		t.Errorf("records = %v", recs)
	}
}

func TestGlobalReinitClearsForeignSubscribers(t *testing.T) {
	resetDefault(t)

	// A subscriber added by one caller...
	ring := NewMemorySink(4)
	Init(Always)
	if err := Subscribe(ring.Sink(), Trace); err != nil {
		t.Fatal(err)
	}

	// ...does not survive another caller's re-init.
	Init(Always)
	Infof("after reinit")
	if got := ring.Records(); len(got) != 0 {
		t.Errorf("subscriber survived re-init: %v", got)
	}

	if err := Unsubscribe(ring.Sink()); err != ErrNotSubscribed {
		t.Errorf("Unsubscribe after re-init = %v, want ErrNotSubscribed", err)
	}
}

func TestDefault(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default() returned nil")
	}
	if Default() != Default() {
		t.Error("Default() must be stable")
	}
}
