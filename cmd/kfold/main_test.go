package main

import "testing"

func TestApplicationHasFoldAndEnergyCommands(t *testing.T) {
	app := application()
	names := map[string]bool{}
	for _, c := range app.Commands {
		names[c.Name] = true
	}
	for _, want := range []string{"fold", "energy"} {
		if !names[want] {
			t.Errorf("missing command %q", want)
		}
	}
}

func TestEncodeSequenceRejectsInvalidBases(t *testing.T) {
	if _, err := encodeSequence("GGXX"); err == nil {
		t.Errorf("expected an error for invalid bases")
	}
	codes, err := encodeSequence("GGCC")
	if err != nil {
		t.Fatalf("encodeSequence: %v", err)
	}
	if len(codes) != 4 {
		t.Errorf("got %d codes, want 4", len(codes))
	}
}
