package config

import "testing"

func TestDefaultValidatesOnceSeqIsSet(t *testing.T) {
	c := Default()
	c.Seq = "GGGGAAAACCCC"
	if err := c.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidateRejectsEmptySequence(t *testing.T) {
	c := Default()
	if err := c.Validate(); err == nil {
		t.Errorf("expected an error for an empty sequence")
	}
}

func TestValidateRejectsInvertedFoldWindow(t *testing.T) {
	c := Default()
	c.Seq = "GGGGAAAACCCC"
	c.FoldStart = 8
	c.FoldStop = 2
	if err := c.Validate(); err == nil {
		t.Errorf("expected an error for fld_start > fld_stop")
	}
}
