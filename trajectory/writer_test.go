package trajectory

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func TestWriterProducesIdenticalOutputForIdenticalFrames(t *testing.T) {
	frames := []struct {
		t  float64
		db string
	}{
		{0.01, "((....))"},
		{0.02, "((....))"},
		{0.03, "........"},
	}

	run := func() (string, string) {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		for _, f := range frames {
			if err := w.WriteFrame(f.t, f.db); err != nil {
				t.Fatalf("WriteFrame: %v", err)
			}
		}
		digest, err := w.Close()
		if err != nil {
			t.Fatalf("Close: %v", err)
		}
		return buf.String(), digest
	}

	out1, digest1 := run()
	out2, digest2 := run()

	if out1 != out2 {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(out1, out2, false)
		t.Errorf("two identical runs produced different output:\n%s", dmp.DiffPrettyText(diffs))
	}
	if digest1 != digest2 {
		t.Errorf("digest mismatch across identical runs: %s vs %s", digest1, digest2)
	}
	if !strings.Contains(out1, "# blake3 "+digest1) {
		t.Errorf("output missing trailer for digest %s:\n%s", digest1, out1)
	}
}
