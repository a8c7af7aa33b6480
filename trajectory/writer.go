package trajectory

import (
	"bufio"
	"fmt"
	"io"

	"lukechampine.com/blake3"
)

// Writer emits one frame per sampled time point as "<time>\t<dot-
// bracket>\n" and tracks a running BLAKE3 hash of every byte written,
// grounded on hash.go's BLAKE3 dispatch
// (`blake3.Sum256`) adapted here from a one-shot digest into an
// incremental one via blake3.New, since a trajectory is streamed frame
// by frame rather than held in memory as one buffer.
type Writer struct {
	buf    *bufio.Writer
	hasher *blake3.Hasher
}

// NewWriter wraps w, buffering frame writes and hashing everything that
// passes through.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		buf:    bufio.NewWriter(w),
		hasher: blake3.New(32, nil),
	}
}

// WriteFrame writes one trajectory sample.
func (tw *Writer) WriteFrame(t float64, dotBracket string) error {
	line := fmt.Sprintf("%g\t%s\n", t, dotBracket)
	if _, err := tw.hasher.Write([]byte(line)); err != nil {
		return err
	}
	_, err := tw.buf.WriteString(line)
	return err
}

// Close flushes buffered output and appends a trailer line carrying the
// hex-encoded BLAKE3 digest of every frame written, then returns that
// digest for the caller's own bookkeeping.
func (tw *Writer) Close() (string, error) {
	sum := tw.hasher.Sum(nil)
	digest := fmt.Sprintf("%x", sum)
	if _, err := fmt.Fprintf(tw.buf, "# blake3 %s\n", digest); err != nil {
		return "", err
	}
	if err := tw.buf.Flush(); err != nil {
		return "", err
	}
	return digest, nil
}
