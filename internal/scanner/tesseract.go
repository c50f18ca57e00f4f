package scanner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Tesseract runs the tesseract binary as a subprocess, reading the image
// from stdin and writing recognized text to stdout. The image is treated
// as a single uniform block of text (psm 6), which works best for
// receipts.
type Tesseract struct {
	// Binary is the tesseract executable path ("tesseract" if empty).
	Binary string
}

var _ OCR = (*Tesseract)(nil)

// Text implements OCR.
func (t *Tesseract) Text(ctx context.Context, image []byte) (string, error) {
	bin := t.Binary
	if bin == "" {
		bin = "tesseract"
	}

	cmd := exec.CommandContext(ctx, bin, "stdin", "stdout", "--oem", "3", "--psm", "6")
	cmd.Stdin = bytes.NewReader(image)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tesseract: %w: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}
	return out.String(), nil
}
