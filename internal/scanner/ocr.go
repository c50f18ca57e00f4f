package scanner

import (
	"context"
	"fmt"
)

// OCR extracts raw text from a receipt image. Implementations are external
// and may be slow; callers own the timeout and retry policy via ctx.
type OCR interface {
	Text(ctx context.Context, image []byte) (string, error)
}

// Scan runs OCR on the image and extracts the total from its text.
func Scan(ctx context.Context, ocr OCR, image []byte) (Result, error) {
	text, err := ocr.Text(ctx, image)
	if err != nil {
		return Result{}, fmt.Errorf("ocr failed: %w", err)
	}
	return ExtractTotal(text), nil
}
