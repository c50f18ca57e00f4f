// Package scanner turns receipt images into a best-guess bill total: an
// external OCR step produces raw text, and a line-by-line heuristic picks
// the most plausible total out of it.
package scanner

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// pricePattern matches money-looking substrings: one to three leading
// digits, optional comma-separated thousand groups, optional exactly
// two-digit decimals (e.g. "1,200.50", "500.00", "500").
var pricePattern = regexp.MustCompile(`\d{1,3}(?:,\d{3})*(?:\.\d{2})?`)

// maxPlausible caps candidate values; anything at or above it is treated
// as OCR noise (phone numbers, dates, order IDs).
const maxPlausible = 100000

// keywords mark a line as carrying the bill total.
var keywords = []string{"total", "amount", "payable"}

// Result is the extractor's best-effort answer. DetectedTotal is a
// suggestion for a human to confirm, never authoritative; Candidates holds
// every plausible value found so callers can disambiguate or override.
type Result struct {
	RawText       string
	DetectedTotal float64
	Candidates    []float64
	ParseFailures int
}

// ExtractTotal scans OCR output line by line for the bill total.
//
// A line containing a keyword wins over everything else: the last valid
// value on the last such line becomes the detected total. With no keyword
// line, the largest candidate anywhere is used. When nothing plausible is
// found at all, the detected total is zero.
//
// Unparseable matches are counted and logged but never abort extraction.
func ExtractTotal(rawText string) Result {
	res := Result{RawText: rawText}

	for _, line := range strings.Split(rawText, "\n") {
		var values []float64
		for _, match := range pricePattern.FindAllString(line, -1) {
			value, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
			if err != nil {
				res.ParseFailures++
				slog.Debug("Unparseable price candidate", "match", match, "error", err)
				continue
			}
			if value <= 0 || value >= maxPlausible {
				continue
			}
			values = append(values, value)
		}
		res.Candidates = append(res.Candidates, values...)

		if len(values) > 0 && hasKeyword(line) {
			res.DetectedTotal = values[len(values)-1]
		}
	}

	if res.DetectedTotal == 0 && len(res.Candidates) > 0 {
		res.DetectedTotal = maxOf(res.Candidates)
	}
	return res
}

func hasKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
