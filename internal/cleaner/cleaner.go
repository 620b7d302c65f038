// Package cleaner repairs raw bank statement exports into well-formed
// delimited text. The export format carries preamble rows before the real
// header and pads data rows with trailing commas that break strict CSV
// parsing.
package cleaner

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"bankstmt/internal/logging"
	"bankstmt/internal/parsererror"
)

// RequiredHeaderTokens are the literal substrings that identify the header
// line inside the export. The first line containing all of them wins.
var RequiredHeaderTokens = []string{
	"Transaction Date",
	"Credit Amount",
	"Debit Amount",
}

// Clean decodes a raw export, locates the header line and strips the trailing
// comma padding from every data row after it. Lines at or before the header
// pass through unmodified. It returns the repaired text joined with newlines
// and the zero-based index of the header line, so callers can skip the
// preamble rows during tabular parsing.
func Clean(raw []byte, logger logging.Logger) (string, int, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	if !utf8.Valid(raw) {
		return "", 0, fmt.Errorf("statement is not valid UTF-8 text")
	}

	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")

	headerIndex := findHeaderLine(lines)
	if headerIndex < 0 {
		logger.WithField("lines", len(lines)).Warn("No header line found in statement")
		return "", 0, &parsererror.HeaderNotFoundError{
			Tokens: RequiredHeaderTokens,
			Lines:  len(lines),
		}
	}

	for i := headerIndex + 1; i < len(lines); i++ {
		lines[i] = strings.TrimRight(lines[i], ",")
	}

	logger.Debug("Cleaned statement export",
		logging.Field{Key: "header_index", Value: headerIndex},
		logging.Field{Key: "lines", Value: len(lines)})

	return strings.Join(lines, "\n"), headerIndex, nil
}

// findHeaderLine returns the index of the first line containing every
// required header token, or -1 if no such line exists.
func findHeaderLine(lines []string) int {
	for i, line := range lines {
		if containsAll(line, RequiredHeaderTokens) {
			return i
		}
	}
	return -1
}

func containsAll(line string, tokens []string) bool {
	for _, token := range tokens {
		if !strings.Contains(line, token) {
			return false
		}
	}
	return true
}
