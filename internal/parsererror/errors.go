// Package parsererror defines the typed errors surfaced by the statement
// loading pipeline and the rule store.
package parsererror

import "fmt"

// HeaderNotFoundError indicates that the raw export contains no line with all
// required header tokens. The load is aborted.
type HeaderNotFoundError struct {
	Tokens []string
	Lines  int
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("no header line found: scanned %d lines for tokens %v", e.Lines, e.Tokens)
}

// DateParseError indicates a transaction date that does not match the
// statement date layout. Date failures are fatal for the whole load.
type DateParseError struct {
	Row    int
	Value  string
	Layout string
	Err    error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("row %d: failed to parse date '%s' with layout '%s': %v",
		e.Row, e.Value, e.Layout, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// UnknownCategoryError indicates an attempt to attach a keyword to a category
// that does not exist in the rule set. The normal edit flow never produces
// this; it signals an invariant violation in the caller.
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category '%s'", e.Category)
}

// StoreError wraps a failure to load or persist the category rule document.
type StoreError struct {
	Path string
	Op   string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("category store: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
