package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderNotFoundError(t *testing.T) {
	err := &HeaderNotFoundError{Tokens: []string{"Transaction Date"}, Lines: 12}
	assert.Contains(t, err.Error(), "Transaction Date")
	assert.Contains(t, err.Error(), "12")
}

func TestDateParseErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("bad month")
	err := &DateParseError{Row: 3, Value: "05 Foo 2024", Layout: "02 Jan 2006", Err: cause}

	assert.Contains(t, err.Error(), "05 Foo 2024")
	assert.True(t, errors.Is(err, cause))
}

func TestUnknownCategoryError(t *testing.T) {
	err := &UnknownCategoryError{Category: "Ghost"}
	assert.Contains(t, err.Error(), "Ghost")
}

func TestStoreErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := &StoreError{Path: "categories.json", Op: "write", Err: cause}

	assert.Contains(t, err.Error(), "categories.json")
	assert.True(t, errors.Is(err, cause))
}
