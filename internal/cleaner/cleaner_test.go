package cleaner

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankstmt/internal/parsererror"
)

const sampleExport = `Account Details For:,Savings Account,,,,,,
Statement as at:,31 Jan 2024,,,,,,
,,,,,,,
Transaction Date, Debit Amount, Credit Amount, Transaction Ref1, Transaction Ref2, Transaction Ref3,
05 Jan 2024,12.50,,NTUC FAIRPRICE,,,,,
06 Jan 2024,,"3,000.00",SALARY,JAN PAYROLL,,,,
`

func TestClean(t *testing.T) {
	cleaned, headerIndex, err := Clean([]byte(sampleExport), nil)
	require.NoError(t, err)

	assert.Equal(t, 3, headerIndex)

	lines := strings.Split(cleaned, "\n")
	// Preamble and header rows pass through unmodified.
	assert.Equal(t, "Account Details For:,Savings Account,,,,,,", lines[0])
	assert.Equal(t, "Transaction Date, Debit Amount, Credit Amount, Transaction Ref1, Transaction Ref2, Transaction Ref3,", lines[3])

	// Data rows lose their trailing comma padding, nothing else.
	assert.Equal(t, "05 Jan 2024,12.50,,NTUC FAIRPRICE", lines[4])
	assert.Equal(t, `06 Jan 2024,,"3,000.00",SALARY,JAN PAYROLL`, lines[5])
}

func TestCleanHeaderOnFirstLine(t *testing.T) {
	raw := "Transaction Date,Debit Amount,Credit Amount\n01 Feb 2024,5.00,,,,\n"

	cleaned, headerIndex, err := Clean([]byte(raw), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, headerIndex)
	assert.Equal(t, "Transaction Date,Debit Amount,Credit Amount\n01 Feb 2024,5.00", cleaned)
}

func TestCleanNormalizesCRLF(t *testing.T) {
	raw := "Transaction Date,Debit Amount,Credit Amount\r\n01 Feb 2024,5.00,,,\r\n"

	cleaned, _, err := Clean([]byte(raw), nil)
	require.NoError(t, err)
	assert.NotContains(t, cleaned, "\r")
	assert.Equal(t, "Transaction Date,Debit Amount,Credit Amount\n01 Feb 2024,5.00", cleaned)
}

func TestCleanHeaderNotFound(t *testing.T) {
	raw := "Some,Other,Header\n1,2,3\n"

	cleaned, headerIndex, err := Clean([]byte(raw), nil)
	require.Error(t, err)

	var headerErr *parsererror.HeaderNotFoundError
	require.True(t, errors.As(err, &headerErr))
	assert.Equal(t, 2, headerErr.Lines)

	// No partial output on failure.
	assert.Empty(t, cleaned)
	assert.Zero(t, headerIndex)
}

func TestCleanPartialTokensIsNotAHeader(t *testing.T) {
	// A line with only some of the required tokens must not be picked.
	raw := "Transaction Date,Credit Amount\nTransaction Date,Credit Amount,Debit Amount\n"

	_, headerIndex, err := Clean([]byte(raw), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, headerIndex)
}

func TestCleanInvalidUTF8(t *testing.T) {
	_, _, err := Clean([]byte{0xff, 0xfe, 0xfd}, nil)
	assert.Error(t, err)
}
