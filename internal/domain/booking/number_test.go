package booking

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingNumberPattern = regexp.MustCompile(`^MP[0-9A-Z]+$`)

func TestGenerateBookingNumberFormat(t *testing.T) {
	number, err := GenerateBookingNumber()
	require.NoError(t, err)

	assert.Regexp(t, bookingNumberPattern, number)
	// Prefix (2) + millisecond timestamp in base 36 (8 for current epochs) +
	// random suffix (4).
	assert.Len(t, number, 14)
}

// The generator does not promise global uniqueness (the repository's unique
// index does), but collisions must stay rare enough that the save-retry loop
// almost never runs.
func TestGenerateBookingNumberUniqueness(t *testing.T) {
	const n = 10000

	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		number, err := GenerateBookingNumber()
		require.NoError(t, err)
		seen[number] = true
	}
	assert.Greater(t, len(seen), n-50, "too many booking number collisions")
}
