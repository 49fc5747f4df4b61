package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	bookingNumberPrefix = "MP"
	base36Chars         = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	randomSuffixLen     = 4
)

// GenerateBookingNumber produces a human-readable booking identifier:
// a fixed prefix, the current unix-millisecond timestamp in uppercase
// base 36 (roughly sortable by creation order), and a short random
// base-36 suffix. The random suffix alone does not guarantee uniqueness;
// the repository's unique index on booking_number is the actual guarantee
// and callers retry generation on conflict.
func GenerateBookingNumber() (string, error) {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	suffix := make([]byte, randomSuffixLen)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36Chars))))
		if err != nil {
			return "", fmt.Errorf("failed to generate booking number: %w", err)
		}
		suffix[i] = base36Chars[n.Int64()]
	}

	return bookingNumberPrefix + ts + string(suffix), nil
}
