package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeToken creates an opaque page token from the sort key of the last row
// served: the transaction date and its id as tie-breaker. The token travels in
// query strings, so the URL-safe alphabet is used.
func EncodeToken(date time.Time, transactionID string) string {
	tokenStr := fmt.Sprintf("%s|%s", date.Format(timeFormat), transactionID)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	date, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	return date, parts[1], nil
}

// After reports whether a row sorted by (date desc, id asc) comes strictly
// after the row identified by the token key.
func After(date time.Time, id string, keyDate time.Time, keyID string) bool {
	if !date.Equal(keyDate) {
		return date.Before(keyDate)
	}
	return id > keyID
}
