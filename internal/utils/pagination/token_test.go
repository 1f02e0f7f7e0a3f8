package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	// Standard values
	date := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(date, "txn-42")
	assert.NotEmpty(t, token, "Token should not be empty")
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")

	decodedDate, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, date, decodedDate, "Date should match after decode")
	assert.Equal(t, "txn-42", decodedID)

	// Ids containing the separator survive
	token = EncodeToken(date, "a|b")
	_, decodedID, err = DecodeToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "a|b", decodedID)

	// Zero time values
	zeroToken := EncodeToken(time.Time{}, "x")
	decodedZero, _, err := DecodeToken(zeroToken)
	assert.NoError(t, err, "Decoding zero time should not return an error")
	assert.Equal(t, time.Time{}, decodedZero, "Zero date should match after decode")
}

func TestDecodeTokenError(t *testing.T) {
	// Invalid base64
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Missing separator
	noSep := base64.RawURLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z"))
	_, _, err = DecodeToken(noSep)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Invalid date
	badDate := base64.RawURLEncoding.EncodeToString([]byte("notadate|txn-1"))
	_, _, err = DecodeToken(badDate)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "date parse", "Error should mention date parsing issue")
}

func TestAfter(t *testing.T) {
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		id   string
		want bool
	}{
		{"older date", day.AddDate(0, 0, -1), "a", true},
		{"newer date", day.AddDate(0, 0, 1), "z", false},
		{"same date higher id", day, "c", true},
		{"same date same id", day, "b", false},
		{"same date lower id", day, "a", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, After(tt.date, tt.id, day, "b"))
		})
	}
}
