// Package utility contains small shared helpers: time conversion, id
// parsing, slug derivation and a TTL cache.
package utility

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UnixMilli converts a time to unix milliseconds.
func UnixMilli(t time.Time) int64 {
	return t.Round(time.Millisecond).UnixNano() / (int64(time.Millisecond) / int64(time.Nanosecond))
}

// CurrentTimeInMilli returns the current time in unix milliseconds.
func CurrentTimeInMilli() int64 {
	return UnixMilli(time.Now())
}

// String2ObjectID converts a hex string to an ObjectID.
// Returns the zero ObjectID when the string is not valid.
func String2ObjectID(id string) primitive.ObjectID {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectID
}

// RandomString returns n random bytes hex-encoded (2n characters).
func RandomString(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the process has bigger problems;
		// fall back to a timestamp so callers still get a unique-ish value.
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}

// ValidateEmail checks the email format.
func ValidateEmail(email string) error {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format: %s", email)
	}
	return nil
}
