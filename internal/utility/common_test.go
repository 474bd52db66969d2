package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUnixMilli(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, ts.UnixMilli(), UnixMilli(ts))
}

func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, id, String2ObjectID(id.Hex()))
	assert.True(t, String2ObjectID("not-an-id").IsZero())
	assert.True(t, String2ObjectID("").IsZero())
}

func TestRandomString(t *testing.T) {
	a := RandomString(16)
	b := RandomString(16)
	assert.Len(t, a, 32) // hex-encoded: 2 characters per byte
	assert.NotEqual(t, a, b)
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("asha@shop.test"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@tld"))
}
