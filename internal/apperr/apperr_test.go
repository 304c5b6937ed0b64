package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	err := New(Conflict, "car %d is currently in maintenance", 7)
	assert.Equal(t, "conflict: car 7 is currently in maintenance", err.Error())

	wrapped := Wrap(Persistence, errors.New("driver: bad connection"), "find car id=%d", 7)
	assert.Equal(t, "persistence: find car id=7: driver: bad connection", wrapped.Error())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, NotFound, KindOf(New(NotFound, "gone")))
	assert.Equal(t, NotFound, KindOf(fmt.Errorf("outer: %w", New(NotFound, "gone"))))
	assert.Equal(t, Persistence, KindOf(errors.New("plain")))
}

func TestIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(Conflict, "taken"))
	assert.True(t, errors.Is(err, New(Conflict, "")))
	assert.False(t, errors.Is(err, New(NotFound, "")))
}

func TestDecodeRoundTrip(t *testing.T) {
	for _, kind := range []Kind{Validation, NotFound, Conflict, Connection, Persistence} {
		orig := New(kind, "some message")
		decoded := Decode(orig.Error())
		assert.Equal(t, kind, decoded.Kind)
		assert.Equal(t, "some message", decoded.Msg)
	}
}

func TestDecodeUnknownDefaultsToPersistence(t *testing.T) {
	decoded := Decode("unexpected EOF")
	assert.Equal(t, Persistence, decoded.Kind)
	assert.Equal(t, "unexpected EOF", decoded.Msg)
}
