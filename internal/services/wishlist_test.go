package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleIDAddsWhenAbsent(t *testing.T) {
	got := ToggleID([]string{"a", "b"}, "c")
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestToggleIDRemovesWhenPresent(t *testing.T) {
	got := ToggleID([]string{"a", "b", "c"}, "b")
	assert.Equal(t, []string{"a", "c"}, got)
}

func TestToggleIDRoundTrips(t *testing.T) {
	ids := []string{"a"}
	ids = ToggleID(ids, "b")
	ids = ToggleID(ids, "b")
	assert.Equal(t, []string{"a"}, ids)
}

func TestToggleIDDoesNotMutateInput(t *testing.T) {
	in := []string{"a", "b", "c"}
	ToggleID(in, "b")
	assert.Equal(t, []string{"a", "b", "c"}, in)
}

func TestToggleIDEmptySet(t *testing.T) {
	assert.Equal(t, []string{"a"}, ToggleID(nil, "a"))
}
