package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWindowDefaults(t *testing.T) {
	w := ParseWindow("", "", 10, 100)
	assert.Equal(t, Window{Skip: 0, Limit: 10}, w)
}

func TestParseWindowValues(t *testing.T) {
	w := ParseWindow("20", "5", 10, 100)
	assert.Equal(t, Window{Skip: 20, Limit: 5}, w)
}

func TestParseWindowClampsLimit(t *testing.T) {
	w := ParseWindow("0", "5000", 10, 100)
	assert.Equal(t, int64(100), w.Limit)
}

func TestParseWindowIgnoresGarbage(t *testing.T) {
	for _, tc := range []struct{ skip, limit string }{
		{"-5", "-1"},
		{"abc", "xyz"},
		{"1.5", "2.5"},
	} {
		w := ParseWindow(tc.skip, tc.limit, 10, 100)
		assert.Equal(t, Window{Skip: 0, Limit: 10}, w, "skip=%q limit=%q", tc.skip, tc.limit)
	}
}
