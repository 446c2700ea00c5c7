package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "04-06-2024", FormatDate("2024-06-04T12:30:00+02:00"))
	assert.Equal(t, "31-12-2019", FormatDate("2019-12-31T23:59:59Z"))
}

func TestFormatDateUnparseable(t *testing.T) {
	out := FormatDate("yesterday")
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "yesterday")
}
