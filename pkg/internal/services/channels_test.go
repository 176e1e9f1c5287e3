package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeChannelName(t *testing.T) {
	cases := map[string]string{
		"General":            "general",
		"Project Updates":    "project-updates",
		"  spaced   out  ":   "spaced-out",
		"already-normalized": "already-normalized",
		"Tabs\there":         "tabs-here",
	}

	for input, expected := range cases {
		assert.Equal(t, expected, NormalizeChannelName(input), "input %q", input)
	}
}
