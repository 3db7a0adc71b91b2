package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidUsername(t *testing.T) {
	testCases := []struct {
		username string
		valid    bool
	}{
		{"moderator1", true},
		{"a.b-c_d", true},
		{"abc", true},
		{"ab", false},
		{"UPPERCASE", false},
		{"has space", false},
		{"", false},
		{"waytoolongusernamewaytoolongusername", false},
	}

	for _, tc := range testCases {
		t.Run(tc.username, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidUsername(tc.username))
		})
	}
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("12345678"))
	assert.True(t, ValidPassword("a much longer passphrase"))
	assert.False(t, ValidPassword("short"))
	assert.False(t, ValidPassword(""))
}
