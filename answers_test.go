package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAnswer(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"ombre", "ombre"},
		{"OMBRE", "ombre"},
		{"  Ombre \n", "ombre"},
		{"ombré", "ombre"},
		{"déjà vu", "deja vu"},
		{"TUESDAY", "tuesday"},
		{"", ""},
	} {
		assert.Equal(t, tc.want, normalizeAnswer(tc.in), "input %q", tc.in)
	}
}
