package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"started", "Started"},
		{"REOPENED", "Reopened"},
		{"review requested", "Review Requested"},
		{"closed  twice", "Closed  Twice"},
		{"ready_for_review", "Ready_for_review"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleCase(tt.in))
		})
	}
}

func TestTitleCase_Idempotent(t *testing.T) {
	inputs := []string{"started", "Published", "mIxEd case words", "added", "  leading space"}

	for _, in := range inputs {
		once := TitleCase(in)
		assert.Equal(t, once, TitleCase(once), "input %q", in)
	}
}
