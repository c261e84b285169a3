package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDedent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "no indent", input: "a\nb", want: "a\nb"},
		{name: "uniform indent", input: "    a\n    b", want: "a\nb"},
		{name: "mixed indent keeps relative depth", input: "  a\n    b\n  c", want: "a\n  b\nc"},
		{name: "blank lines ignored for prefix", input: "  a\n\n  b", want: "a\n\nb"},
		{name: "whitespace-only line shorter than prefix", input: "    a\n \n    b", want: "a\n\nb"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Dedent(tc.input))
		})
	}
}
