package chat

import (
	"testing"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips bold and italics",
			input: "Check out the **Forsaken Hoodie** - it goes *hard*.",
			want:  "Check out the Forsaken Hoodie - it goes hard.",
		},
		{
			name:  "strips headings",
			input: "### Top Picks\n## Hoodies\n# Tees",
			want:  "Top Picks\n Hoodies\n Tees",
		},
		{
			name:  "strips emoji",
			input: "Stay dark \U0001F608\U0001F525 always ❤",
			want:  "Stay dark  always",
		},
		{
			name:  "trims whitespace",
			input: "  \n cool fit \n  ",
			want:  "cool fit",
		},
		{
			name:  "plain text untouched",
			input: "The Carpenter Pants run true to size.",
			want:  "The Carpenter Pants run true to size.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Sanitize(tt.input); got != tt.want {
				t.Fatalf("unexpected output: got=%q want=%q", got, tt.want)
			}
		})
	}
}
