package format

import "testing"

func TestCleanup(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"comment marker repair", "  / / note", "  // note"},
		{"exponent retighten", "x = 1e - 5;", "x = 1e-5;"},
		{"literal sign retighten", "x = - 1;", "x = -1;"},
		{"negation retighten", "x = a * - 2;", "x = a * -2;"},
		{"identifier table", "// IEC - 61400", "// IEC-61400"},
		{"subtraction untouched", "x = a - b;", "x = a - b;"},
		{"division untouched", "x = a / b;", "x = a / b;"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cleanup(tc.in); got != tc.want {
				t.Fatalf("cleanup mismatch:\nwant %q\ngot  %q", tc.want, got)
			}
		})
	}
}
