package combat

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestDamageVerb(t *testing.T) {
	tests := map[string]struct {
		damage int
		want   string
	}{
		"nothing":  {damage: 0, want: "misses"},
		"light":    {damage: 2, want: "grazes"},
		"boundary": {damage: 10, want: "hits"},
		"heavy":    {damage: 28, want: "mauls"},
		"over top": {damage: 120, want: "obliterates"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "verb", DamageVerb(tt.damage), tt.want)
		})
	}
}

func TestRounds(t *testing.T) {
	testutil.AssertEqual(t, "singular", Rounds(1), "1 round")
	testutil.AssertEqual(t, "plural", Rounds(3), "3 rounds")
}
