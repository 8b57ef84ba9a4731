package combat

import "fmt"

// Rounds formats a round count with its unit.
func Rounds(n int) string {
	if n == 1 {
		return "1 round"
	}
	return fmt.Sprintf("%d rounds", n)
}

// damageVerbs scales the enemy's hit narration with the blow's severity.
var damageVerbs = []struct {
	maxDamage int
	verb      string
}{
	{0, "misses"},
	{3, "grazes"},
	{6, "strikes"},
	{10, "hits"},
	{15, "hits hard"},
	{22, "batters"},
	{30, "mauls"},
	{45, "savages"},
	{65, "devastates"},
}

// DamageVerb returns the third-person verb for a damage amount.
func DamageVerb(damage int) string {
	for _, v := range damageVerbs {
		if damage <= v.maxDamage {
			return v.verb
		}
	}
	return "obliterates"
}
