package game

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Rarity is the weighted tier controlling how likely an item is to be
// scattered into the world. Catalog files may declare it as a tier name or a
// numeric drop score; scores map to tiers by threshold.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

// Tiers lists every rarity from most to least common, in the order the
// placement pass weighs them.
var Tiers = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}

func (r Rarity) String() string {
	switch r {
	case RarityUncommon:
		return "uncommon"
	case RarityRare:
		return "rare"
	case RarityEpic:
		return "epic"
	case RarityLegendary:
		return "legendary"
	default:
		return "common"
	}
}

// Weight returns the placement weight for the tier.
func (r Rarity) Weight() int {
	switch r {
	case RarityUncommon:
		return 25
	case RarityRare:
		return 10
	case RarityEpic:
		return 4
	case RarityLegendary:
		return 1
	default:
		return 60
	}
}

// RarityFromScore maps a numeric drop score to a tier. Lower scores are
// rarer.
func RarityFromScore(score float64) Rarity {
	switch {
	case score < 2:
		return RarityLegendary
	case score < 5:
		return RarityEpic
	case score < 10:
		return RarityRare
	case score < 20:
		return RarityUncommon
	default:
		return RarityCommon
	}
}

func parseRarity(name string) (Rarity, bool) {
	switch strings.ToLower(name) {
	case "common", "":
		return RarityCommon, true
	case "uncommon":
		return RarityUncommon, true
	case "rare":
		return RarityRare, true
	case "epic":
		return RarityEpic, true
	case "legendary":
		return RarityLegendary, true
	default:
		return RarityCommon, false
	}
}

func (r *Rarity) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		tier, ok := parseRarity(name)
		if !ok {
			// Unrecognized tier names degrade to common rather than
			// failing the catalog load.
			tier = RarityCommon
		}
		*r = tier
		return nil
	}

	var score float64
	if err := json.Unmarshal(b, &score); err != nil {
		return fmt.Errorf("rarity must be a tier name or a number")
	}
	*r = RarityFromScore(score)
	return nil
}

func (r Rarity) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}
