package parole

import "fmt"

// scaleName holds the words for one power of one thousand.
type scaleName struct {
	one  string // phrase for exactly one unit of the scale
	many string // plural name, preceded by the spelled count
}

// scaleNames is indexed by the triplet position minus 2, in the long scale.
var scaleNames = [...]scaleName{
	{"un milione", "milioni"},   // 10^6
	{"un miliardo", "miliardi"}, // 10^9
	{"un bilione", "bilioni"},   // 10^12
	{"un biliardo", "biliardi"}, // 10^15
	{"un trilione", "trilioni"}, // 10^18
}

// scaleWords spells the triplet v at position i, where i >= 2.
// It returns an error if there is no name for the position.
func scaleWords(v uint, i int) (string, error) {
	if i < 2 || i-2 >= len(scaleNames) {
		return "", fmt.Errorf("naming 10^%v: %w", 3*i, ErrCannotConvert)
	}
	name := scaleNames[i-2]
	if v == 1 {
		return name.one, nil
	}
	return tripletWords(v) + " " + name.many, nil
}
