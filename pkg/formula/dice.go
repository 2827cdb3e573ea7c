package formula

import "math/rand/v2"

// Dice limits.
const (
	MaxDice      = 1000
	MaxDiceSides = 1_000_000
)

// DiceRoll is the outcome of rolling several identical dice.
type DiceRoll struct {
	Rolls []int `json:"rolls"`
	Total int   `json:"total"`
}

// RollDice rolls count dice with the given number of sides using rng. The
// outcome depends only on the arguments, so a seeded rng replays the same roll.
func RollDice(rng *rand.Rand, count, sides int) (DiceRoll, error) {
	if rng == nil {
		return DiceRoll{}, invalid("random source is required")
	}
	if count <= 0 || count > MaxDice {
		return DiceRoll{}, invalid("dice count must be between 1 and %d", MaxDice)
	}
	if sides < 2 || sides > MaxDiceSides {
		return DiceRoll{}, invalid("dice must have between 2 and %d sides", MaxDiceSides)
	}

	roll := DiceRoll{Rolls: make([]int, count)}
	for i := range roll.Rolls {
		roll.Rolls[i] = rng.IntN(sides) + 1
		roll.Total += roll.Rolls[i]
	}

	return roll, nil
}
