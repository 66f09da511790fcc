package shared

import "math/rand"

// Dice is the single random source consumed by the logistics engine.
//
// Every roll draws from the same sequential stream, so replaying the same calls
// against a Dice built from the same seed reproduces the same outcomes.
type Dice interface {
	// Roll rolls count dice with the given number of sides and returns the sum.
	Roll(count, sides int) int
}

// D6 rolls count six-sided dice.
func D6(d Dice, count int) int {
	return d.Roll(count, 6)
}

// SeededDice implements Dice on top of math/rand with an explicit seed
type SeededDice struct {
	rng *rand.Rand
}

// NewSeededDice creates dice whose sequence is fully determined by seed
func NewSeededDice(seed int64) *SeededDice {
	return &SeededDice{rng: rand.New(rand.NewSource(seed))}
}

// Roll sums count rolls of a die with the given sides. Non-positive inputs roll nothing.
func (d *SeededDice) Roll(count, sides int) int {
	if count <= 0 || sides <= 0 {
		return 0
	}
	total := 0
	for i := 0; i < count; i++ {
		total += d.rng.Intn(sides) + 1
	}
	return total
}

// ScriptedDice returns predetermined faces, one per die, for tests.
// Once the script is exhausted every die shows 1.
type ScriptedDice struct {
	faces    []int
	position int
}

// NewScriptedDice creates dice that replay faces in order
func NewScriptedDice(faces ...int) *ScriptedDice {
	return &ScriptedDice{faces: faces}
}

// Roll sums the next count scripted faces
func (d *ScriptedDice) Roll(count, sides int) int {
	total := 0
	for i := 0; i < count; i++ {
		face := 1
		if d.position < len(d.faces) {
			face = d.faces[d.position]
			d.position++
		}
		if face > sides {
			face = sides
		}
		total += face
	}
	return total
}

// Remaining returns how many scripted faces have not been consumed yet
func (d *ScriptedDice) Remaining() int {
	return len(d.faces) - d.position
}
