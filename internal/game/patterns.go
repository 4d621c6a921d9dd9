package game

// NumPatterns is the number of distinct feedback patterns, 3^5.
const NumPatterns = 243

// universe holds every pattern in Index order. Built once, never mutated.
var universe = func() [NumPatterns]Pattern {
	var all [NumPatterns]Pattern
	for i := range all {
		n := i
		for pos := WordLen - 1; pos >= 0; pos-- {
			all[i][pos] = Correctness(n % numCorrectness)
			n /= numCorrectness
		}
	}
	return all
}()

// Patterns returns all 243 patterns as the Cartesian product of
// {Correct, Misplaced, Wrong} over five positions, first position varying
// slowest. The returned slice is a copy and may be modified freely.
func Patterns() []Pattern {
	out := make([]Pattern, NumPatterns)
	copy(out, universe[:])
	return out
}

// Index maps p to its position in Patterns(), 0..242.
func (p Pattern) Index() int {
	n := 0
	for _, c := range p {
		n = n*numCorrectness + int(c)
	}
	return n
}
