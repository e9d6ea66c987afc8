package ui

const initialRune = 'A'

// runeSequence hands out card labels A to Z. Later cards are picked by number.
type runeSequence struct {
	currentRune rune
}

func (s *runeSequence) next() (rune, bool) {
	if s.currentRune == 0 {
		s.currentRune = initialRune
	}
	currentRune := s.currentRune
	if currentRune > 'Z' {
		return 0, false
	}
	s.currentRune++
	return currentRune, true
}
