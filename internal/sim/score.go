package sim

// ScoreState tracks the current run's score and the best score seen.
type ScoreState struct {
	Current int
	Best    int
	// BestAvailable is false when the best score could not be read from
	// storage; frontends then show only the current score.
	BestAvailable bool
}

// Increment adds one point to the current run.
func (s *ScoreState) Increment() {
	s.Current++
}

// Finish folds the current score into the best score and reports whether
// the best score grew. Best never decreases.
func (s *ScoreState) Finish() bool {
	if s.Current > s.Best {
		s.Best = s.Current
		return true
	}
	return false
}

// ResetCurrent clears the current run's score.
func (s *ScoreState) ResetCurrent() {
	s.Current = 0
}
