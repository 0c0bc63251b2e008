package poker

// Winner names the side that won a comparison. The first hand plays as
// Black and the second as White.
type Winner uint8

const (
	Tie Winner = iota
	First
	Second
)

func (w Winner) String() string {
	switch w {
	case Tie:
		return "Tie"
	case First:
		return "Black"
	case Second:
		return "White"
	}
	return "Unknown"
}

// ComparisonResult is the outcome of comparing two hands. On a tie neither
// rank is set.
type ComparisonResult struct {
	Winner      Winner
	winningRank Rank
	losingRank  Rank
}

// WinningRank returns the rank that decided the comparison and false on a tie.
func (r ComparisonResult) WinningRank() (Rank, bool) {
	return r.winningRank, r.Winner != Tie
}

// LosingRank returns the rank beaten by the winning rank and false on a tie.
func (r ComparisonResult) LosingRank() (Rank, bool) {
	return r.losingRank, r.Winner != Tie
}

// Describe renders the result as "Tie" or "<Side> wins - high card: <rank>".
func (r ComparisonResult) Describe() string {
	switch r.Winner {
	case Tie:
		return "Tie"
	case First, Second:
		return r.Winner.String() + " wins - high card: " + r.winningRank.DisplayName()
	}
	return "Unknown"
}

func (r ComparisonResult) String() string {
	return r.Describe()
}

// Compare decides which of two hands is stronger. Categories are compared
// first; hands of the same category are compared kicker by kicker.
func Compare(first, second Hand) ComparisonResult {
	a, b := Evaluate(first), Evaluate(second)

	if a.Category != b.Category {
		if a.Category > b.Category {
			return ComparisonResult{Winner: First, winningRank: a.Kickers[0], losingRank: b.Kickers[0]}
		}
		return ComparisonResult{Winner: Second, winningRank: b.Kickers[0], losingRank: a.Kickers[0]}
	}

	for i := range a.Kickers {
		x, y := a.Kickers[i], b.Kickers[i]
		switch {
		case x.Strength() > y.Strength():
			return ComparisonResult{Winner: First, winningRank: x, losingRank: y}
		case x.Strength() < y.Strength():
			return ComparisonResult{Winner: Second, winningRank: y, losingRank: x}
		}
	}
	return ComparisonResult{Winner: Tie}
}

// Compare compares h, playing Black, against other, playing White.
func (h Hand) Compare(other Hand) ComparisonResult {
	return Compare(h, other)
}
