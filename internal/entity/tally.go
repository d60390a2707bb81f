package entity

// Tally - number of finished games per outcome.
type Tally struct {
	XWins int64 `json:"x_wins"`
	OWins int64 `json:"o_wins"`
	Draws int64 `json:"draws"`
}

// Add - counts one finished game. Unfinished statuses are ignored.
func (that *Tally) Add(status Status) {
	switch status {
	case StatusXWins:
		that.XWins++
	case StatusOWins:
		that.OWins++
	case StatusDraw:
		that.Draws++
	case StatusInProgress:
	}
}
