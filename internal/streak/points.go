package streak

// Points is the award policy for one scored debate.
type Points struct {
	Completion        int64
	Win               int64
	StreakBonusPerDay int64
}

// DefaultPoints matches the production configuration.
var DefaultPoints = Points{Completion: 10, Win: 5, StreakBonusPerDay: 2}

// Award computes points for one completion.
//
// The streak bonus is paid only on the first completion of a day and only once
// the streak is longer than one day.
func (p Points) Award(outcome Outcome, currentStreak int64, firstOfDay bool) int64 {
	pts := p.Completion
	if outcome == OutcomeWin {
		pts += p.Win
	}
	if firstOfDay && currentStreak > 1 {
		pts += p.StreakBonusPerDay * currentStreak
	}
	return pts
}
