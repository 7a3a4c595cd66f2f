package multiplayer

// MatchEndReason describes why a match ended.
type MatchEndReason int

const (
	MatchEndCompleted MatchEndReason = iota // One fleet was destroyed
	MatchEndAbandoned                       // The player left mid-battle
)

func (r MatchEndReason) String() string {
	switch r {
	case MatchEndCompleted:
		return "completed"
	case MatchEndAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// MatchResultData is the persisted summary of one match.
type MatchResultData struct {
	MatchID       string
	GameID        string
	SessionID     string
	Mode          string
	Winner        string // "player", "computer" or "none"
	EndReason     string
	TurnRule      string
	PlayerShots   int
	PlayerHits    int
	ComputerShots int
	ComputerHits  int
	PlayerShips   int // Player ships still afloat at the end
	ComputerShips int
	Score         int
	DurationSecs  int
}

// MatchResultSaver persists match results.
// The platform uses it so it does not depend on a concrete store.
type MatchResultSaver interface {
	SaveMatchResult(result MatchResultData) error
}

// ResultReporter is implemented by games that can summarise a match.
// The game fills in its own fields; the platform adds match, session, mode
// and duration. ok is false when there is nothing worth recording yet.
type ResultReporter interface {
	MatchResult(reason MatchEndReason) (result MatchResultData, ok bool)
}

// Complete fills in the platform-owned fields of a result.
func (m *Match) Complete(r MatchResultData) MatchResultData {
	r.MatchID = string(m.id)
	r.SessionID = string(m.session)
	r.Mode = m.mode.String()
	r.DurationSecs = int(m.Elapsed().Seconds())
	return r
}
