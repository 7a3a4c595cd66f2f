// Package multiplayer describes matches and the sessions that play them.
// A match is always one human against the computer; the session is either
// the local terminal or a remote SSH connection.
package multiplayer

import (
	"time"

	"github.com/google/uuid"
)

// SessionID uniquely identifies a player's session (local terminal or SSH connection).
type SessionID string

// LocalSession is the session ID used when playing in the local terminal.
const LocalSession SessionID = "local"

// NewSessionID returns a fresh random session ID.
func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

// MatchID uniquely identifies one match from placement to game over.
type MatchID string

// NewMatchID returns a fresh random match ID.
func NewMatchID() MatchID {
	return MatchID(uuid.NewString())
}

// MatchMode tells where the human side of a match is connected from.
type MatchMode int

const (
	// MatchModeLocal is played in the terminal that started the binary.
	MatchModeLocal MatchMode = iota

	// MatchModeSSH is played by a remote user through the SSH server.
	MatchModeSSH
)

func (m MatchMode) String() string {
	switch m {
	case MatchModeLocal:
		return "local"
	case MatchModeSSH:
		return "ssh"
	default:
		return "unknown"
	}
}

// Match is the platform's record of a running match.
type Match struct {
	id      MatchID
	mode    MatchMode
	session SessionID
	started time.Time
}

// NewMatch starts a match record for the session.
func NewMatch(mode MatchMode, session SessionID) *Match {
	return &Match{
		id:      NewMatchID(),
		mode:    mode,
		session: session,
		started: time.Now(),
	}
}

// ID returns the match identifier.
func (m *Match) ID() MatchID {
	return m.id
}

// Mode returns where the human is playing from.
func (m *Match) Mode() MatchMode {
	return m.mode
}

// Session returns the session playing the match.
func (m *Match) Session() SessionID {
	return m.session
}

// Elapsed returns the time since the match started.
func (m *Match) Elapsed() time.Duration {
	return time.Since(m.started)
}
