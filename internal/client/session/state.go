// Package session owns the persisted sign-in state of the client.
//
// State moves Loading → Anonymous | Authenticated(username) once, when the
// persisted session is restored, and afterwards only through Login and
// Logout. Login is a placeholder gate: any non-empty username/password pair
// is accepted.
package session

// Status is the state-machine position derived from a State.
type Status int

const (
	StatusLoading Status = iota
	StatusAnonymous
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// State is an immutable snapshot. Username is "" whenever IsAuthenticated is
// false.
type State struct {
	IsAuthenticated bool
	Username        string
	IsLoading       bool
}

func (s State) Status() Status {
	switch {
	case s.IsLoading:
		return StatusLoading
	case s.IsAuthenticated:
		return StatusAuthenticated
	default:
		return StatusAnonymous
	}
}

func loading() State                      { return State{IsLoading: true} }
func anonymous() State                    { return State{} }
func authenticated(username string) State { return State{IsAuthenticated: true, Username: username} }
