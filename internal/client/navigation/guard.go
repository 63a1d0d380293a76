// Package navigation decides whether a requested route must be redirected
// based on the current session.
package navigation

import "github.com/dmitrijs2005/userdesk/internal/client/session"

const (
	DefaultLoginPath = "/login"
	DefaultHomePath  = "/dashboard"
)

// Guard is a pure decision function over (session state, requested path).
// It keeps no memory between calls and is safe for concurrent use.
type Guard struct {
	LoginPath string
	HomePath  string
}

func DefaultGuard() Guard {
	return Guard{LoginPath: DefaultLoginPath, HomePath: DefaultHomePath}
}

// Decide returns the redirect target and true, or ("", false) to let the
// navigation proceed. Nothing is redirected while the session is loading.
func (g Guard) Decide(s session.State, path string) (string, bool) {
	switch {
	case s.IsLoading:
		return "", false
	case !s.IsAuthenticated && path != g.LoginPath:
		return g.LoginPath, true
	case s.IsAuthenticated && path == g.LoginPath:
		return g.HomePath, true
	default:
		return "", false
	}
}

// Resolve returns the path navigation should end on.
func (g Guard) Resolve(s session.State, path string) string {
	if target, ok := g.Decide(s, path); ok {
		return target
	}
	return path
}
