package guard

import (
	"github.com/taskora/client-go/constant"
	"github.com/taskora/client-go/model"
)

// Decision is the outcome of evaluating a navigation against session state.
type Decision int

const (
	// Authorized renders the requested view.
	Authorized Decision = iota
	// RedirectLogin sends the user to the login view, carrying the original
	// destination so the login flow can return there.
	RedirectLogin
	// RedirectHome sends the user home: authenticated but wrong role.
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Authorized:
		return "authorized"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// Evaluate computes the guard decision for one navigation. It is a pure
// function of the session state: no I/O, no memory between evaluations.
// An empty allowed set admits every role, degrading the guard to
// "authenticated users only".
func Evaluate(state model.SessionState, allowed []constant.Role) Decision {
	if !state.IsAuthenticated() {
		return RedirectLogin
	}

	if len(allowed) == 0 {
		allowed = constant.AllRoles()
	}
	for _, role := range allowed {
		if role == state.Role {
			return Authorized
		}
	}
	return RedirectHome
}
