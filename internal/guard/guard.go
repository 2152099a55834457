// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

// Package guard decides whether navigation to a route is allowed for the
// current session. Routes are registered with access annotations; the
// guard itself holds no authentication state and asks the session manager
// on every check.
package guard

// Route names used across the client. The set mirrors the screens the
// terminal UI can show.
const (
	RouteHome           = "home"
	RouteLogin          = "login"
	RouteRegister       = "register"
	RouteArticles       = "articles"
	RouteArticleDetail  = "article-detail"
	RouteArticleEdit    = "article-edit"
	RouteArticleCreate  = "article-create"
	RouteProfile        = "profile"
	RouteChangePassword = "change-password"
	RouteWordPress      = "wordpress"
)

// Access is the annotation attached to a route.
type Access int

const (
	// Public routes are reachable by anyone.
	Public Access = iota
	// RequireAuth routes need an authenticated session.
	RequireAuth
	// RequireAdmin routes need an authenticated session with the admin
	// flag set.
	RequireAdmin
)

// SessionState is the slice of the session manager the guard consults.
type SessionState interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

// Decision is the outcome of a check. When Allowed is false, RedirectTo
// names the route to go to instead; ReturnTo carries the originally
// requested route so it can be resumed after login.
type Decision struct {
	Allowed    bool
	RedirectTo string
	ReturnTo   string
}

// Guard evaluates route access against the current session.
type Guard struct {
	session SessionState
	routes  map[string]Access
}

// NewGuard builds a guard over the default route table.
func NewGuard(session SessionState) *Guard {
	return &Guard{
		session: session,
		routes: map[string]Access{
			RouteHome:           Public,
			RouteLogin:          Public,
			RouteRegister:       Public,
			RouteArticles:       Public,
			RouteArticleDetail:  Public,
			RouteWordPress:      Public,
			RouteProfile:        RequireAuth,
			RouteChangePassword: RequireAuth,
			RouteArticleCreate:  RequireAuth,
			RouteArticleEdit:    RequireAdmin,
		},
	}
}

// Register adds or overrides a route annotation.
func (g *Guard) Register(route string, access Access) {
	g.routes[route] = access
}

// Check evaluates access to route. Unknown routes are treated as
// authenticated-only: an unregistered screen must never be more open than
// a registered one. An unauthenticated visitor is redirected to the login
// route with the requested route preserved; an authenticated non-admin
// hitting an admin route is sent home.
func (g *Guard) Check(route string) Decision {
	access, ok := g.routes[route]
	if !ok {
		access = RequireAuth
	}

	switch access {
	case Public:
		return Decision{Allowed: true}
	case RequireAuth:
		if !g.session.IsAuthenticated() {
			return Decision{RedirectTo: RouteLogin, ReturnTo: route}
		}
		return Decision{Allowed: true}
	case RequireAdmin:
		if !g.session.IsAuthenticated() {
			return Decision{RedirectTo: RouteLogin, ReturnTo: route}
		}
		if !g.session.IsAdmin() {
			return Decision{RedirectTo: RouteHome}
		}
		return Decision{Allowed: true}
	default:
		return Decision{RedirectTo: RouteHome}
	}
}
