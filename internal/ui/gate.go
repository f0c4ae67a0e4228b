package ui

import "github.com/tmwhalen/alcove/internal/library"

// View represents the current active view.
type View int

const (
	ViewHome View = iota
	ViewCatalogue
	ViewShelves
	ViewShelfDetail
	ViewSettings
	ViewLogin
	ViewRegister
	ViewNotFound
)

// viewTitle returns the display name for a view.
func viewTitle(v View) string {
	switch v {
	case ViewHome:
		return "Home"
	case ViewCatalogue:
		return "Catalogue"
	case ViewShelves:
		return "Bookshelves"
	case ViewShelfDetail:
		return "Bookshelf"
	case ViewSettings:
		return "Settings"
	case ViewLogin:
		return "Sign In"
	case ViewRegister:
		return "Register"
	default:
		return "Not Found"
	}
}

// routeRule describes the access requirements of a view.
type routeRule struct {
	protected bool
	roles     []string // additional role requirement, empty means any user
	allRoles  bool     // true requires every role, false requires at least one
}

// routes maps each view to its access rule. Views absent from the map are
// treated as unknown and resolve to the not-found view.
var routes = map[View]routeRule{
	ViewHome:        {protected: true},
	ViewCatalogue:   {protected: true},
	ViewShelves:     {protected: true},
	ViewShelfDetail: {protected: true},
	ViewSettings:    {protected: true},
	ViewLogin:       {},
	ViewRegister:    {},
	ViewNotFound:    {},
}

// authorized reports whether the user satisfies a role requirement. A nil
// user fails any requirement. With no roles listed, any authenticated user
// passes. With all set, every listed role must be held; otherwise one match
// suffices.
func authorized(user *library.User, roles []string, all bool) bool {
	if user == nil {
		return false
	}
	if len(roles) == 0 {
		return true
	}
	for _, role := range roles {
		if user.HasRole(role) {
			if !all {
				return true
			}
		} else if all {
			return false
		}
	}
	return all
}

// resolveView applies the access rules to a navigation target. Protected
// views resolve to the login view when the gate fails, and targets without a
// route resolve to the not-found view.
func resolveView(v View, user *library.User) View {
	rule, ok := routes[v]
	if !ok {
		return ViewNotFound
	}
	if rule.protected && !authorized(user, rule.roles, rule.allRoles) {
		return ViewLogin
	}
	return v
}
