package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmwhalen/alcove/internal/library"
)

func TestAuthorizedRequiresUser(t *testing.T) {
	assert.False(t, authorized(nil, nil, false))
	assert.False(t, authorized(nil, []string{"admin"}, false))
}

func TestAuthorizedAnyAuthenticatedUser(t *testing.T) {
	user := &library.User{Username: "frank"}
	assert.True(t, authorized(user, nil, false))
	assert.True(t, authorized(user, nil, true))
}

func TestAuthorizedAllRoles(t *testing.T) {
	user := &library.User{Username: "frank", Roles: []string{"admin", "editor"}}
	assert.True(t, authorized(user, []string{"admin"}, true))
	assert.True(t, authorized(user, []string{"admin", "editor"}, true))
	assert.False(t, authorized(user, []string{"admin", "editor", "owner"}, true))

	partial := &library.User{Username: "joan", Roles: []string{"editor"}}
	assert.False(t, authorized(partial, []string{"admin", "editor"}, true))
}

func TestAuthorizedAnyRole(t *testing.T) {
	user := &library.User{Username: "joan", Roles: []string{"editor"}}
	assert.True(t, authorized(user, []string{"admin", "editor"}, false))
	assert.False(t, authorized(user, []string{"admin", "owner"}, false))
}

func TestResolveViewRedirectsAnonymous(t *testing.T) {
	for _, v := range []View{ViewHome, ViewCatalogue, ViewShelves, ViewShelfDetail, ViewSettings} {
		assert.Equal(t, ViewLogin, resolveView(v, nil), viewTitle(v))
	}
}

func TestResolveViewPassesAuthenticated(t *testing.T) {
	user := &library.User{Username: "frank"}
	for _, v := range []View{ViewHome, ViewCatalogue, ViewShelves, ViewShelfDetail, ViewSettings} {
		assert.Equal(t, v, resolveView(v, user), viewTitle(v))
	}
}

func TestResolveViewPublicRoutes(t *testing.T) {
	assert.Equal(t, ViewLogin, resolveView(ViewLogin, nil))
	assert.Equal(t, ViewRegister, resolveView(ViewRegister, nil))
}

func TestResolveViewUnknownTarget(t *testing.T) {
	assert.Equal(t, ViewNotFound, resolveView(View(99), &library.User{Username: "frank"}))
	assert.Equal(t, ViewNotFound, resolveView(View(99), nil))
}
