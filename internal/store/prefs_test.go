package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mall-storefront/internal/model"
	"mall-storefront/internal/store"
)

func newStore(t *testing.T) store.PrefStore {
	t.Helper()
	db, err := store.InitPrefsDB(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	return store.NewPrefStore(db)
}

func TestKeyValueRoundTrip(t *testing.T) {
	prefs := newStore(t)

	_, ok, err := prefs.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, prefs.Set("k", "v1"))
	value, ok, err := prefs.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v1", value)

	// last writer wins
	require.NoError(t, prefs.Set("k", "v2"))
	value, _, err = prefs.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v2", value)

	require.NoError(t, prefs.Delete("k"))
	_, ok, err = prefs.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionLifecycle(t *testing.T) {
	prefs := newStore(t)

	var events []bool
	prefs.Subscribe(func(loggedIn bool) {
		events = append(events, loggedIn)
	})

	sess := model.Session{Token: "tok", Role: model.RoleUser, Username: "alice"}
	require.NoError(t, prefs.SaveSession(sess))

	loaded, err := prefs.Session()
	require.NoError(t, err)
	assert.Equal(t, sess, loaded)
	assert.Equal(t, "tok", prefs.Token())

	require.NoError(t, prefs.ClearSession())
	loaded, err = prefs.Session()
	require.NoError(t, err)
	assert.False(t, loaded.LoggedIn())
	assert.Equal(t, "", prefs.Token())

	assert.Equal(t, []bool{true, false}, events, "listener sees login then logout")
}

func TestToggleSetSparseSemantics(t *testing.T) {
	prefs := newStore(t)
	require.NoError(t, prefs.SaveSession(model.Session{Token: "tok", Role: model.RoleUser}))

	on, err := prefs.InSet(store.SetFavorites, 5)
	require.NoError(t, err)
	assert.False(t, on, "absence means false")

	require.NoError(t, prefs.SetInSet(store.SetFavorites, 5, true))
	on, err = prefs.InSet(store.SetFavorites, 5)
	require.NoError(t, err)
	assert.True(t, on)

	// setting false removes the key instead of storing a negative
	require.NoError(t, prefs.SetInSet(store.SetFavorites, 5, false))
	members, err := prefs.SetMembers(store.SetFavorites)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestToggleSetScopedByToken(t *testing.T) {
	prefs := newStore(t)

	require.NoError(t, prefs.SaveSession(model.Session{Token: "alice-token", Role: model.RoleUser}))
	require.NoError(t, prefs.SetInSet(store.SetFavorites, 5, true))

	require.NoError(t, prefs.SaveSession(model.Session{Token: "bob-token", Role: model.RoleUser}))
	on, err := prefs.InSet(store.SetFavorites, 5)
	require.NoError(t, err)
	assert.False(t, on, "another account's favorites do not leak in")

	require.NoError(t, prefs.SaveSession(model.Session{Token: "alice-token", Role: model.RoleUser}))
	on, err = prefs.InSet(store.SetFavorites, 5)
	require.NoError(t, err)
	assert.True(t, on)
}

func TestFavoritesAndBlogLikesAreIndependent(t *testing.T) {
	prefs := newStore(t)
	require.NoError(t, prefs.SaveSession(model.Session{Token: "tok", Role: model.RoleUser}))

	require.NoError(t, prefs.SetInSet(store.SetFavorites, 5, true))

	on, err := prefs.InSet(store.SetBlogLikes, 5)
	require.NoError(t, err)
	assert.False(t, on)
}

func TestCachedProfileRoundTrip(t *testing.T) {
	prefs := newStore(t)

	_, ok, err := prefs.CachedProfile()
	require.NoError(t, err)
	assert.False(t, ok)

	profile := &model.UserProfile{UserID: 7, Username: "alice", Role: model.RoleUser}
	require.NoError(t, prefs.SaveCachedProfile(profile))

	cached, ok, err := prefs.CachedProfile()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, profile, cached)
}

func TestRedirectPath(t *testing.T) {
	prefs := newStore(t)

	path, err := prefs.RedirectPath()
	require.NoError(t, err)
	assert.Equal(t, "", path)

	require.NoError(t, prefs.SaveRedirectPath("/blogs/9"))
	path, err = prefs.RedirectPath()
	require.NoError(t, err)
	assert.Equal(t, "/blogs/9", path)
}
