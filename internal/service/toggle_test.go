package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mall-storefront/internal/client"
	"mall-storefront/internal/model"
	"mall-storefront/internal/service"
	"mall-storefront/internal/store"
)

func newTestPrefs(t *testing.T) store.PrefStore {
	t.Helper()
	db, err := store.InitPrefsDB(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	return store.NewPrefStore(db)
}

func loggedInPrefs(t *testing.T) store.PrefStore {
	t.Helper()
	prefs := newTestPrefs(t)
	require.NoError(t, prefs.SaveSession(model.Session{
		Token:    "token-abc",
		Role:     model.RoleUser,
		Username: "alice",
	}))
	return prefs
}

func TestToggleFavoriteAlternates(t *testing.T) {
	prefs := loggedInPrefs(t)
	api := &fakeAPI{
		toggleFavoriteFn: func(ctx context.Context, productID int64) (string, error) {
			return "Favorite updated", nil
		},
	}
	toggles := service.NewToggleService(api, prefs, &fakeNotifier{})

	state, err := toggles.ToggleFavorite(context.Background(), "/products/5", 5)
	require.NoError(t, err)
	assert.True(t, state)

	stored, err := prefs.InSet(store.SetFavorites, 5)
	require.NoError(t, err)
	assert.True(t, stored)

	state, err = toggles.ToggleFavorite(context.Background(), "/products/5", 5)
	require.NoError(t, err)
	assert.False(t, state)

	stored, err = prefs.InSet(store.SetFavorites, 5)
	require.NoError(t, err)
	assert.False(t, stored, "second toggle returns to the initial state")
}

func TestToggleFavoriteRollsBackOnFailure(t *testing.T) {
	prefs := loggedInPrefs(t)
	notifier := &fakeNotifier{}
	api := &fakeAPI{
		toggleFavoriteFn: func(ctx context.Context, productID int64) (string, error) {
			return "", errors.New("network unreachable")
		},
	}
	toggles := service.NewToggleService(api, prefs, notifier)

	state, err := toggles.ToggleFavorite(context.Background(), "/products/5", 5)

	require.Error(t, err)
	assert.False(t, state, "failed toggle resolves to the pre-toggle value")

	stored, storeErr := prefs.InSet(store.SetFavorites, 5)
	require.NoError(t, storeErr)
	assert.False(t, stored)
	assert.NotEmpty(t, notifier.errors)
}

func TestToggleFavoriteRollbackKeepsExistingTrue(t *testing.T) {
	prefs := loggedInPrefs(t)
	require.NoError(t, prefs.SetInSet(store.SetFavorites, 5, true))

	api := &fakeAPI{
		toggleFavoriteFn: func(ctx context.Context, productID int64) (string, error) {
			return "", &client.APIError{StatusCode: 500, Message: "server exploded"}
		},
	}
	notifier := &fakeNotifier{}
	toggles := service.NewToggleService(api, prefs, notifier)

	state, err := toggles.ToggleFavorite(context.Background(), "/products/5", 5)

	require.Error(t, err)
	assert.True(t, state)

	stored, storeErr := prefs.InSet(store.SetFavorites, 5)
	require.NoError(t, storeErr)
	assert.True(t, stored)
	// envelope failures surface the server message verbatim
	assert.Contains(t, notifier.errors, "server exploded")
}

func TestToggleBlogLikeMessageHeuristic(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    bool
	}{
		{"like confirmed", "Like blog success", true},
		{"dislike recorded", "Dislike blog success", false},
		{"case insensitive", "DISLIKE SUCCESS", false},
		{"no match keeps optimistic guess", "ok", true},
		{"success without direction keeps guess", "operation success", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prefs := loggedInPrefs(t)
			api := &fakeAPI{
				toggleBlogLikeFn: func(ctx context.Context, blogID int64) (string, error) {
					return tc.message, nil
				},
			}
			toggles := service.NewToggleService(api, prefs, &fakeNotifier{})

			// starts false, so the optimistic guess is true
			state, err := toggles.ToggleBlogLike(context.Background(), "/blogs/9", 9)
			require.NoError(t, err)
			assert.Equal(t, tc.want, state)

			stored, storeErr := prefs.InSet(store.SetBlogLikes, 9)
			require.NoError(t, storeErr)
			assert.Equal(t, tc.want, stored)
		})
	}
}

func TestToggleRequiresLogin(t *testing.T) {
	prefs := newTestPrefs(t)
	api := &fakeAPI{
		toggleFavoriteFn: func(ctx context.Context, productID int64) (string, error) {
			t.Fatal("anonymous toggle must not reach the network")
			return "", nil
		},
	}
	toggles := service.NewToggleService(api, prefs, &fakeNotifier{})

	_, err := toggles.ToggleFavorite(context.Background(), "/products/5", 5)

	require.ErrorIs(t, err, service.ErrLoginRequired)

	path, pathErr := prefs.RedirectPath()
	require.NoError(t, pathErr)
	assert.Equal(t, "/products/5", path, "current path remembered for post-login redirect")

	stored, storeErr := prefs.InSet(store.SetFavorites, 5)
	require.NoError(t, storeErr)
	assert.False(t, stored, "no state change while anonymous")
}
