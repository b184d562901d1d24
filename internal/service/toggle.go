package service

import (
	"context"
	"errors"
	"strings"

	"mall-storefront/internal/client"
	"mall-storefront/internal/store"
)

// ErrLoginRequired signals that the caller must authenticate first; the
// current path has already been remembered for the post-login redirect.
var ErrLoginRequired = errors.New("login required")

const genericFailureMessage = "Something went wrong, please try again later."

// ToggleService keeps favorite and blog-like flags responsive: the flip is
// applied locally before the remote call and rolled back if it fails.
type ToggleService interface {
	ToggleFavorite(ctx context.Context, currentPath string, productID int64) (bool, error)
	ToggleBlogLike(ctx context.Context, currentPath string, blogID int64) (bool, error)
	Favorites() (map[int64]bool, error)
	BlogLiked(blogID int64) (bool, error)
}

type toggleServiceImpl struct {
	api      client.StorefrontClient
	prefs    store.PrefStore
	notifier Notifier
}

func NewToggleService(api client.StorefrontClient, prefs store.PrefStore, notifier Notifier) ToggleService {
	return &toggleServiceImpl{api: api, prefs: prefs, notifier: notifier}
}

func (s *toggleServiceImpl) ToggleFavorite(ctx context.Context, currentPath string, productID int64) (bool, error) {
	return s.toggle(ctx, currentPath, store.SetFavorites, productID,
		func(ctx context.Context) (string, error) {
			return s.api.ToggleFavorite(ctx, productID)
		}, false)
}

func (s *toggleServiceImpl) ToggleBlogLike(ctx context.Context, currentPath string, blogID int64) (bool, error) {
	return s.toggle(ctx, currentPath, store.SetBlogLikes, blogID,
		func(ctx context.Context) (string, error) {
			return s.api.ToggleBlogLike(ctx, blogID)
		}, true)
}

// toggle applies the optimistic flip, fires the remote call, and reconciles.
// deriveFromMessage enables the blog-like message heuristic: the backend
// reports the recorded direction only in free text.
func (s *toggleServiceImpl) toggle(
	ctx context.Context,
	currentPath, set string,
	id int64,
	call func(ctx context.Context) (string, error),
	deriveFromMessage bool,
) (bool, error) {
	sess, err := s.prefs.Session()
	if err != nil {
		return false, err
	}
	if !sess.LoggedIn() {
		if err := s.prefs.SaveRedirectPath(currentPath); err != nil {
			return false, err
		}
		return false, ErrLoginRequired
	}

	prev, err := s.prefs.InSet(set, id)
	if err != nil {
		return false, err
	}

	next := !prev
	if err := s.prefs.SetInSet(set, id, next); err != nil {
		return false, err
	}

	message, err := call(ctx)
	if err != nil {
		// Roll back both the store and whatever the caller renders.
		if rbErr := s.prefs.SetInSet(set, id, prev); rbErr != nil {
			return prev, errors.Join(err, rbErr)
		}
		s.notifier.Error(toggleErrorMessage(err))
		return prev, err
	}

	final := next
	if deriveFromMessage {
		final = likeStateFromMessage(message, next)
		if final != next {
			if err := s.prefs.SetInSet(set, id, final); err != nil {
				return final, err
			}
		}
	}

	if message == "" {
		message = "Updated successfully"
	}
	s.notifier.Success(message)
	return final, nil
}

func toggleErrorMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return genericFailureMessage
}

// likeStateFromMessage infers the authoritative like state from the server's
// human-readable message. "dislike" is checked before "like" because it
// contains it. A message matching neither keeps the optimistic guess.
func likeStateFromMessage(message string, optimistic bool) bool {
	m := strings.ToLower(message)
	if !strings.Contains(m, "success") {
		return optimistic
	}
	if strings.Contains(m, "dislike") {
		return false
	}
	if strings.Contains(m, "like") {
		return true
	}
	return optimistic
}

func (s *toggleServiceImpl) Favorites() (map[int64]bool, error) {
	return s.prefs.SetMembers(store.SetFavorites)
}

func (s *toggleServiceImpl) BlogLiked(blogID int64) (bool, error) {
	return s.prefs.InSet(store.SetBlogLikes, blogID)
}
