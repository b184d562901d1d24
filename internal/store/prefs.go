package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mall-storefront/internal/model"
)

// Toggle sets kept per token. Membership means true; absence means false.
const (
	SetFavorites = "favorites"
	SetBlogLikes = "blog-likes"
)

const (
	keyToken    = "token"
	keyRole     = "role"
	keyUsername = "username"
	keyProfile  = "cached-profile"
	keyRedirect = "redirect-after-login"
)

// PrefStore is the single seam in front of the local preference database.
// All session and toggle state goes through it; last writer wins.
type PrefStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error

	Session() (model.Session, error)
	SaveSession(s model.Session) error
	ClearSession() error
	// Token satisfies client.TokenSource.
	Token() string

	InSet(set string, id int64) (bool, error)
	SetInSet(set string, id int64, on bool) error
	SetMembers(set string) (map[int64]bool, error)

	CachedProfile() (*model.UserProfile, bool, error)
	SaveCachedProfile(p *model.UserProfile) error

	RedirectPath() (string, error)
	SaveRedirectPath(path string) error

	// Subscribe registers a callback fired on login/logout, the analog of
	// the cross-tab storage listener. Only the logged-in flag is reported.
	Subscribe(fn func(loggedIn bool))
}

type prefStoreImpl struct {
	db *gorm.DB

	mu        sync.Mutex
	listeners []func(loggedIn bool)
}

func NewPrefStore(db *gorm.DB) PrefStore {
	return &prefStoreImpl{db: db}
}

func (s *prefStoreImpl) Get(key string) (string, bool, error) {
	var entry PrefEntry
	err := s.db.Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read pref %q: %w", key, err)
	}
	return entry.Value, true, nil
}

func (s *prefStoreImpl) Set(key, value string) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&PrefEntry{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("write pref %q: %w", key, err)
	}
	return nil
}

func (s *prefStoreImpl) Delete(key string) error {
	if err := s.db.Where("key = ?", key).Delete(&PrefEntry{}).Error; err != nil {
		return fmt.Errorf("delete pref %q: %w", key, err)
	}
	return nil
}

func (s *prefStoreImpl) Session() (model.Session, error) {
	token, _, err := s.Get(keyToken)
	if err != nil {
		return model.Session{}, err
	}
	role, _, err := s.Get(keyRole)
	if err != nil {
		return model.Session{}, err
	}
	username, _, err := s.Get(keyUsername)
	if err != nil {
		return model.Session{}, err
	}
	return model.Session{Token: token, Role: model.Role(role), Username: username}, nil
}

func (s *prefStoreImpl) SaveSession(sess model.Session) error {
	if err := s.Set(keyToken, sess.Token); err != nil {
		return err
	}
	if err := s.Set(keyRole, string(sess.Role)); err != nil {
		return err
	}
	if err := s.Set(keyUsername, sess.Username); err != nil {
		return err
	}
	s.notify(true)
	return nil
}

func (s *prefStoreImpl) ClearSession() error {
	for _, key := range []string{keyToken, keyRole, keyUsername} {
		if err := s.Delete(key); err != nil {
			return err
		}
	}
	s.notify(false)
	return nil
}

func (s *prefStoreImpl) Token() string {
	token, _, err := s.Get(keyToken)
	if err != nil {
		return ""
	}
	return token
}

// setKey scopes a toggle set to the current token so state never leaks
// between accounts sharing one profile.
func (s *prefStoreImpl) setKey(set string) string {
	return set + ":" + s.Token()
}

func (s *prefStoreImpl) SetMembers(set string) (map[int64]bool, error) {
	raw, ok, err := s.Get(s.setKey(set))
	if err != nil {
		return nil, err
	}
	members := map[int64]bool{}
	if !ok || raw == "" {
		return members, nil
	}

	var stored map[string]bool
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("decode %s set: %w", set, err)
	}
	for k, v := range stored {
		if !v {
			continue
		}
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			continue
		}
		members[id] = true
	}
	return members, nil
}

func (s *prefStoreImpl) InSet(set string, id int64) (bool, error) {
	members, err := s.SetMembers(set)
	if err != nil {
		return false, err
	}
	return members[id], nil
}

func (s *prefStoreImpl) SetInSet(set string, id int64, on bool) error {
	members, err := s.SetMembers(set)
	if err != nil {
		return err
	}
	if on {
		members[id] = true
	} else {
		delete(members, id)
	}

	stored := make(map[string]bool, len(members))
	for k := range members {
		stored[strconv.FormatInt(k, 10)] = true
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode %s set: %w", set, err)
	}
	return s.Set(s.setKey(set), string(raw))
}

func (s *prefStoreImpl) CachedProfile() (*model.UserProfile, bool, error) {
	raw, ok, err := s.Get(keyProfile)
	if err != nil || !ok {
		return nil, false, err
	}
	var profile model.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, false, fmt.Errorf("decode cached profile: %w", err)
	}
	return &profile, true, nil
}

func (s *prefStoreImpl) SaveCachedProfile(p *model.UserProfile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode cached profile: %w", err)
	}
	return s.Set(keyProfile, string(raw))
}

func (s *prefStoreImpl) RedirectPath() (string, error) {
	path, _, err := s.Get(keyRedirect)
	return path, err
}

func (s *prefStoreImpl) SaveRedirectPath(path string) error {
	return s.Set(keyRedirect, path)
}

func (s *prefStoreImpl) Subscribe(fn func(loggedIn bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *prefStoreImpl) notify(loggedIn bool) {
	s.mu.Lock()
	listeners := make([]func(bool), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(loggedIn)
	}
}
