// Package session owns the client-side authentication state: whether a user
// is logged in, who they are, and the persisted UI theme. It is the single
// source of truth for that state; commands are leaf consumers that read it
// and call the operations below. Nothing here ever panics or returns a raw
// transport error to a caller: failures resolve to a logged-out state or to
// a tagged Result.
package session

import (
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/curados-dev/curados/internal/cli/client"
	"github.com/curados-dev/curados/internal/cli/store"
)

// Theme is the persisted UI theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// API is the slice of the backend client the session depends on.
type API interface {
	Login(email, password string) (*client.LoginResponse, error)
	CheckSession(token string) (*client.SessionCheck, error)
}

// Result is the outcome of a login attempt. Message carries the
// server-supplied text when the backend rejected the credentials, or a
// generic "internal error" when the backend could not be reached.
type Result struct {
	Success bool
	Message string
}

// internalError is returned for transport failures and malformed responses,
// where no server message exists to show the user.
const internalError = "internal error"

// Session is the authentication/theme state container. One Session is
// created per CLI invocation and its operations are called sequentially;
// there is no internal locking.
type Session struct {
	api   API
	store store.Store

	authenticated bool
	user          *client.User
	theme         Theme
}

// New creates a Session bound to the given backend API and durable store.
// The theme preference is read once here; authentication state starts
// logged-out until Bootstrap or Login resolves it.
func New(api API, st store.Store) *Session {
	theme := ThemeLight
	if v, err := st.Get(store.KeyTheme); err == nil && Theme(v) == ThemeDark {
		theme = ThemeDark
	}

	return &Session{
		api:   api,
		store: st,
		theme: theme,
	}
}

// IsAuthenticated reports whether a user is currently logged in.
func (s *Session) IsAuthenticated() bool {
	return s.authenticated
}

// User returns the current user summary, or nil when logged out.
func (s *Session) User() *client.User {
	return s.user
}

// Theme returns the current theme preference.
func (s *Session) Theme() Theme {
	return s.theme
}

// CachedUser returns the persisted user snapshot without consulting the
// backend, or nil when none exists. The cache exists for fast display only;
// Bootstrap's server response is authoritative.
func (s *Session) CachedUser() *client.User {
	data, err := s.store.Get(store.KeyUser)
	if err != nil {
		return nil
	}

	var u client.User
	if err := json.Unmarshal([]byte(data), &u); err != nil {
		return nil
	}
	return &u
}

// Bootstrap reconciles the persisted credential against the backend. It is a
// background reconciliation, not a user action: any failure (no token,
// transport error, rejected token, malformed response) silently resolves to
// the logged-out state, and a rejected token is also cleared from the store.
func (s *Session) Bootstrap() {
	token, err := s.store.Get(store.KeyToken)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Debug().Err(err).Msg("failed to read persisted token")
		}
		s.authenticated = false
		s.user = nil
		return
	}

	// A confirmation without a user is malformed; treat it like a rejected
	// token so the session never reports authenticated with nobody behind it.
	check, err := s.api.CheckSession(token)
	if err != nil || check == nil || !check.IsAuthenticated || check.User == nil {
		if err != nil {
			log.Debug().Err(err).Msg("session check failed")
		}
		s.Logout()
		return
	}

	s.authenticated = true
	s.user = check.User

	// The server's copy is authoritative; refresh the cached snapshot.
	if data, err := json.Marshal(check.User); err == nil {
		if err := s.store.Set(store.KeyUser, string(data)); err != nil {
			log.Warn().Err(err).Msg("failed to cache user snapshot")
		}
	}
}

// Login authenticates with the backend and, on success, persists the issued
// token and user snapshot. On any failure the session state is left exactly
// as it was: a rejected login returns the server's message, an unreachable
// backend returns a generic one. Credential presence is the caller's
// responsibility; empty fields are sent as-is and rejected server-side.
func (s *Session) Login(email, password string) Result {
	resp, err := s.api.Login(email, password)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			return Result{Message: apiErr.Message}
		}
		log.Debug().Err(err).Msg("login request failed")
		return Result{Message: internalError}
	}

	// A 2xx body missing the token or user is malformed; treat it like an
	// unreachable backend rather than entering a half-authenticated state.
	if resp == nil || resp.Token == "" || resp.User == nil {
		log.Debug().Msg("malformed login response")
		return Result{Message: internalError}
	}

	if err := s.store.Set(store.KeyToken, resp.Token); err != nil {
		log.Warn().Err(err).Msg("failed to persist token")
		return Result{Message: internalError}
	}
	if data, err := json.Marshal(resp.User); err == nil {
		if err := s.store.Set(store.KeyUser, string(data)); err != nil {
			log.Warn().Err(err).Msg("failed to cache user snapshot")
		}
	}

	s.authenticated = true
	s.user = resp.User
	return Result{Success: true}
}

// Logout clears the in-memory session and removes the persisted token and
// user snapshot. Idempotent. It does not call the backend: the server-side
// session is not invalidated here (see DESIGN.md), matching the site's
// observed behavior.
func (s *Session) Logout() {
	s.authenticated = false
	s.user = nil

	if err := s.store.Delete(store.KeyToken); err != nil {
		log.Warn().Err(err).Msg("failed to delete persisted token")
	}
	if err := s.store.Delete(store.KeyUser); err != nil {
		log.Warn().Err(err).Msg("failed to delete cached user snapshot")
	}
}

// ToggleTheme flips the theme between light and dark and persists the new
// value. Always available, regardless of authentication state.
func (s *Session) ToggleTheme() Theme {
	if s.theme == ThemeDark {
		s.theme = ThemeLight
	} else {
		s.theme = ThemeDark
	}

	if err := s.store.Set(store.KeyTheme, string(s.theme)); err != nil {
		log.Warn().Err(err).Msg("failed to persist theme")
	}
	return s.theme
}
