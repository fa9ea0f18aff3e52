package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curados-dev/curados/internal/cli/client"
	"github.com/curados-dev/curados/internal/cli/store"
)

// fakeAPI is a scriptable session.API for unit tests.
type fakeAPI struct {
	loginResp *client.LoginResponse
	loginErr  error
	checkResp *client.SessionCheck
	checkErr  error
}

func (f *fakeAPI) Login(email, password string) (*client.LoginResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAPI) CheckSession(token string) (*client.SessionCheck, error) {
	return f.checkResp, f.checkErr
}

func TestLogin_Success_PersistsTokenAndUser(t *testing.T) {
	st := store.NewMemStore()
	api := &fakeAPI{
		loginResp: &client.LoginResponse{
			User:  &client.User{ID: "1", Name: "A", Role: "user"},
			Token: "T",
		},
	}

	sess := New(api, st)
	result := sess.Login("a@b.com", "pw")

	require.True(t, result.Success)
	assert.Empty(t, result.Message)
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "A", sess.User().Name)

	token, err := st.Get(store.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "T", token)

	data, err := st.Get(store.KeyUser)
	require.NoError(t, err)
	var cached client.User
	require.NoError(t, json.Unmarshal([]byte(data), &cached))
	assert.Equal(t, "A", cached.Name)
}

func TestLogin_Rejected_SurfacesServerMessageAndKeepsState(t *testing.T) {
	st := store.NewMemStore()
	api := &fakeAPI{
		loginErr: &client.APIError{StatusCode: 401, Message: "Invalid credentials"},
	}

	sess := New(api, st)
	result := sess.Login("a@b.com", "wrong")

	assert.False(t, result.Success)
	assert.Equal(t, "Invalid credentials", result.Message)
	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, sess.User())

	_, err := st.Get(store.KeyToken)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLogin_Rejected_DoesNotTouchExistingSession(t *testing.T) {
	st := store.NewMemStore()
	api := &fakeAPI{
		loginResp: &client.LoginResponse{
			User:  &client.User{ID: "1", Name: "A"},
			Token: "T",
		},
	}
	sess := New(api, st)
	require.True(t, sess.Login("a@b.com", "pw").Success)

	// Second attempt fails; the established session must stay intact.
	api.loginResp = nil
	api.loginErr = &client.APIError{StatusCode: 401, Message: "Invalid credentials"}

	result := sess.Login("a@b.com", "typo")
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid credentials", result.Message)
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "A", sess.User().Name)

	token, err := st.Get(store.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "T", token)
}

func TestLogin_TransportError_GenericMessage(t *testing.T) {
	st := store.NewMemStore()
	api := &fakeAPI{loginErr: errors.New("dial tcp: connection refused")}

	sess := New(api, st)
	result := sess.Login("a@b.com", "pw")

	assert.False(t, result.Success)
	assert.Equal(t, "internal error", result.Message)
	assert.False(t, sess.IsAuthenticated())
}

func TestLogin_MalformedResponse_GenericMessage(t *testing.T) {
	st := store.NewMemStore()
	api := &fakeAPI{
		loginResp: &client.LoginResponse{User: &client.User{ID: "1"}}, // no token
	}

	sess := New(api, st)
	result := sess.Login("a@b.com", "pw")

	assert.False(t, result.Success)
	assert.Equal(t, "internal error", result.Message)
	assert.False(t, sess.IsAuthenticated())
	_, err := st.Get(store.KeyToken)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLogout_Idempotent(t *testing.T) {
	st := store.NewMemStore()
	api := &fakeAPI{
		loginResp: &client.LoginResponse{
			User:  &client.User{ID: "1", Name: "A"},
			Token: "T",
		},
	}
	sess := New(api, st)
	require.True(t, sess.Login("a@b.com", "pw").Success)

	sess.Logout()
	sess.Logout()

	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, sess.User())

	_, err := st.Get(store.KeyToken)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Get(store.KeyUser)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestBootstrap_NoToken_LoggedOut(t *testing.T) {
	st := store.NewMemStore()
	sess := New(&fakeAPI{}, st)

	sess.Bootstrap()

	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, sess.User())
}

func TestBootstrap_ServerConfirms_LoggedIn(t *testing.T) {
	st := store.NewMemStore()
	require.NoError(t, st.Set(store.KeyToken, "T"))

	api := &fakeAPI{
		checkResp: &client.SessionCheck{
			IsAuthenticated: true,
			User:            &client.User{ID: "2", Name: "B"},
		},
	}
	sess := New(api, st)

	sess.Bootstrap()

	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "B", sess.User().Name)

	// Token stays; the authoritative user snapshot is re-cached.
	token, err := st.Get(store.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "T", token)
	_, err = st.Get(store.KeyUser)
	assert.NoError(t, err)
}

func TestBootstrap_ServerRejects_ClearsToken(t *testing.T) {
	st := store.NewMemStore()
	require.NoError(t, st.Set(store.KeyToken, "T"))
	require.NoError(t, st.Set(store.KeyUser, `{"id":"2","name":"B"}`))

	api := &fakeAPI{
		checkErr: &client.APIError{StatusCode: 404, Message: "Not Found"},
	}
	sess := New(api, st)

	sess.Bootstrap()

	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, sess.User())

	_, err := st.Get(store.KeyToken)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Get(store.KeyUser)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestBootstrap_FalsyFlag_ClearsToken(t *testing.T) {
	st := store.NewMemStore()
	require.NoError(t, st.Set(store.KeyToken, "T"))

	api := &fakeAPI{
		checkResp: &client.SessionCheck{IsAuthenticated: false},
	}
	sess := New(api, st)

	sess.Bootstrap()

	assert.False(t, sess.IsAuthenticated())
	_, err := st.Get(store.KeyToken)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestBootstrap_TruthyFlagWithoutUser_ClearsToken(t *testing.T) {
	st := store.NewMemStore()
	require.NoError(t, st.Set(store.KeyToken, "T"))

	// Malformed confirmation: the flag is truthy but no user came back.
	api := &fakeAPI{
		checkResp: &client.SessionCheck{IsAuthenticated: true, User: nil},
	}
	sess := New(api, st)

	sess.Bootstrap()

	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, sess.User())
	_, err := st.Get(store.KeyToken)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// TestBootstrap_AgainstMockBackend runs the reconciliation through the real
// HTTP client against a mock backend returning 404 for the stored token.
func TestBootstrap_AgainstMockBackend(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/check-session" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer T" {
			t.Errorf("unexpected Authorization header: %q", got)
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"session expired"}`))
	}))
	defer backend.Close()

	st := store.NewMemStore()
	require.NoError(t, st.Set(store.KeyToken, "T"))

	sess := New(client.New(backend.URL), st)
	sess.Bootstrap()

	assert.False(t, sess.IsAuthenticated())
	_, err := st.Get(store.KeyToken)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestToggleTheme_PersistsAcrossSessions(t *testing.T) {
	st := store.NewMemStore()

	sess := New(&fakeAPI{}, st)
	assert.Equal(t, ThemeLight, sess.Theme())

	assert.Equal(t, ThemeDark, sess.ToggleTheme())

	persisted, err := st.Get(store.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", persisted)

	// Simulated reload: a fresh session on the same store reads dark back.
	reloaded := New(&fakeAPI{}, st)
	assert.Equal(t, ThemeDark, reloaded.Theme())

	assert.Equal(t, ThemeLight, reloaded.ToggleTheme())
	persisted, err = st.Get(store.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "light", persisted)
}

func TestToggleTheme_IndependentOfAuthState(t *testing.T) {
	st := store.NewMemStore()
	sess := New(&fakeAPI{}, st)

	sess.ToggleTheme()
	sess.Logout()

	// Logout clears credentials but never the theme.
	persisted, err := st.Get(store.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", persisted)
	assert.Equal(t, ThemeDark, sess.Theme())
}

func TestCachedUser(t *testing.T) {
	st := store.NewMemStore()
	sess := New(&fakeAPI{}, st)

	assert.Nil(t, sess.CachedUser())

	require.NoError(t, st.Set(store.KeyUser, `{"id":7,"name":"B","role":"admin"}`))
	cached := sess.CachedUser()
	require.NotNil(t, cached)
	assert.Equal(t, "7", cached.ID)
	assert.True(t, cached.IsAdmin())
}
