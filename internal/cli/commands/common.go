package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/curados-dev/curados/internal/cli/client"
	"github.com/curados-dev/curados/internal/cli/config"
	"github.com/curados-dev/curados/internal/cli/envselect"
	"github.com/curados-dev/curados/internal/cli/session"
	"github.com/curados-dev/curados/internal/cli/store"
)

// app bundles the wired-up dependencies a command needs: the resolved
// environment, the durable store, the API client and the session context.
type app struct {
	Env     *config.Environment
	Store   store.Store
	Client  *client.Client
	Session *session.Session
}

// setup loads the project config, resolves the backend environment and wires
// the client and session. This is the common entry point for every command
// that talks to the backend.
func setup(envName string) (*app, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w\nRun 'curados init' to create a configuration file", err)
	}

	st, err := newStore()
	if err != nil {
		return nil, err
	}

	env, err := envselect.Resolve(cfg, st, envName)
	if err != nil {
		return nil, err
	}
	if env.URL == "" {
		return nil, fmt.Errorf("environment '%s' has no URL. Please edit %s", env.Name, config.ConfigFileName)
	}

	apiClient := client.New(env.URL)

	return &app{
		Env:     env,
		Store:   st,
		Client:  apiClient,
		Session: session.New(apiClient, st),
	}, nil
}

// newStore builds the durable store: a state file with the token routed to
// the OS keychain. CURADOS_NO_KEYRING=1 keeps everything in the file for
// headless machines and CI.
func newStore() (store.Store, error) {
	fileStore, err := store.NewFileStore()
	if err != nil {
		return nil, err
	}

	if os.Getenv("CURADOS_NO_KEYRING") != "" {
		return fileStore, nil
	}
	return store.NewKeyringStore(fileStore), nil
}

// validationError turns a validator error into a one-line user message
// naming the first failing field.
func validationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		return fmt.Errorf("invalid %s: failed '%s' check", errs[0].Field(), errs[0].Tag())
	}
	return fmt.Errorf("invalid input: %w", err)
}

// authToken returns the persisted bearer token for commands that require an
// authenticated user.
func authToken(st store.Store) (string, error) {
	token, err := st.Get(store.KeyToken)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", fmt.Errorf("not logged in. Run 'curados login' first")
		}
		return "", fmt.Errorf("failed to load token: %w", err)
	}
	return token, nil
}
