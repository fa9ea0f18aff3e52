package envselect

import (
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/curados-dev/curados/internal/cli/config"
	"github.com/curados-dev/curados/internal/cli/store"
)

// Resolve determines which backend environment to use based on the following
// priority:
// 1. If the envName flag is provided, use that environment
// 2. If an environment was previously selected, use the persisted one
// 3. If only one environment is configured, use that
// 4. Otherwise, prompt the user to select one interactively
func Resolve(cfg *config.Config, st store.Store, envName string) (*config.Environment, error) {
	// Priority 1: explicit flag
	if envName != "" {
		return cfg.GetEnvironment(envName)
	}

	// Priority 2: persisted selection
	if selected, err := st.Get(store.KeyEnvironment); err == nil && selected != "" {
		env, err := cfg.GetEnvironment(selected)
		if err != nil {
			// Selected environment no longer exists in the config, clear it
			_ = st.Delete(store.KeyEnvironment)
		} else {
			return env, nil
		}
	}

	// Priority 3: single environment
	if len(cfg.Environments) == 1 {
		env := &cfg.Environments[0]
		if err := st.Set(store.KeyEnvironment, env.Name); err != nil {
			fmt.Printf("Warning: failed to save selected environment: %v\n", err)
		}
		return env, nil
	}

	// Priority 4: interactive selection
	env, err := Prompt(cfg)
	if err != nil {
		return nil, err
	}

	if err := st.Set(store.KeyEnvironment, env.Name); err != nil {
		fmt.Printf("Warning: failed to save selected environment: %v\n", err)
	}

	return env, nil
}

// Prompt shows an interactive prompt for the user to select an environment
func Prompt(cfg *config.Config) (*config.Environment, error) {
	if len(cfg.Environments) == 0 {
		return nil, fmt.Errorf("no environments configured in %s", config.ConfigFileName)
	}

	type envOption struct {
		Label string
		Env   *config.Environment
	}

	options := make([]envOption, len(cfg.Environments))
	for i := range cfg.Environments {
		env := &cfg.Environments[i]
		options[i] = envOption{
			Label: fmt.Sprintf("%s (%s)", env.Name, env.URL),
			Env:   env,
		}
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "> {{ .Label | cyan }}",
		Inactive: "  {{ .Label }}",
		Selected: "{{ .Label | green }}",
	}

	prompt := promptui.Select{
		Label:     "Select an environment",
		Items:     options,
		Templates: templates,
		Size:      10,
	}

	index, _, err := prompt.Run()
	if err != nil {
		return nil, fmt.Errorf("environment selection cancelled: %w", err)
	}

	return options[index].Env, nil
}
