package commands

import "testing"

// TestRootCommand tests command registration and flags
func TestRootCommand(t *testing.T) {
	subcommands := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		subcommands[cmd.Name()] = true
	}

	for _, name := range []string{"models", "pull", "version", "config"} {
		if !subcommands[name] {
			t.Errorf("subcommand %q not registered", name)
		}
	}

	for _, flag := range []string{"model", "base-url"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag %q not registered", flag)
		}
	}
	for _, flag := range []string{"output", "file", "system", "stream"} {
		if rootCmd.Flags().Lookup(flag) == nil {
			t.Errorf("flag %q not registered", flag)
		}
	}
}
