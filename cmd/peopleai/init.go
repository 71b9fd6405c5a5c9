package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Dwayne234/HR-PeopleTeam/internal/config"
	"github.com/Dwayne234/HR-PeopleTeam/pkg/env"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter .env under the runtime path",
	Long:  `Creates the runtime directory and writes a .env with the current configuration values so GENAI_API_URL and AGENT_ACCESS_KEY have an obvious place to live. Refuses to overwrite an existing file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context(), os.Stdout)
		defer flushLog()

		runtimePath := config.GetRuntimePath()
		if err := os.MkdirAll(runtimePath, 0755); err != nil {
			return fmt.Errorf("failed to create runtime directory: %w", err)
		}

		envFile := filepath.Join(runtimePath, ".env")
		if _, err := os.Stat(envFile); err == nil {
			return fmt.Errorf("%s already exists, remove it first", envFile)
		}

		appCfg := config.NewAppConfig(ctx)
		genCfg := config.NewGenerationConfig(ctx)

		appEnv, err := env.MarshalEnv(appCfg)
		if err != nil {
			return fmt.Errorf("failed to marshal app config: %w", err)
		}
		genEnv, err := env.MarshalEnv(genCfg)
		if err != nil {
			return fmt.Errorf("failed to marshal generation config: %w", err)
		}

		content := "# People Team AI Assistant configuration\n" +
			"# GENAI_API_URL and AGENT_ACCESS_KEY are required before chatting.\n"
		if appCfg.BaseURL == "" {
			content += "GENAI_API_URL=\n"
		}
		if appCfg.AccessKey == "" {
			content += "AGENT_ACCESS_KEY=\n"
		}
		content += appEnv + genEnv

		if err := os.WriteFile(envFile, []byte(content), 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", envFile, err)
		}

		fmt.Printf("Wrote %s\n", envFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
