package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Dwayne234/HR-PeopleTeam/internal/config"
	"github.com/Dwayne234/HR-PeopleTeam/pkg/log"
	"github.com/Dwayne234/HR-PeopleTeam/pkg/srv"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start a chat session with the People Team assistant",
	Long:  `Starts an interactive session: questions are relayed to the configured GenAI agent endpoint together with the full conversation so far. Use /clear, /export json and /export text inside the chat.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		loadEnvFiles()

		// Parse configs against a throwaway stderr logger first: the real
		// log destination depends on which transport is selected.
		bootCtx, flushBoot := setupLogger(ctx, os.Stderr)
		appCfg := config.NewAppConfig(bootCtx)
		genCfg := config.NewGenerationConfig(bootCtx)
		flushBoot()

		logOut, closeLog, err := openLogOutput(appCfg)
		if err != nil {
			return err
		}
		defer closeLog()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx, logOut)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting people team assistant")

		services, err := NewServices(ctx, appCfg, genCfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize services")
		}

		srv.Run(ctx, services)
		logger.Info().Msg("session ended")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// openLogOutput picks where logs go: the TUI owns the terminal, so its logs
// land in a file under the runtime path.
func openLogOutput(cfg *config.AppConfig) (*os.File, func(), error) {
	if !cfg.EnableTUI {
		return os.Stdout, func() {}, nil
	}

	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	f, err := os.OpenFile(cfg.GetLogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// loadEnvFiles mirrors the original dotenv behavior: a .env next to the
// binary wins, then one under the runtime path.
func loadEnvFiles() {
	for _, p := range []string{".env", filepath.Join(config.GetRuntimePath(), ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = loadEnv(p)
		}
	}
}
