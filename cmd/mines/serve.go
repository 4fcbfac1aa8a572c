package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeBombs  int
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the mines SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own field sized to the client's terminal.
Without --bombs the bomb count follows ssh.density from the config.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.mines/host_key

Examples:
  mines serve                           # Listen on :23235 with auto-generated key
  mines serve --ssh :2222               # Listen on port 2222
  mines serve --bombs 60                # Same bomb count for everyone

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagServeBombs, "bombs", 0, "Bombs per session (0 = use the configured density)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (0 = from config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if flagServeBombs < 0 {
		return fmt.Errorf("%w, got %d", errBadBombs, flagServeBombs)
	}

	settings, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	theme, err := settings.GameTheme()
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:        settings.SSH.Address,
		HostKeyPath:    settings.SSH.HostKey,
		IdleTimeout:    settings.SSH.IdleTimeout(),
		Bombs:          flagServeBombs,
		Density:        settings.SSH.Density,
		Theme:          theme,
		BannerDuration: settings.Banner.Duration(),
	}
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	logger, closeLog, err := newLogger(os.Stderr, "mines-ssh")
	if err != nil {
		return err
	}
	defer closeLog()

	cmd.SilenceUsage = true

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting mines SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(ctx)
}
