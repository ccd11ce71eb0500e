package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the hangman SSH server",
	Long: `Start an SSH server that allows users to connect and play hangman.

Each SSH connection gets its own game with its own answers and countdown.
All sessions share the vocabulary loaded at startup.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.hangman/host_key

Examples:
  hangman serve                           # Listen on :23235 with auto-generated key
  hangman serve --ssh :2222               # Listen on port 2222
  hangman serve --host-key ./my_host_key  # Use specific host key
  hangman serve --store ./vocab.db        # Serve answers from a store

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", -1, "Idle timeout in minutes before disconnecting (0 = never)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr, cfg, "hangman-ssh")

	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKey = flagHostKey
	}
	if flagIdleTimeout >= 0 {
		cfg.SSH.IdleTimeout = flagIdleTimeout
	}

	v, err := loadVocabulary(cfg, logger)
	if err != nil {
		fatalf("%v", err)
	}

	hostKey := ""
	if cfg.SSH.HostKey != "" {
		if hostKey, err = config.ExpandHome(cfg.SSH.HostKey); err != nil {
			fatalf("%v", err)
		}
	}

	serverCfg := tui.SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: hostKey,
		IdleTimeout: time.Duration(cfg.SSH.IdleTimeout) * time.Minute,
	}
	settings := tui.Settings{
		Lives:           cfg.Game.Lives,
		GuessTimeout:    cfg.Game.GuessTimeout,
		Level:           cfg.GameLevel(),
		ValidateAnswers: cfg.Game.ValidateAnswers,
	}

	server, err := tui.NewSSHServer(serverCfg, v, settings, cfg.Game.PhraseChance, logger)
	if err != nil {
		fatalf("creating server: %v", err)
	}

	fmt.Printf("Starting hangman SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatalf("server: %v", err)
	}
}

// portOf returns the port of a host:port address, or the address itself.
func portOf(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return port
}
