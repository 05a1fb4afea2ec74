package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/all-my-doggies/internal/app"
	"github.com/vovakirdan/all-my-doggies/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the doggies SSH server",
	Long: `Start an SSH server that gives every connection its own dog.

The SSH user name becomes the player name. Sessions are recorded in the
server's database, so 'doggies stats' shows everyone's visits.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.doggies/host_key

Examples:
  doggies serve                           # Listen on :23234 with auto-generated key
  doggies serve --ssh :2222               # Listen on port 2222
  doggies serve --host-key ./my_host_key  # Use specific host key
  doggies serve --db ./sessions.db        # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger(os.Stderr)
	defer closeLog()

	bank, err := app.LoadBank(cfg)
	if err != nil {
		fail("%v", err)
	}

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	sshCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}
	server, err := tui.NewSSHServer(sshCfg, cfg, bank, store, logger.WithPrefix("ssh"))
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting doggies SSH server on %s\n", sshCfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
