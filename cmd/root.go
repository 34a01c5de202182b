package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Johannes-Berggren/commitgoblin/internal/config"
	"github.com/Johannes-Berggren/commitgoblin/internal/git"
	"github.com/Johannes-Berggren/commitgoblin/internal/log"
	"github.com/spf13/cobra"
)

var (
	workDir    string
	configPath string
	remoteFlag string
	branchFlag string
	debugLog   string
	lenient    bool
)

// session holds what every subcommand needs once flags and config are resolved.
type session struct {
	cfg    *config.Config
	client *git.Client // runs in workDir
}

var current *session

var rootCmd = &cobra.Command{
	Use:   "commitgoblin",
	Short: "Commit or remove files one commit at a time",
	Long: `commitgoblin turns pending work into one commit per file.

  commitgoblin commit   commit every changed file on its own as "Add <name>", then push
  commitgoblin remove   remove every matching document (*.md) one commit at a time, then push`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "init" {
			return nil
		}
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		current = s
		return nil
	},
}

// exitError carries a failure that has already been reported to the user.
type exitError struct {
	msg string
}

func (e *exitError) Error() string {
	return e.msg
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if closeErr := log.Close(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "Error closing debug log: %v\n", closeErr)
	}

	if err != nil {
		var reported *exitError
		if !errors.As(err, &reported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		} else if reported.msg != "" {
			fmt.Fprintln(os.Stderr, reported.msg)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&workDir, "dir", "C", ".", "Run as if started in this directory")
	flags.StringVar(&configPath, "config", "", "Config file (default: nearest "+config.ConfigFile+")")
	flags.StringVar(&remoteFlag, "remote", "", "Remote to push to (default: git's push configuration)")
	flags.StringVar(&branchFlag, "branch", "", "Branch to push (requires --remote)")
	flags.StringVar(&debugLog, "debug-log", "", "Write debug logs to this file")
	flags.BoolVar(&lenient, "lenient", false, "Exit 0 even when some files failed")

	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(initCmd)
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(configPath, workDir)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("remote") {
		cfg.Remote = remoteFlag
	}
	if flags.Changed("branch") {
		cfg.Branch = branchFlag
	}
	if flags.Changed("lenient") {
		cfg.Lenient = lenient
	}
	if flags.Changed("debug-log") {
		cfg.DebugLog = debugLog
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.DebugLog != "" {
		if err := log.SetFile(cfg.DebugLog); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", cfg.DebugLog, err)
		}
	}
	log.Debugf("config loaded from %q", cfg.Path())

	client := git.NewClient(workDir, nil)
	client.SetTimeout(cfg.Timeout())

	if !client.IsWorkTree(cmd.Context()) {
		return nil, &exitError{msg: "Error: Not a git repository"}
	}

	return &session{cfg: cfg, client: client}, nil
}

// finish turns a run outcome into the process exit status.
func finish(failed bool) error {
	if failed && !current.cfg.Lenient {
		return &exitError{}
	}
	return nil
}
