package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"exifstamp/internal/app"
	"exifstamp/internal/config"
	"exifstamp/internal/domain"
	appErrors "exifstamp/internal/errors"
	"exifstamp/internal/infra/exif"
	"exifstamp/internal/infra/fs"
	"exifstamp/internal/infra/stamp"
	"exifstamp/internal/logging"
	"exifstamp/internal/presentation"
	"exifstamp/internal/tui"
)

var version = "dev"

var errStrict = errors.New("one or more steps failed")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		exitWithError(err)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "exifstamp [image]",
		Short: "Set a photo's file dates from its EXIF capture date",
		Long: "exifstamp reads the EXIF DateTimeOriginal tag of an image and sets the file's creation date to it.\n" +
			"If the modification date is earlier than the capture date it is backdated to the capture date first.\n" +
			"Without an argument the path is read from standard input.",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cmd)
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			if cfg.TUI {
				return runTUI(cmd, cfg, path)
			}

			logger := logging.New(cmd.ErrOrStderr(), cfg.Verbose)
			defer logger.Sync()

			syncer, err := newSyncer(cfg, logger)
			if err != nil {
				return err
			}

			if path == "" {
				path, err = promptPath(cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
			}

			report, err := syncer.Sync(cmd.Context(), path)
			if err != nil {
				return appErrors.Wrap(appErrors.Internal, "sync", path, err)
			}

			printer := presentation.Printer{Writer: cmd.OutOrStdout(), Verbose: cfg.Verbose}
			printer.PrintReport(report)
			return strictResult(cfg, report)
		},
	}

	config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newInspectCmd(v))
	rootCmd.AddCommand(newConfigCmd(v))

	return rootCmd
}

func newInspectCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <image>",
		Short: "Show the capture, modification and creation dates without changing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cmd)
			if err != nil {
				return err
			}
			logger := logging.New(cmd.ErrOrStderr(), cfg.Verbose)
			defer logger.Sync()

			syncer := app.Syncer{FS: fs.OSFS{}, Exif: exif.Reader{}, Logger: logger}
			report, err := syncer.Inspect(cmd.Context(), args[0])
			if err != nil {
				return appErrors.Wrap(appErrors.Internal, "inspect", args[0], err)
			}

			presentation.Printer{Writer: cmd.OutOrStdout(), Verbose: cfg.Verbose}.PrintInspection(report)
			if cfg.Strict && report.Capture == nil {
				return errStrict
			}
			return nil
		},
	}
}

func loadConfig(v *viper.Viper, cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(v, cmd.Flags())
	if err != nil {
		return config.Config{}, appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
	}
	return cfg, nil
}

func newSyncer(cfg config.Config, logger logging.Logger) (*app.Syncer, error) {
	syncer := &app.Syncer{
		FS:     fs.OSFS{},
		Exif:   exif.Reader{},
		Logger: logger,
		DryRun: cfg.DryRun,
	}
	if cfg.DryRun {
		return syncer, nil
	}
	writer, err := stamp.New(cfg.Writer, cfg.SetFilePath)
	if err != nil {
		return nil, appErrors.Wrap(appErrors.InvalidConfig, "writer", "", err)
	}
	syncer.Writer = writer
	logger.Verbosef("Using %s writer (SetFile at %s)", cfg.Writer, cfg.SetFilePath)
	return syncer, nil
}

func runTUI(cmd *cobra.Command, cfg config.Config, path string) error {
	// Log lines would tear the alternate screen; the report carries every failure.
	syncer, err := newSyncer(cfg, logging.Logger{})
	if err != nil {
		return err
	}

	model := tui.NewModel(tui.Config{
		Context: cmd.Context(),
		Path:    path,
		DryRun:  cfg.DryRun,
		Verbose: cfg.Verbose,
		Sync:    syncer.Sync,
		Exists:  fs.OSFS{}.Exists,
	})

	program := tea.NewProgram(model,
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := program.Run()
	if err != nil {
		return appErrors.Wrap(appErrors.Internal, "tui", "", err)
	}

	m, ok := final.(tui.Model)
	if !ok || m.Quitting || m.Phase == tui.PhasePrompt {
		return nil
	}
	if m.Err != nil {
		return m.Err
	}
	return strictResult(cfg, m.Report)
}

// promptPath asks for a path on out and reads one line from in. Paths dragged
// into a terminal arrive quoted or with escaped spaces; both are undone.
func promptPath(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter the path to the image file: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", appErrors.Wrap(appErrors.IOFailure, "prompt", "", err)
	}
	path := cleanTypedPath(line)
	if path == "" {
		return "", appErrors.Wrap(appErrors.InvalidConfig, "prompt", "", errors.New("no image path given"))
	}
	return path, nil
}

func cleanTypedPath(line string) string {
	path := strings.TrimSpace(line)
	if len(path) >= 2 {
		if (path[0] == '"' && path[len(path)-1] == '"') || (path[0] == '\'' && path[len(path)-1] == '\'') {
			return path[1 : len(path)-1]
		}
	}
	return strings.ReplaceAll(path, `\ `, " ")
}

func strictResult(cfg config.Config, report domain.Report) error {
	if !cfg.Strict {
		return nil
	}
	if report.Failed() || report.Capture == nil {
		return errStrict
	}
	return nil
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, appErrors.UserMessage(err))
	os.Exit(1)
}
