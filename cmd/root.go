// Package cmd provides the root command and CLI setup for fastascan.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/skua-bio/fastascan/internal/adapter"
	"github.com/skua-bio/fastascan/internal/config"
	"github.com/skua-bio/fastascan/internal/controller"
	"github.com/skua-bio/fastascan/internal/domain"
	m "github.com/skua-bio/fastascan/internal/model"
	pkgconfig "github.com/skua-bio/fastascan/pkg/config"
)

// version is overridden at build time via ldflags.
var version = "dev"

var fsAdapter adapter.ScanFS
var workflow domain.Workflow
var logger *log.Logger

func init() {
	fsAdapter = adapter.NewLocalFS()
	workflow = domain.NewWorkflow(fsAdapter)
	logger = log.New(os.Stderr)
}

var configFlag string
var excludeFlags []string
var gitignoreFlag bool
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fastascan [directory]",
		Short: "Summarize fasta files under a directory",
		Long: `Fastascan walks a directory tree, collects every file ending in .fa or
.fasta and prints a summary table: sequences per file, combined residue
length, symlink status and molecule type, plus overall totals. Files that
carry a fasta extension but contain no header line are listed separately.

With no argument the current directory is scanned.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, scanArgs, err := prepare(args)
			if err != nil {
				return err
			}

			report, err := workflow.Scan(scanArgs)
			if err != nil {
				return scanHint(err)
			}

			logger.Debug("scan finished",
				"root", report.Root,
				"files", len(report.Files),
				"discarded", len(report.Discarded))

			return controller.NewSimpleUI(cmd).DisplayReport(report)
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to a yaml config file")
	cmd.PersistentFlags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.PersistentFlags().BoolVar(&gitignoreFlag, "gitignore", false, "skip candidates matched by the root .gitignore")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// prepare loads the configuration, applies it to the logger and merges
// it with the command line into the scan arguments.
func prepare(args []string) (*config.Config, domain.ScanArgs, error) {
	cfg := config.NewDefaultConfig()

	if configFlag != "" {
		if err := pkgconfig.Load(configFlag, cfg); err != nil {
			return nil, domain.ScanArgs{}, err
		}
	}

	applyLogLevel(cfg)

	root := m.Path(".")
	if len(args) > 0 {
		root = m.Path(args[0])
	}

	scanArgs := domain.ScanArgs{
		Root:       root,
		Extensions: cfg.Scan.Extensions,
		Exclude:    append(append([]string{}, cfg.Scan.Exclude...), excludeFlags...),
	}

	if gitignoreFlag || cfg.Scan.UseGitignore {
		matcher, err := adapter.LoadGitignore(root)
		if err != nil {
			return nil, domain.ScanArgs{}, err
		}

		scanArgs.Ignore = matcher
	}

	return cfg, scanArgs, nil
}

func applyLogLevel(cfg *config.Config) {
	if verboseFlag {
		logger.SetLevel(log.DebugLevel)

		return
	}

	level, err := log.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		return
	}

	logger.SetLevel(level)
}

// scanHint decorates the fatal no-candidates error with a pointer at the
// most common cause.
func scanHint(err error) error {
	if errors.Is(err, domain.ErrNoCandidates) {
		return fmt.Errorf("%w; check that the directory argument points at your sequence collection", err)
	}

	return err
}
