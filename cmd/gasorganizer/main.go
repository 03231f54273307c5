// cmd/gasorganizer/main.go
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	pflag "github.com/spf13/pflag"

	"github.com/gagin/gasorganizer/analytictools"
)

const Version = "0.1.0"

// --- Global Variables for Flags ---
var (
	targetDirFlagValue string
	maxFilesFlag       int
	noTree             bool
	noDiagnostics      bool
	restructureDest    string
	manualFiles        []string
	excludePatterns    []string
	noGitignore        bool
	cleanDest          bool
	assumeYes          bool
	logLevelStr        string
	configFileFlag     string
	versionFlag        bool
)

var errorColor = color.New(color.FgRed, color.Bold)

func init() {
	pflag.StringVarP(&targetDirFlagValue, "directory", "d", ".", "Dataset directory to inspect.")
	pflag.IntVarP(&maxFilesFlag, "maxfiles", "m", analytictools.DefaultMaxFiles, "Entries shown per directory in the tree view (overrides config).")
	pflag.BoolVar(&noTree, "no-tree", false, "Do not print the directory tree.")
	pflag.BoolVar(&noDiagnostics, "no-diagnostics", false, "Do not print file and directory counts.")
	pflag.StringVarP(&restructureDest, "restructure", "r", "", "Copy gas files into per-gas directories under this path.")
	pflag.StringSliceVarP(&manualFiles, "files", "f", []string{}, "Comma-separated gas files to copy regardless of excludes (with -r).")
	pflag.StringSliceVarP(&excludePatterns, "exclude", "x", []string{}, "Comma-separated glob patterns to skip when restructuring (adds to config).")
	pflag.BoolVar(&noGitignore, "no-gitignore", false, "Disable .gitignore processing when restructuring.")
	pflag.BoolVar(&cleanDest, "clean", false, "Delete the previous per-gas output before restructuring.")
	pflag.BoolVarP(&assumeYes, "yes", "y", false, "Do not ask before deleting with --clean.")
	pflag.StringVar(&logLevelStr, "loglevel", "info", "Set logging verbosity (debug, info, warn, error).")
	pflag.StringVarP(&configFileFlag, "config", "c", "", "Path to a custom configuration file (overrides ~/.config/gasorganizer/config.toml).")
	pflag.BoolVarP(&versionFlag, "version", "v", false, "Print version and exit.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: %s [dataset_directory]
   or: %s [flags]

Inspect a greenhouse-gas dataset and optionally reorganize it by gas.

Mode 1: Provide a single [dataset_directory] positional argument.
        Cannot be combined with -d.
Mode 2: Use -d to specify the dataset directory (defaults to '.').

Flags:
`, os.Args[0], os.Args[0])
		pflag.PrintDefaults()
	}
}

// fatalf prints a highlighted error to stderr and exits with status 1.
func fatalf(format string, args ...any) {
	errorColor.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// --- Main Execution ---
func main() {
	pflag.Parse()

	if versionFlag {
		fmt.Printf("gasorganizer version %s\n", Version)
		os.Exit(0)
	}

	// Setup Logging
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q, defaulting to 'info'.\n", logLevelStr)
		logLevel = slog.LevelInfo
	}
	logOpts := &slog.HandlerOptions{Level: logLevel, AddSource: logLevel <= slog.LevelDebug}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, logOpts)))

	appConfig, loadErr := loadConfig(configFileFlag)
	if loadErr != nil {
		if pflag.CommandLine.Changed("config") {
			fatalf("could not load configuration file '%s': %v", configFileFlag, loadErr)
		}
		slog.Warn("Proceeding with default settings due to config load issue.", "error", loadErr)
		appConfig = defaultConfig
	}

	// Argument Mode Validation
	datasetDir, err := resolveDatasetDir(pflag.Args())
	if err != nil {
		fatalf("%v", err)
	}

	absDatasetDir, err := filepath.Abs(datasetDir)
	if err != nil {
		fatalf("invalid dataset directory path '%s': %v", datasetDir, err)
	}

	// Determine final settings (flags override config, excludes are additive)
	maxFiles, err := resolveMaxFiles(appConfig, pflag.CommandLine.Changed("maxfiles"), maxFilesFlag)
	if err != nil {
		fatalf("%v", err)
	}
	useGitignore := *appConfig.UseGitignore
	if pflag.CommandLine.Changed("no-gitignore") {
		useGitignore = !noGitignore
	}
	opts := runOptions{
		DatasetDir:      absDatasetDir,
		MaxFiles:        maxFiles,
		ShowDiagnostics: !noDiagnostics,
		ShowTree:        !noTree,
		RestructureDest: restructureDest,
		DestSubdir:      *appConfig.DestSubdir,
		ManualFiles:     manualFiles,
		Excludes:        processPatterns(append(append([]string{}, appConfig.ExcludePatterns...), excludePatterns...)),
		UseGitignore:    useGitignore,
		Clean:           cleanDest,
		AssumeYes:       assumeYes,
	}
	slog.Debug("Final settings.", "options", fmt.Sprintf("%+v", opts))

	if err := run(os.Stdout, os.Stderr, os.Stdin, opts); err != nil {
		slog.Debug("Run failed.", "error", err)
		fatalf("%v", err)
	}
	slog.Debug("Execution finished.")
}

// resolveDatasetDir applies the positional-argument versus -d rule.
func resolveDatasetDir(positionalArgs []string) (string, error) {
	switch {
	case len(positionalArgs) > 1:
		return "", fmt.Errorf("refusing execution: multiple positional arguments provided: %v; use either a single directory argument or -d", positionalArgs)
	case len(positionalArgs) == 1:
		if pflag.CommandLine.Changed("directory") {
			return "", fmt.Errorf("refusing execution: cannot mix positional argument '%s' with flag '--directory'", positionalArgs[0])
		}
		slog.Debug("Using dataset directory from positional argument.", "path", positionalArgs[0])
		return tern(positionalArgs[0] == "", ".", positionalArgs[0]), nil
	default:
		slog.Debug("Using flags mode. Dataset directory from -d or default.", "path", targetDirFlagValue)
		return targetDirFlagValue, nil
	}
}

// resolveMaxFiles returns the tree limit: the flag when it was set, otherwise the config value.
func resolveMaxFiles(cfg Config, flagChanged bool, flagValue int) (int, error) {
	if flagChanged {
		return flagValue, nil
	}
	maxFiles, err := analytictools.ParseMaxFiles(cfg.MaxFiles)
	if err != nil {
		return 0, fmt.Errorf("invalid max_files in configuration: %w", err)
	}
	return maxFiles, nil
}

// runOptions is the resolved combination of flags and config.
type runOptions struct {
	DatasetDir      string
	MaxFiles        int
	ShowDiagnostics bool
	ShowTree        bool
	RestructureDest string // empty disables restructuring
	DestSubdir      string
	ManualFiles     []string
	Excludes        []string
	UseGitignore    bool
	Clean           bool
	AssumeYes       bool
}

// run prints diagnostics and the tree for the dataset and, when requested, restructures it.
// Prompts go to stderr.
func run(stdout, stderr io.Writer, stdin io.Reader, opts runOptions) error {
	if opts.ShowDiagnostics {
		diagnostics, err := analytictools.GetDiagnostics(opts.DatasetDir)
		if err != nil {
			return err
		}
		if err := analytictools.FprintDiagnostics(stdout, opts.DatasetDir, diagnostics); err != nil {
			return err
		}
	}

	if opts.ShowTree {
		if err := analytictools.FprintDirectoryTree(stdout, opts.DatasetDir, opts.MaxFiles); err != nil {
			return err
		}
	}

	if opts.RestructureDest == "" {
		return nil
	}

	absDest, err := filepath.Abs(opts.RestructureDest)
	if err != nil {
		return fmt.Errorf("invalid restructure destination '%s': %w", opts.RestructureDest, err)
	}
	destRoot := filepath.Join(absDest, opts.DestSubdir)

	if opts.Clean {
		if _, statErr := os.Stat(destRoot); statErr == nil {
			removed, err := analytictools.DeleteDirectories([]any{destRoot}, stdin, stderr, opts.AssumeYes)
			if err != nil {
				return err
			}
			slog.Info("Cleaned previous output.", "removed", removed)
		}
	}

	copiedFiles, skippedFiles, errorFiles, totalSize, err := restructureDataset(
		opts.DatasetDir, destRoot, opts.ManualFiles, opts.Excludes, opts.UseGitignore)
	if err != nil {
		return err
	}

	printSummaryTree(copiedFiles, skippedFiles, errorFiles, totalSize, destRoot, stdout)
	if len(errorFiles) > 0 {
		return fmt.Errorf("%d file(s) could not be restructured", len(errorFiles))
	}
	return nil
}
