package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/phonescan/internal/classify"
	"github.com/nao1215/phonescan/internal/config"
	"github.com/nao1215/phonescan/internal/database"
	"github.com/nao1215/phonescan/internal/enrich"
	"github.com/nao1215/phonescan/internal/log"
	"github.com/nao1215/phonescan/internal/model"
	"github.com/nao1215/phonescan/internal/numbering"
	"github.com/nao1215/phonescan/internal/pipeline"
	"github.com/nao1215/phonescan/internal/report"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [phone-number]",
		Short: "Analyze one or more phone numbers",
		Long: `Analyze normalizes phone numbers and reports:
- Canonical formats (national, international, E.164)
- Numbering-plan validity and number type
- The mobile carrier and its directory profile
- The geographic region of the area prefix
- The usage category (toll-free, premium rate, personal, regular mobile)

Numbers may be given with or without a country code. Numbers without one
are interpreted against the default region (Indonesia). Every completed
analysis is appended to the local history database.

Examples:
  # Analyze a single number
  phonescan analyze 081234567890

  # Analyze an international-format number
  phonescan analyze +6281234567890

  # Analyze multiple numbers concurrently
  phonescan analyze 081234567890 0811111111 0899999999

  # Read numbers from a file (one per line)
  phonescan analyze --file numbers.txt

  # Output JSON report
  phonescan analyze --json 081234567890

  # Attach carrier and timezone lookup as enrichment
  phonescan analyze --lookup 081234567890

  # Use a custom directory file with prefix table overrides
  phonescan analyze -c mydirectory.yml 081234567890

Directory file (.phonescan.yml) example:
  providers:
    "812": Telkomsel
  regions:
    - prefix: "21"
      region: Jakarta
  profiles:
    Telkomsel:
      full_name: PT Telekomunikasi Selular`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyzeCmd,
	}

	// Parsing flags
	cmd.Flags().StringP("region", "r", config.DefaultRegion,
		"Default region for numbers without a country code (ISO 3166-1 alpha-2)")

	// Input flags
	cmd.Flags().StringP("file", "f", "",
		"Read phone numbers from a file, one per line (merged with arguments)")

	// Batch analysis flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent analyses")

	// Directory file
	cmd.Flags().StringP("config", "c", "",
		"Directory file path (default: .phonescan.yml in current or home directory)")

	// Enrichment flags
	cmd.Flags().StringP("enrichment", "e", "",
		"JSON file with externally resolved enrichment payloads")
	cmd.Flags().BoolP("lookup", "L", false,
		"Attach carrier and timezone lookup results as enrichment")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with secret masking
	cfg.Verbose = getVerboseFlag(cmd)
	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	lookup, err := cmd.Flags().GetBool("lookup")
	if err != nil {
		return err
	}

	return runAnalysis(ctx, cfg, logger, lookup)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	// Get flag values
	var err error

	cfg.Region, err = cmd.Flags().GetString("region")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load numbering-table overrides from the directory file.
	// If user explicitly specified a path, error if not found.
	// If no path specified, silently use the built-in tables.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.Directory, err = config.LoadDirectoryFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load directory file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		// User explicitly specified a directory file that doesn't exist
		return nil, fmt.Errorf("directory file not found: %s", cfg.ConfigFilePath)
	}

	cfg.EnrichmentFile, err = cmd.Flags().GetString("enrichment")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	// Always append to history using XDG data directory
	cfg.SaveToDB = true
	cfg.DBDir = config.XDGDataDir()

	// Positional arguments plus optional numbers file
	cfg.Targets = args

	numbersFile, err := cmd.Flags().GetString("file")
	if err != nil {
		return nil, err
	}
	if numbersFile != "" {
		fromFile, err := readNumbersFile(numbersFile)
		if err != nil {
			return nil, err
		}
		cfg.Targets = append(cfg.Targets, fromFile...)
	}

	return cfg, nil
}

// readNumbersFile reads phone numbers from a file, one per line.
// Blank lines and lines starting with # are skipped.
func readNumbersFile(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to read numbers file: %w", err)
	}

	var numbers []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		numbers = append(numbers, line)
	}
	return numbers, nil
}

// analyzer bundles the components shared by every analysis pipeline.
type analyzer struct {
	parser     *numbering.Parser
	validator  *numbering.Validator
	classifier *classify.Classifier
	formatter  *numbering.Formatter
	country    string
	logger     *slog.Logger
	sources    []enrich.Source
}

// newAnalyzer builds the analysis components from the configuration.
func newAnalyzer(cfg *config.Config, logger *slog.Logger, lookup bool) (*analyzer, error) {
	parser, err := numbering.NewParser(cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("invalid region %q: %w", cfg.Region, err)
	}

	formatter := numbering.NewFormatter()

	var sources []enrich.Source
	if cfg.EnrichmentFile != "" {
		sources = append(sources, enrich.NewFileSource(cfg.EnrichmentFile))
	}
	if lookup {
		sources = append(sources, enrich.NewMetadataSource(formatter))
	}

	return &analyzer{
		parser:     parser,
		validator:  numbering.NewValidator(),
		classifier: classify.NewClassifier(classifierOptions(cfg.Directory)...),
		formatter:  formatter,
		country:    cfg.CountryName,
		logger:     logger,
		sources:    sources,
	}, nil
}

// newPipeline creates a fresh pipeline with the standard step sequence.
func (a *analyzer) newPipeline() *pipeline.Pipeline {
	p := pipeline.New(
		pipeline.WithLogger(a.logger),
	)
	p.AddSteps(pipeline.DefaultSteps(
		a.parser, a.validator, a.classifier, a.formatter, a.country, a.logger, a.sources...,
	)...)
	return p
}

// classifierOptions converts directory file overrides into classifier options.
// A nil or empty directory file keeps all built-in tables.
func classifierOptions(dir *config.DirectoryFile) []classify.ClassifierOption {
	if dir == nil {
		return nil
	}

	var opts []classify.ClassifierOption
	if len(dir.Providers) > 0 {
		opts = append(opts, classify.WithProviderPrefixes(dir.Providers))
	}
	if len(dir.Regions) > 0 {
		rules := make([]classify.RegionRule, 0, len(dir.Regions))
		for _, entry := range dir.Regions {
			rules = append(rules, classify.RegionRule{Prefix: entry.Prefix, Region: entry.Region})
		}
		opts = append(opts, classify.WithRegionRules(rules))
	}
	if len(dir.Profiles) > 0 {
		opts = append(opts, classify.WithProfiles(dir.Profiles))
	}
	return opts
}

// runAnalysis executes the analysis.
func runAnalysis(ctx context.Context, cfg *config.Config, logger *slog.Logger, lookup bool) error {
	if len(cfg.Targets) == 0 {
		return errors.New("no targets provided (specify one or more phone numbers as arguments)")
	}

	logger.Info("starting analysis",
		"targets", len(cfg.Targets),
		"region", cfg.Region,
		"batchSize", cfg.BatchSize,
		"saveToDB", cfg.SaveToDB,
	)

	// Open history database if saving is enabled
	var hdb *database.HistoryDB
	if cfg.SaveToDB {
		var err error
		hdb, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer hdb.Close()
		logger.Info("history database opened", "dir", cfg.DBDir)
	}

	a, err := newAnalyzer(cfg, logger, lookup)
	if err != nil {
		return err
	}

	// Use batch processor for parallel analysis if multiple targets
	if len(cfg.Targets) > 1 && cfg.BatchSize > 1 {
		return runBatchAnalysis(ctx, cfg, a, hdb, logger)
	}

	// Single target or sequential analysis
	return runSequentialAnalysis(ctx, cfg, a, hdb, logger)
}

// runSequentialAnalysis analyzes targets one at a time.
func runSequentialAnalysis(ctx context.Context, cfg *config.Config, a *analyzer, hdb *database.HistoryDB, logger *slog.Logger) error {
	for _, target := range cfg.Targets {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		analysis := model.NewAnalysisReport(target)

		// Execute the pipeline. A failed analysis still produces a report
		// with the error recorded, so output and history continue below.
		if err := a.newPipeline().Execute(ctx, analysis); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			logger.Warn("analysis failed", "number", target, "error", err)
		}

		// Generate and output report
		if err := outputReport(cfg, analysis); err != nil {
			logger.Error("report failed", "number", target, "error", err)
		}

		// Append to history if enabled
		if err := saveAnalysis(ctx, hdb, analysis, logger); err != nil {
			logger.Warn("failed to append analysis to history", "number", target, "error", err)
		}
	}

	return nil
}

// runBatchAnalysis analyzes multiple targets concurrently using BatchProcessor.
func runBatchAnalysis(ctx context.Context, cfg *config.Config, a *analyzer, hdb *database.HistoryDB, logger *slog.Logger) error {
	fmt.Printf("Starting batch analysis of %d numbers (concurrency: %d)...\n\n",
		len(cfg.Targets), cfg.BatchSize)

	startTime := time.Now()

	// Create batch processor with pipeline factory
	bp := pipeline.NewBatchProcessor(
		a.newPipeline,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	// Process with callback for streaming output
	var mu sync.Mutex
	err := bp.ProcessBatchWithCallback(ctx, cfg.Targets, func(analysis *model.AnalysisReport, index int) {
		mu.Lock()
		defer mu.Unlock()

		fmt.Printf("[%d/%d] Analysis completed: %s\n", index+1, len(cfg.Targets), analysis.OriginalInput)

		// Generate and output report
		if err := outputReport(cfg, analysis); err != nil {
			logger.Error("report failed", "number", analysis.OriginalInput, "error", err)
		}

		// Append to history if enabled
		if err := saveAnalysis(ctx, hdb, analysis, logger); err != nil {
			logger.Warn("failed to append analysis to history", "number", analysis.OriginalInput, "error", err)
		}
	})

	elapsed := time.Since(startTime)
	fmt.Printf("\nBatch analysis completed in %s\n", elapsed.Round(time.Millisecond))

	return err
}

// outputReport outputs the analysis report in the requested format.
func outputReport(cfg *config.Config, analysis *model.AnalysisReport) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Append so multi-number runs collect all reports in one file
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	// JSON output
	if cfg.JSONReport {
		_, err := report.NewJSONWriter(output, report.WithPrettyPrint()).Write(analysis)
		return err
	}

	// Markdown output
	if cfg.MarkdownReport {
		_, err := report.NewMarkdownWriter(output).Write(analysis)
		return err
	}

	// Human-readable report (default)
	_, err := report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose)).Write(analysis)
	return err
}

// saveAnalysis appends the analysis to the history database if enabled.
// If hdb is nil, this function is a no-op. Append failures are returned
// for the caller to log as warnings; they never block report output.
func saveAnalysis(ctx context.Context, hdb *database.HistoryDB, analysis *model.AnalysisReport, logger *slog.Logger) error {
	if hdb == nil {
		return nil
	}

	if err := hdb.Append(ctx, analysis); err != nil {
		return err
	}

	logger.Info("analysis appended to history", "number", analysis.OriginalInput)
	return nil
}
