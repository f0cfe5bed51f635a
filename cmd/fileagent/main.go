package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/joseph-ayodele/file-agent/internal/classify"
	"github.com/joseph-ayodele/file-agent/internal/classify/openai"
	"github.com/joseph-ayodele/file-agent/internal/common"
	"github.com/joseph-ayodele/file-agent/internal/extract"
	"github.com/joseph-ayodele/file-agent/internal/organize"
	"github.com/joseph-ayodele/file-agent/internal/pipeline"
	"github.com/joseph-ayodele/file-agent/internal/samples"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		runAgent    = flag.Bool("run", false, "monitor the input directory and process files as they arrive")
		makeSamples = flag.Bool("samples", false, "create sample input files for demonstration")
		file        = flag.String("file", "", "process exactly one file and print its report")
		exportXLSX  = flag.Bool("xlsx", false, "also export reports as a spreadsheet")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := common.LoadConfig()
	if err != nil {
		printError("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case *runAgent:
		if err := runMonitor(ctx, cfg, logger, *exportXLSX); err != nil {
			printError("Error: %v\n", err)
			os.Exit(1)
		}
	case *makeSamples:
		if err := createSamples(cfg, logger); err != nil {
			printError("Error: %v\n", err)
			os.Exit(1)
		}
	case *file != "":
		if err := processSingle(ctx, cfg, logger, *file, *exportXLSX); err != nil {
			printError("Error: %v\n", err)
			os.Exit(1)
		}
	default:
		runMenu(ctx, cfg, logger, *exportXLSX)
	}
}

func runMenu(ctx context.Context, cfg *common.Config, logger *slog.Logger, exportXLSX bool) {
	fmt.Println("AI File Processing Agent")
	fmt.Println(strings.Repeat("=", 40))

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println()
		fmt.Println("Choose an option:")
		fmt.Println("1. Run agent (monitor input folder)")
		fmt.Println("2. Create sample files")
		fmt.Println("3. Process single file")
		fmt.Println("4. Exit")
		fmt.Print("\nEnter choice (1-4): ")

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			return
		}

		switch strings.TrimSpace(line) {
		case "1":
			if err := runMonitor(ctx, cfg, logger, exportXLSX); err != nil {
				printError("Error: %v\n", err)
			}
			return
		case "2":
			if err := createSamples(cfg, logger); err != nil {
				printError("Error: %v\n", err)
				continue
			}
			fmt.Println("Now you can run option 1 to process them!")
		case "3":
			fmt.Print("Enter file path: ")
			pathLine, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			path := strings.TrimSpace(pathLine)
			if _, err := os.Stat(path); err != nil {
				fmt.Println("File not found!")
				continue
			}
			if err := processSingle(ctx, cfg, logger, path, exportXLSX); err != nil {
				printError("Error: %v\n", err)
			}
		case "4":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid choice!")
		}
	}
}

// newProcessor wires the pipeline from configuration. When no API key is
// configured the classifier runs with its deterministic fallback only.
func newProcessor(cfg *common.Config, logger *slog.Logger) (*pipeline.Processor, error) {
	var raw classify.RawClassifier
	if cfg.LLM.APIKey != "" {
		raw = openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
	}

	extractor := extract.NewExtractor(logger)
	classifier := classify.NewClassifier(raw, cfg.LLM.MaxContentChars, logger)
	organizer, err := organize.NewOrganizer(cfg.Agent.OutputDir, logger)
	if err != nil {
		return nil, fmt.Errorf("set up output directories: %w", err)
	}

	return pipeline.NewProcessor(logger, extractor, classifier, organizer,
		cfg.Agent.SettleDelay, cfg.Agent.BatchDelay), nil
}

// runMonitor drains pre-existing files, then watches the input directory
// until interrupted. A missing API key is a fatal precondition here.
func runMonitor(ctx context.Context, cfg *common.Config, logger *slog.Logger, exportXLSX bool) error {
	if cfg.LLM.APIKey == "" {
		return common.NewAppError("MISSING_API_KEY",
			"OPENAI_API_KEY is required to run the agent; set it in the environment or config file",
			common.ErrMissingAPIKey)
	}

	if err := os.MkdirAll(cfg.Agent.InputDir, 0o755); err != nil {
		return fmt.Errorf("create input dir: %w", err)
	}

	proc, err := newProcessor(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Monitoring %s — drop files in and press Ctrl+C to stop.\n", cfg.Agent.InputDir)

	summary, err := proc.ProcessDirectory(ctx, cfg.Agent.InputDir)
	if err != nil {
		return fmt.Errorf("process existing files: %w", err)
	}
	fmt.Println(summary)
	maybeExportXLSX(proc, exportXLSX)

	if err := proc.Watch(ctx, cfg.Agent.InputDir); err != nil {
		return err
	}
	fmt.Println("Agent stopped.")
	return nil
}

func processSingle(ctx context.Context, cfg *common.Config, logger *slog.Logger, path string, exportXLSX bool) error {
	proc, err := newProcessor(cfg, logger)
	if err != nil {
		return err
	}

	status := proc.ProcessFile(ctx, path)
	fmt.Printf("Status: %s\n", status)

	summary, err := proc.Organizer().GenerateReport()
	if err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	fmt.Println(summary)
	maybeExportXLSX(proc, exportXLSX)
	return nil
}

func createSamples(cfg *common.Config, logger *slog.Logger) error {
	written, err := samples.Create(cfg.Agent.InputDir, logger)
	if err != nil {
		return err
	}
	fmt.Printf("Created %d sample files in %s/\n", len(written), cfg.Agent.InputDir)
	return nil
}

func maybeExportXLSX(proc *pipeline.Processor, enabled bool) {
	if !enabled || len(proc.Organizer().Log()) == 0 {
		return
	}
	path, err := proc.Organizer().ExportXLSX()
	if err != nil {
		printError("Spreadsheet export failed: %v\n", err)
		return
	}
	fmt.Printf("Spreadsheet report saved to: %s\n", path)
}
