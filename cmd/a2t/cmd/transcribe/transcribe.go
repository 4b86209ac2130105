package transcribe

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"audio-transcriber/internal/app"
	"audio-transcriber/internal/app/batch"
	"audio-transcriber/internal/app/common"
	appconfig "audio-transcriber/internal/app/config"
	"audio-transcriber/internal/app/converter"
	"audio-transcriber/internal/app/converter/export"
	"audio-transcriber/internal/app/model"
	"audio-transcriber/internal/app/util/files"
	envconfig "audio-transcriber/internal/config"
)

var (
	language    string
	strategy    string
	mode        string
	workers     int
	outputDir   string
	stream      bool
	progress    bool
	excelPath   string
	metricsFile string
)

func init() {
	Cmd.Flags().StringVarP(&language, "language", "l", "en", "language code of the audio, e.g. en, ur, zh")
	Cmd.Flags().StringVarP(&strategy, "strategy", "s", "sequential", "sequential or concurrent")
	Cmd.Flags().StringVarP(&mode, "mode", "m", "per-item", "per-item: one <name>_transcription.txt per file; combined: a single transcription.txt")
	Cmd.Flags().IntVarP(&workers, "workers", "w", 4, "maximum in-flight requests for the concurrent strategy, 0 for no limit")
	Cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory of the combined transcription.txt (default: working directory)")
	Cmd.Flags().BoolVar(&stream, "stream", false, "write per-item files as soon as each file finishes")
	Cmd.Flags().BoolVar(&progress, "progress", false, "force the progress bar even when stderr is not a terminal")
	Cmd.Flags().StringVar(&excelPath, "excel", "", "also export the results to this .xlsx file")
	Cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics of the run to this file")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe <file-or-dir>",
	Short: "Transcribe an audio file or every audio file in a directory",
	Long: `Transcribe an audio file or every audio file in a directory

- Directories are searched recursively for wav, mp3 and m4a files
- A failed file never stops the batch; failures are listed at the end
- Flags override the values of the --config file`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := appconfig.LoadBatchConfig(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	runStrategy, err := model.ParseStrategy(cfg.Run.Strategy)
	if err != nil {
		return err
	}
	outputMode, err := model.ParseOutputMode(cfg.Run.Mode)
	if err != nil {
		return err
	}

	paths, err := files.DiscoverAudioFiles(args[0])
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no audio files found in %s", args[0])
	}
	jobs, err := batch.NewJobSet(paths)
	if err != nil {
		return err
	}

	logger, err := common.NewLogger(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	keys := envconfig.GetAPIKeys()

	metrics := converter.NewMetrics()
	conv, err := app.InitializeConverter(cfg, keys, logger, metrics, converter.Options{
		Workers:       cfg.Run.Workers,
		OutputDir:     cfg.Run.OutputDir,
		StreamPerItem: cfg.Run.StreamPerItem,
		Progress:      converter.ProgressConfig{Enabled: converter.ShouldShowProgress(progress)},
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, writeErr := conv.Run(ctx, jobs, runStrategy, outputMode, cfg.Run.Language)
	if report == nil {
		return writeErr
	}

	printResult(cmd.OutOrStdout(), report.Result)

	if excelPath != "" {
		if err := export.ToExcel(jobs, report.Result, excelPath); err != nil {
			logger.Error("excel export failed", zap.Error(err))
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "export finished, exported file path: %v\n", excelPath)
		}
	}
	if metricsFile != "" {
		if err := metrics.WriteToTextfile(metricsFile); err != nil {
			logger.Error("metrics export failed", zap.Error(err))
		}
	}

	if writeErr != nil {
		return writeErr
	}
	if ctx.Err() != nil {
		return context.Cause(ctx)
	}
	if failed := len(report.Result.Failures()); failed > 0 {
		return fmt.Errorf("%d of %d files failed to transcribe", failed, report.Result.Len())
	}
	return nil
}

// applyFlags overrides config values with the flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *appconfig.BatchConfig) {
	flags := cmd.Flags()
	if flags.Changed("language") || cfg.Run.Language == "" {
		cfg.Run.Language = language
	}
	if flags.Changed("strategy") {
		cfg.Run.Strategy = strategy
	}
	if flags.Changed("mode") {
		cfg.Run.Mode = mode
	}
	if flags.Changed("workers") {
		cfg.Run.Workers = workers
	}
	if flags.Changed("output-dir") {
		cfg.Run.OutputDir = outputDir
	}
	if flags.Changed("stream") {
		cfg.Run.StreamPerItem = stream
	}
}

// printResult lists successes as "A: <identity>  T: <text>" followed by the
// failures, in submission order.
func printResult(w io.Writer, result *model.BatchResult) {
	for _, o := range result.Successes() {
		fmt.Fprintf(w, "A: %s  T: %s\n", o.Identity(), o.Text())
	}

	failures := result.Failures()
	if len(failures) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%d failed:\n", len(failures))
	for _, o := range failures {
		fmt.Fprintf(w, "  %s: %v\n", o.Identity(), o.Cause())
	}
}
