package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"audio-transcriber/cmd/a2t/cmd/discover"
	"audio-transcriber/cmd/a2t/cmd/transcribe"
	"audio-transcriber/cmd/a2t/cmd/version"
)

var (
	Verbose    bool
	ConfigFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "a2t",
	Short: "Batch transcribe audio files to text",
	Long: `Batch transcribe audio files to text with a Whisper-compatible API.

- Point a2t at an audio file or a directory of wav/mp3/m4a files
- Files are transcribed one after another or concurrently
- Results are written next to each file or into a single transcription.txt`,
	TraverseChildren: true,
	SilenceUsage:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(discover.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&ConfigFile, "config", "", "YAML run configuration (backend, language, strategy, mode)")
}
