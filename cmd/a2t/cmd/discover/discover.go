package discover

import (
	"fmt"

	"github.com/spf13/cobra"

	"audio-transcriber/internal/app/batch"
	"audio-transcriber/internal/app/util/files"
)

// Cmd represents the discover command
var Cmd = &cobra.Command{
	Use:   "discover <file-or-dir>",
	Short: "List the audio files a transcribe run would pick up",
	Long: `List the audio files a transcribe run would pick up, with the identity
each one gets, without calling the transcription backend. Files sharing a
name in different folders are reported as an error, as transcribe would.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		out := cmd.OutOrStdout()
		for _, job := range jobs {
			fmt.Fprintf(out, "%s\t%s\n", job.Identity, job.SourcePath)
		}
		fmt.Fprintf(out, "%d file(s)\n", len(jobs))
		return nil
	},
}
