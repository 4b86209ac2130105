package main

import (
	"fmt"
	"os"

	"audio-transcriber/cmd/a2t/cmd"
	"audio-transcriber/internal/config"
)

func main() {
	// Non-blocking: keys are checked by transcribe, for the selected provider only
	if _, err := config.InitializeConfig(os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Configuration Warning: %v\n", err)
		fmt.Fprintf(os.Stderr, "💡 Fix the .env file or set GROQ_API_KEY / OPENAI_API_KEY in the environment\n")
	}

	cmd.Execute()
}
