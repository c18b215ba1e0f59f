package cli

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func readTranscript(cmd *cobra.Command, args []string, path string) (string, error) {
	var raw []byte
	var err error

	switch {
	case len(args) == 1:
		raw = []byte(args[0])
	case path != "":
		raw, err = os.ReadFile(path)
	default:
		raw, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return "", err
	}

	transcript := strings.TrimSpace(string(raw))
	if transcript == "" {
		return "", errors.New("transcript is empty")
	}
	return transcript, nil
}
