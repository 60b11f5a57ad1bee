package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const stdinArg = "-"

// readInputs loads each argument as a file path; "-" reads standard input
// and may appear at most once.
func readInputs(cmd *cobra.Command, args []string) ([]string, error) {
	texts := make([]string, len(args))
	usedStdin := false
	for i, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == stdinArg {
			if usedStdin {
				return nil, errors.New("standard input can only be read once")
			}
			usedStdin = true
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return nil, fmt.Errorf("read standard input: %w", err)
			}
			texts[i] = string(data)
			continue
		}
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", arg, err)
		}
		texts[i] = string(data)
	}
	return texts, nil
}

func inputLabel(arg string) string {
	if strings.TrimSpace(arg) == stdinArg {
		return "stdin"
	}
	return arg
}
