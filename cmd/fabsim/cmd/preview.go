package cmd

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/fab/cmd/fabsim/internal/preview"
	"github.com/go-drift/fab/pkg/fab"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Preview the button in the terminal",
		Long: `Preview the button live in the terminal.

Keys:
  v       show or hide the button
  s       cycle the snack offset (0, 48, 96)
  space   tap the button
  q       quit

Flags:
  --options FILE   Load button options from a YAML file`,
		Usage: "fabsim preview [--options fab.yaml]",
		Run:   runPreview,
	})
}

func runPreview(args []string) error {
	var optionsPath string
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--options":
			if i+1 >= len(args) {
				return fmt.Errorf("--options requires a file path")
			}
			optionsPath = args[i+1]
			i++
		case strings.HasPrefix(args[i], "--options="):
			optionsPath = strings.TrimPrefix(args[i], "--options=")
		default:
			return fmt.Errorf("unexpected argument %q", args[i])
		}
	}

	var opts fab.Options
	if optionsPath != "" {
		loaded, err := fab.LoadOptions(optionsPath)
		if err != nil {
			return err
		}
		opts = loaded
	}

	model := preview.New(opts.Widget(nil))
	defer model.Close()

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}
	return nil
}
