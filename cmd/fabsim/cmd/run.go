package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/go-drift/fab/cmd/fabsim/internal/scenario"
	"github.com/go-drift/fab/pkg/core"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Replay a scenario frame by frame",
		Long: `Replay a scenario file on simulated time and print the button state at
every sampled frame.

Columns: time, presence, size, rotation (degrees), horizontal scale,
bottom offset, feedback variant, tap count and the steps applied before
the frame.

Flags:
  --frame DURATION   Sampling interval (default 16ms)
  --changes          Only print frames that apply a step or animate
  --plain            Print tab-separated values instead of a table
  --tree             Print the node tree of the last frame`,
		Usage: "fabsim run <scenario.yaml> [--frame 16ms] [--changes] [--plain] [--tree]",
		Run:   runScenario,
	})
}

type runOptions struct {
	path    string
	frame   time.Duration
	changes bool
	plain   bool
	tree    bool
}

func parseRunArgs(args []string) (runOptions, error) {
	opts := runOptions{frame: 16 * time.Millisecond}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--frame", strings.HasPrefix(arg, "--frame="):
			value, ok := strings.CutPrefix(arg, "--frame=")
			if !ok {
				if i+1 >= len(args) {
					return opts, fmt.Errorf("--frame requires a duration")
				}
				i++
				value = args[i]
			}
			d, err := time.ParseDuration(value)
			if err != nil || d <= 0 {
				return opts, fmt.Errorf("invalid --frame %q", value)
			}
			opts.frame = d
		case arg == "--changes":
			opts.changes = true
		case arg == "--plain":
			opts.plain = true
		case arg == "--tree":
			opts.tree = true
		case strings.HasPrefix(arg, "--"):
			return opts, fmt.Errorf("unknown flag %s", arg)
		default:
			if opts.path != "" {
				return opts, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.path = arg
		}
	}
	if opts.path == "" {
		return opts, fmt.Errorf("scenario file is required\n\nUsage: fabsim run <scenario.yaml>")
	}
	return opts, nil
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})
	cellStyle = lipgloss.NewStyle().Padding(0, 1)
	stepStyle = cellStyle.
			Foreground(lipgloss.AdaptiveColor{Light: "#E65100", Dark: "#FFB74D"})
)

var runHeaders = []string{"t", "presence", "size", "rot", "scaleX", "bottom", "variant", "taps", "steps"}

func runScenario(args []string) error {
	opts, err := parseRunArgs(args)
	if err != nil {
		return err
	}
	s, err := scenario.Load(opts.path)
	if err != nil {
		return err
	}

	var rows [][]string
	var tree string
	err = scenario.Run(s, opts.frame, func(smp scenario.Sample) {
		if opts.tree {
			tree = core.DebugDump(smp.Root)
		}
		if opts.changes && smp.Frame > 0 && !smp.Animating && len(smp.Steps) == 0 {
			return
		}
		rows = append(rows, sampleRow(smp))
	})
	if err != nil {
		return err
	}

	if opts.plain {
		fmt.Fprintln(stdout, strings.Join(runHeaders, "\t"))
		for _, row := range rows {
			fmt.Fprintln(stdout, strings.Join(row, "\t"))
		}
	} else {
		fmt.Fprintln(stdout, renderTable(rows))
	}
	if opts.tree {
		fmt.Fprint(stdout, "\n"+tree)
	}
	return nil
}

func renderTable(rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(runHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == len(runHeaders)-1:
				return stepStyle
			default:
				return cellStyle
			}
		})
	return t.Render()
}

func sampleRow(smp scenario.Sample) []string {
	return []string{
		smp.At.String(),
		strconv.FormatFloat(smp.Presence, 'f', 3, 64),
		strconv.FormatFloat(smp.Size, 'f', 1, 64),
		strconv.FormatFloat(smp.Rotation, 'f', 1, 64),
		strconv.FormatFloat(smp.ScaleX, 'f', 3, 64),
		strconv.FormatFloat(smp.Bottom, 'f', 1, 64),
		smp.Variant.String(),
		strconv.Itoa(smp.Taps),
		strings.Join(smp.Steps, ", "),
	}
}
