package fab

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/fab/pkg/graphics"
	"github.com/go-drift/fab/pkg/layout"
)

// Options is the declarative form of a FAB, as read from YAML:
//
//	visible: true
//	buttonColor: "#2196f3"
//	iconTextColor: white
//	iconText: "+"
//	snackOffset: 48
//	style:
//	  borderRadius: 16
//	  elevation: 6
type Options struct {
	// Visible defaults to true when omitted.
	Visible       *bool         `yaml:"visible,omitempty"`
	ButtonColor   string        `yaml:"buttonColor,omitempty"`
	IconTextColor string        `yaml:"iconTextColor,omitempty"`
	IconText      string        `yaml:"iconText,omitempty"`
	SnackOffset   float64       `yaml:"snackOffset,omitempty"`
	Style         *StyleOptions `yaml:"style,omitempty"`
}

// StyleOptions is the subset of surface style settable from YAML.
type StyleOptions struct {
	BorderRadius float64 `yaml:"borderRadius,omitempty"`
	Elevation    float64 `yaml:"elevation,omitempty"`
	Background   string  `yaml:"background,omitempty"`
}

// ParseOptions decodes and validates YAML options.
func ParseOptions(data []byte) (Options, error) {
	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("failed to parse fab options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// LoadOptions reads options from a YAML file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	opts, err := ParseOptions(data)
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// Validate checks that all colors parse. Snack offsets are not checked.
func (o Options) Validate() error {
	colors := map[string]string{
		"buttonColor":   o.ButtonColor,
		"iconTextColor": o.IconTextColor,
	}
	if o.Style != nil {
		colors["style.background"] = o.Style.Background
	}
	for field, value := range colors {
		if value == "" {
			continue
		}
		if _, err := graphics.ParseColor(value); err != nil {
			return fmt.Errorf("invalid %s: %w", field, err)
		}
	}
	return nil
}

// IsVisible returns Visible, defaulting to true.
func (o Options) IsVisible() bool {
	return o.Visible == nil || *o.Visible
}

// Widget builds a FAB from the options.
func (o Options) Widget(onClick func()) FAB {
	f := FAB{
		Hidden:        !o.IsVisible(),
		OnClickAction: onClick,
		ButtonColor:   o.ButtonColor,
		IconTextColor: o.IconTextColor,
		SnackOffset:   o.SnackOffset,
	}
	if o.IconText != "" {
		f.IconTextComponent = TextIcon(o.IconText)
	}
	if o.Style != nil {
		style := layout.Style{
			BorderRadius: o.Style.BorderRadius,
			Elevation:    o.Style.Elevation,
		}
		if o.Style.Background != "" {
			style.Background = graphics.MustParseColor(o.Style.Background)
		}
		f.Style = &style
	}
	return f
}
