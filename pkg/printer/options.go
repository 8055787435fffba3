package printer

import (
	"fmt"
	"strconv"
	"strings"
)

// Paper sizes in inches, width x height.
var paperSizes = map[string][2]float64{
	"letter":  {8.5, 11},
	"legal":   {8.5, 14},
	"tabloid": {11, 17},
	"ledger":  {17, 11},
	"a0":      {33.1, 46.8},
	"a1":      {23.4, 33.1},
	"a2":      {16.54, 23.4},
	"a3":      {11.7, 16.54},
	"a4":      {8.27, 11.7},
	"a5":      {5.83, 8.27},
	"a6":      {4.13, 5.83},
}

// Margin holds CSS lengths such as "20px", "1cm" or "0.5in".
type Margin struct {
	Top    string `json:"top,omitempty"`
	Right  string `json:"right,omitempty"`
	Bottom string `json:"bottom,omitempty"`
	Left   string `json:"left,omitempty"`
}

// Options controls page layout of the generated PDF. Zero fields inherit
// from the printer defaults.
type Options struct {
	Format          string `json:"format,omitempty"`
	PrintBackground *bool  `json:"printBackground,omitempty"`
	Landscape       *bool  `json:"landscape,omitempty"`
	Margin          Margin `json:"margin,omitempty"`
}

// DefaultOptions is A4, backgrounds printed, 20px margins on every side.
func DefaultOptions() Options {
	background := true
	return Options{
		Format:          "A4",
		PrintBackground: &background,
		Margin: Margin{
			Top:    "20px",
			Right:  "20px",
			Bottom: "20px",
			Left:   "20px",
		},
	}
}

// Merge returns base with every non-zero field of override applied.
func Merge(base Options, override *Options) Options {
	if override == nil {
		return base
	}
	out := base
	if override.Format != "" {
		out.Format = override.Format
	}
	if override.PrintBackground != nil {
		v := *override.PrintBackground
		out.PrintBackground = &v
	}
	if override.Landscape != nil {
		v := *override.Landscape
		out.Landscape = &v
	}
	if override.Margin.Top != "" {
		out.Margin.Top = override.Margin.Top
	}
	if override.Margin.Right != "" {
		out.Margin.Right = override.Margin.Right
	}
	if override.Margin.Bottom != "" {
		out.Margin.Bottom = override.Margin.Bottom
	}
	if override.Margin.Left != "" {
		out.Margin.Left = override.Margin.Left
	}
	return out
}

// Background reports whether background graphics are printed.
func (o Options) Background() bool {
	return o.PrintBackground != nil && *o.PrintBackground
}

// IsLandscape reports whether pages are printed in landscape orientation.
func (o Options) IsLandscape() bool {
	return o.Landscape != nil && *o.Landscape
}

// PaperSize returns width and height in inches for the configured format.
func (o Options) PaperSize() (float64, float64, error) {
	format := o.Format
	if format == "" {
		format = "A4"
	}
	size, ok := paperSizes[strings.ToLower(format)]
	if !ok {
		return 0, 0, fmt.Errorf("unknown paper format %q", o.Format)
	}
	return size[0], size[1], nil
}

// MarginInches converts the four margins to inches (top, right, bottom, left).
func (o Options) MarginInches() ([4]float64, error) {
	var out [4]float64
	for i, v := range []string{o.Margin.Top, o.Margin.Right, o.Margin.Bottom, o.Margin.Left} {
		in, err := ParseLength(v)
		if err != nil {
			return out, err
		}
		out[i] = in
	}
	return out, nil
}

// Validate checks that format and margins can be converted.
func (o Options) Validate() error {
	if _, _, err := o.PaperSize(); err != nil {
		return err
	}
	_, err := o.MarginInches()
	return err
}

// ParseLength converts a CSS length to inches. A bare number is pixels (96 per inch).
func ParseLength(s string) (float64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, nil
	}

	unit := "px"
	for _, u := range []string{"px", "in", "cm", "mm"} {
		if strings.HasSuffix(s, u) {
			unit = u
			s = strings.TrimSpace(strings.TrimSuffix(s, u))
			break
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid length %q", s+unit)
	}

	switch unit {
	case "in":
		return v, nil
	case "cm":
		return v / 2.54, nil
	case "mm":
		return v / 25.4, nil
	default:
		return v / 96, nil
	}
}
