// Package render draws population pyramids as mirrored horizontal bar
// charts: male bars extend left and female bars right from a shared zero
// axis, youngest band at the bottom. All displayed values are absolute;
// the negative male series is an internal rendering artifact only.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/popviz/internal/dataset"
)

const (
	// DefaultWidth is the chart width used when the terminal size is unknown.
	DefaultWidth = 78

	minWidth   = 40
	labelWidth = 7 // widest age group is "95-99"
	countWidth = 7 // widest count label is "999.9M"
)

// Chart owns the rendered pyramid. At most one series is bound at a time:
// Render replaces the binding wholesale, Update swaps the data in place so
// the value scale eases between years instead of snapping.
type Chart struct {
	theme Theme
	width int
	bound *dataset.Series
	scale float64
}

// New returns an empty chart with the given theme and total width.
func New(theme Theme, width int) *Chart {
	if width < minWidth {
		width = minWidth
	}
	return &Chart{theme: theme, width: width}
}

// Theme reports the active theme.
func (c *Chart) Theme() Theme { return c.theme }

// SetTheme switches the color scheme without touching the bound data.
func (c *Chart) SetTheme(t Theme) { c.theme = t }

// Resize changes the chart width; the next draw uses the new layout.
func (c *Chart) Resize(width int) {
	if width < minWidth {
		width = minWidth
	}
	c.width = width
}

// Bound reports the currently bound series, nil before the first Render.
func (c *Chart) Bound() *dataset.Series { return c.bound }

// Render performs a full rebuild: any previously bound series is discarded
// and the value scale is recomputed from scratch.
func (c *Chart) Render(s dataset.Series) (string, error) {
	if err := c.check(s); err != nil {
		return "", err
	}
	c.bind(s)
	c.scale = s.Max()
	return c.view(), nil
}

// Update swaps the bound data in place without rebuilding the chart. The
// scale eases toward the new maximum when it shrinks and expands to cover
// it immediately, which keeps bar transitions smooth during playback.
func (c *Chart) Update(s dataset.Series) (string, error) {
	if err := c.check(s); err != nil {
		return "", err
	}
	if c.bound == nil {
		return c.Render(s)
	}
	newMax := s.Max()
	c.scale = math.Max(newMax, (c.scale+newMax)/2)
	c.bind(s)
	return c.view(), nil
}

func (c *Chart) check(s dataset.Series) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if len(s.AgeGroups) == 0 {
		return &dataset.RenderError{Country: s.Country, Year: s.Year, Err: dataset.ErrEmptySeries}
	}
	return nil
}

// bind stores a copy of the series with the male values negated, so the
// male half of the chart extends in the negative direction.
func (c *Chart) bind(s dataset.Series) {
	b := dataset.Series{
		Year:      s.Year,
		Country:   s.Country,
		AgeGroups: append([]string(nil), s.AgeGroups...),
		Male:      make([]float64, len(s.Male)),
		Female:    append([]float64(nil), s.Female...),
	}
	for i, v := range s.Male {
		b.Male[i] = -v
	}
	c.bound = &b
}

func (c *Chart) view() string {
	s := c.bound
	scale := c.scale
	if scale <= 0 {
		scale = 1
	}
	span := (c.width - labelWidth - 2*(countWidth+1)) / 2
	if span < 4 {
		span = 4
	}

	maleStyle := lipgloss.NewStyle().Foreground(c.theme.Male)
	femaleStyle := lipgloss.NewStyle().Foreground(c.theme.Female)
	axisStyle := lipgloss.NewStyle().Foreground(c.theme.Axis)
	mutedStyle := lipgloss.NewStyle().Foreground(c.theme.Muted)
	captionStyle := lipgloss.NewStyle().Foreground(c.theme.Accent).Bold(true)

	var b strings.Builder
	for i, age := range s.AgeGroups {
		mv := math.Abs(s.Male[i])
		fv := s.Female[i]

		ml := barLen(mv, scale, span)
		fl := barLen(fv, scale, span)

		b.WriteString(mutedStyle.Render(fmt.Sprintf("%*s", countWidth, formatCount(mv))))
		b.WriteString(" ")
		b.WriteString(strings.Repeat(" ", span-ml))
		b.WriteString(maleStyle.Render(strings.Repeat("█", ml)))
		b.WriteString(axisStyle.Render(fmt.Sprintf("%-*s", labelWidth, " "+age)))
		b.WriteString(femaleStyle.Render(strings.Repeat("█", fl)))
		b.WriteString(strings.Repeat(" ", span-fl))
		b.WriteString(" ")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%-*s", countWidth, formatCount(fv))))
		b.WriteString("\n")
	}

	b.WriteString(c.ruler(scale, span, axisStyle))
	b.WriteString("\n")
	b.WriteString(maleStyle.Render(fmt.Sprintf("%*s", countWidth+1+span, "male ◄ ")))
	b.WriteString(strings.Repeat(" ", labelWidth))
	b.WriteString(femaleStyle.Render(" ► female"))
	b.WriteString("\n")
	b.WriteString(captionStyle.Render(fmt.Sprintf("%s · %d", s.Country, s.Year)))
	return b.String()
}

// ruler draws the shared value axis with absolute tick labels at the outer
// edges, the halfway points and the zero center.
func (c *Chart) ruler(scale float64, span int, style lipgloss.Style) string {
	half := formatCount(scale / 2)
	full := formatCount(scale)

	// Dotted ruler with the half-scale tick embedded mid-span. The rune
	// "┈" is multi-byte, so the tick is spliced at rune granularity.
	side := func() string {
		runes := []rune(strings.Repeat("┈", span))
		pos := span/2 - len(half)/2
		for i, ch := range half {
			if pos+i >= 0 && pos+i < len(runes) {
				runes[pos+i] = ch
			}
		}
		return string(runes)
	}

	left := fmt.Sprintf("%*s", countWidth, full) + " " + side()
	center := fmt.Sprintf("%-*s", labelWidth, " 0")
	right := side() + " " + fmt.Sprintf("%-*s", countWidth, full)
	return style.Render(left + center + right)
}

func barLen(v, scale float64, span int) int {
	l := int(math.Round(v / scale * float64(span)))
	if l < 0 {
		l = 0
	}
	if l > span {
		l = span
	}
	return l
}

// formatCount renders a population count for display. The value is always
// shown as an absolute quantity.
func formatCount(v float64) string {
	v = math.Abs(v)
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
