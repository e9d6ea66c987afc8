package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Color int

const (
	Wild Color = iota
	Red
	Yellow
	Green
	Blue
)

// Concrete lists the colors a wild card can be resolved to.
var Concrete = []Color{Red, Yellow, Green, Blue}

var names = map[Color]string{
	Wild:   "wild",
	Red:    "red",
	Yellow: "yellow",
	Green:  "green",
	Blue:   "blue",
}

var colorFunctions = map[Color]func(string, ...interface{}) string{
	Wild:   color.New(color.FgHiMagenta).SprintfFunc(),
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
}

var Stdout io.Writer = color.Output

// SetEnabled toggles ANSI output for every painted string.
func SetEnabled(enabled bool) {
	color.NoColor = !enabled
}

func (c Color) Name() string {
	name, ok := names[c]
	if !ok {
		return fmt.Sprintf("color(%d)", int(c))
	}
	return name
}

func (c Color) Valid() bool {
	_, ok := names[c]
	return ok
}

func (c Color) IsWild() bool {
	return c == Wild
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	colorFunction, ok := colorFunctions[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return colorFunction(format, args...)
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

// ByName resolves a concrete color from user text, ignoring case and surrounding blanks.
func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Concrete {
		if names[c] == name || names[c][:1] == name {
			return c, nil
		}
	}
	return Wild, fmt.Errorf("invalid color '%s'", name)
}
