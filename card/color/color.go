package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color is the suit color of a card. None is only ever carried by an
// unplayed wild.
type Color int

const (
	None Color = iota
	Red
	Yellow
	Green
	Blue
)

// All lists the four choosable colors in display order.
var All = []Color{Red, Yellow, Green, Blue}

type palette struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var palettes = map[Color]palette{
	None:   {name: "none", colorFunction: color.New(color.FgHiWhite).SprintfFunc()},
	Red:    {name: "red", colorFunction: color.New(color.FgHiRed).SprintfFunc()},
	Yellow: {name: "yellow", colorFunction: color.New(color.FgHiYellow).SprintfFunc()},
	Green:  {name: "green", colorFunction: color.New(color.FgHiGreen).SprintfFunc()},
	Blue:   {name: "blue", colorFunction: color.New(color.FgHiCyan).SprintfFunc()},
}

var Stdout io.Writer = color.Output

func (c Color) Valid() bool {
	return c >= Red && c <= Blue
}

func (c Color) Name() string {
	if p, ok := palettes[c]; ok {
		return p.name
	}
	return fmt.Sprintf("color(%d)", int(c))
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	p, ok := palettes[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return p.colorFunction(format, args...)
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

// ByName resolves one of the four choosable colors, ignoring case.
func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range All {
		if palettes[c].name == name {
			return c, nil
		}
	}
	return None, fmt.Errorf("invalid color '%s'", name)
}
