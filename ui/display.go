package ui

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/card/color"
)

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Printlns(lines []string) {
	Println(strings.Join(lines, "\n"))
}

func Println(args ...interface{}) {
	fmt.Fprintln(color.Stdout, args...)
}

// Print writes a message that already ends in a newline.
func Print(message string) {
	fmt.Fprint(color.Stdout, message)
}
