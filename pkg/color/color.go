package color

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ANSI palette indices
const (
	Red        = "1"
	Green      = "2"
	Yellow     = "3"
	Blue       = "4"
	Cyan       = "6"
	Gray       = "8"
	BrightRed  = "9"
	BrightBlue = "12"
)

var profile = termenv.Ascii

func init() {
	if os.Getenv("NO_COLOR") == "" && isTerminal(os.Stderr.Fd()) {
		profile = termenv.ANSI
	}
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func EnableColor(enable bool) {
	if enable {
		profile = termenv.ANSI
	} else {
		profile = termenv.Ascii
	}
}

func IsColorEnabled() bool {
	return profile != termenv.Ascii
}

func Colorize(color, text string) string {
	return profile.String(text).Foreground(profile.Color(color)).String()
}

func GreenText(text string) string {
	return Colorize(Green, text)
}

func CyanText(text string) string {
	return Colorize(Cyan, text)
}

func GrayText(text string) string {
	return Colorize(Gray, text)
}

func BoldText(text string) string {
	return profile.String(text).Bold().String()
}

func Error(message string) string {
	if !IsColorEnabled() {
		return message
	}
	return BoldText(Colorize(BrightRed, "Error: ")) + message
}

func Warning(message string) string {
	if !IsColorEnabled() {
		return message
	}
	return Colorize(Yellow, "Warning: ") + message
}
