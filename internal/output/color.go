package output

import (
	"fmt"
	"io"
	"os"
)

// Color modes accepted by the --color flag.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ResolveColorMode determines whether styled output should be used, given the
// --color flag value and the detected TTY state. An empty mode means auto.
// Unknown modes return a user error.
func ResolveColorMode(colorMode string, isTTY bool) (bool, error) {
	switch colorMode {
	case ColorNever:
		return false, nil
	case ColorAlways:
		return true, nil
	case ColorAuto, "":
		return isTTY, nil
	default:
		return false, NewUserError(fmt.Sprintf("--color must be %s, %s or %s (got %q)",
			ColorAuto, ColorAlways, ColorNever, colorMode))
	}
}

// IsTTY checks if a writer is a terminal.
// Returns true only for os.File that is a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
