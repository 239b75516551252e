package logging

import "runtime"

var (
	reset = "\033[0m"
	bold  = "\033[1m"

	red  = "\033[31m"
	blue = "\033[34m"
	gray = "\033[37m"

	bgRed    = "\033[41m"
	bgYellow = "\033[43m"
	bgBlue   = "\033[44m"
)

func init() {
	if runtime.GOOS == "windows" {
		reset, bold = "", ""
		red, blue, gray = "", "", ""
		bgRed, bgYellow, bgBlue = "", "", ""
	}
}
