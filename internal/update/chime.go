package update

import (
	"fmt"
	"os"
)

// TerminalChime rings the terminal bell. A single bell marks a completed
// item, a double bell marks the whole day done.
type TerminalChime struct{}

func (TerminalChime) ItemCompleted() {
	fmt.Fprint(os.Stdout, "\a")
}

func (TerminalChime) AllCompleted() {
	fmt.Fprint(os.Stdout, "\a\a")
}
