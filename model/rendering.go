package model

import (
	"fmt"
	"io"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the board to the terminal
func (r *TerminalRenderer) Display(b Board) {
	for y := range b.Height() {
		for x := range b.Width() {
			if c, _ := b.At(x, y); c.IsAlive() {
				fmt.Fprint(r.Out, gridPosBlock)
			} else {
				fmt.Fprint(r.Out, gridPosEmpty)
			}
		}
		fmt.Fprintln(r.Out)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.Out
	return cmd.Run()
}
