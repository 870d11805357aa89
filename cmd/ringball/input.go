package main

import (
	"github.com/gdamore/tcell/v2"
)

// command is what a terminal event asks the loop to do
type command uint8

const (
	cmdNone command = iota
	cmdQuit
	cmdNextTheme
	cmdPointer
	cmdResize
)

// classify maps a tcell event to a command; x, y carry the cell for pointer moves
func classify(ev tcell.Event) (cmd command, x, y int) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return cmdQuit, 0, 0
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return cmdQuit, 0, 0
			case 't', 'T':
				return cmdNextTheme, 0, 0
			}
		}
	case *tcell.EventMouse:
		x, y = ev.Position()
		return cmdPointer, x, y
	case *tcell.EventResize:
		return cmdResize, 0, 0
	}
	return cmdNone, 0, 0
}
