package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/games/defender"
)

var howToPlay = []string{
	"HOW TO PLAY",
	"",
	"Opponents drop from the sky. Shoot them before they",
	"reach the ground: every one that lands hurts the world.",
	"",
	"Arrows / WASD   move",
	"Shift / B       boost",
	"Space           fire",
	"Esc             back to menu",
	"",
	"Green [+] repairs your ship, magenta [♥] heals the world.",
	"The run ends when the ship or the world runs out of health.",
	"",
	"Press Enter, Esc or click to return",
}

// buttonCells returns the cells covered by a pixel rect, using its middle row.
func buttonCells(r core.Rect) (col, row, width int) {
	col = int(r.X / CellWidth)
	row = int((r.Y + r.H/2) / CellHeight)
	width = core.Max(int(r.W/CellWidth), 4)
	return col, row, width
}

func drawMenu(s *core.Screen, snap defender.Snapshot) {
	top := s.Height() / 4
	if len(snap.Buttons) > 0 {
		_, row, _ := buttonCells(snap.Buttons[0].Rect)
		top = core.Max(row-4, 0)
	}
	s.DrawTextCentered(top, "D  E  F  E  N  D  E  R", core.ColorBrightCyan)
	s.DrawTextCentered(top+1, "protect the ground below", core.ColorGray)

	last := top + 2
	for i, b := range snap.Buttons {
		col, row, w := buttonCells(b.Rect)
		label := "[" + padCenter(b.Label, w-2) + "]"
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightWhite
		}
		s.DrawText(col, row, label, color)
		last = row
	}

	if len(snap.HighScores) > 0 {
		best := snap.HighScores[0]
		s.DrawTextCentered(last+2, fmt.Sprintf("HIGH SCORE  %s  %d", best.Name, best.Score), core.ColorBrightYellow)
	}

	s.DrawTextCentered(s.Height()-1, "Enter: Play  |  H: How to play  |  Esc: Exit  |  Click a button", core.ColorGray)
}

func drawHowToPlay(s *core.Screen) {
	top := core.Max((s.Height()-len(howToPlay))/2, 0)
	for i, line := range howToPlay {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightCyan
		}
		s.DrawTextCentered(top+i, line, color)
	}
}

func drawGameOver(s *core.Screen, snap defender.Snapshot) {
	lines := 6 + len(snap.HighScores)
	if snap.WaitingForHighScore {
		lines += 3
	}
	w := core.Min(44, s.Width())
	h := core.Min(lines+2, s.Height())
	x := (s.Width() - w) / 2
	y := core.Max((s.Height()-h)/2, 0)

	s.DrawRect(x, y, w, h, ' ', core.ColorDefault)
	s.DrawBox(x, y, w, h, core.ColorGray)

	row := y + 1
	s.DrawTextCentered(row, "G A M E   O V E R", core.ColorBrightRed)
	row += 2
	s.DrawTextCentered(row, fmt.Sprintf("Score %d   Kills %d", snap.Score, snap.Stats.TotalKills()), core.ColorBrightWhite)
	row += 2

	if snap.WaitingForHighScore {
		s.DrawTextCentered(row, fmt.Sprintf("NEW HIGH SCORE! Rank #%d", snap.HighScoreIndex+1), core.ColorBrightYellow)
		row++
		name := snap.NameInput + "_"
		s.DrawTextCentered(row, "Name: "+padRight(name, defender.MaxNameLength+1), core.ColorBrightCyan)
		row += 2
	}

	for i, e := range snap.HighScores {
		line := fmt.Sprintf("%2d. %-*s %8d", i+1, defender.MaxNameLength, e.Name, e.Score)
		s.DrawTextCentered(row, line, core.ColorWhite)
		row++
	}

	hint := "Enter or click to return to the menu"
	if snap.WaitingForHighScore {
		hint = "Type your name, Enter to save"
	}
	s.DrawTextCentered(core.Min(y+h-1, s.Height()-1), " "+hint+" ", core.ColorGray)

	col, crow := toCell(snap.Close.X, snap.Close.Y, 0)
	s.SetColor(col, crow, 'X', core.ColorBrightRed)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

func padCenter(text string, width int) string {
	line := centerText(text, width)
	return padRight(line, width)
}

func padRight(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return text + strings.Repeat(" ", width-n)
}
