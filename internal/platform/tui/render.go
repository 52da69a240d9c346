package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/games/defender"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Sprites are drawn centred on the entity.
var (
	shipRight = []string{"▄▄▟██▙▄ ", "▀▀▀▀▀▀▀▶"}
	shipLeft  = []string{" ▄▟██▙▄▄", "◀▀▀▀▀▀▀▀"}

	opponentSprites = map[string][]string{
		defender.KindBasic:      {"/==\\", "\\==/"},
		defender.KindAggressive: {"<##>", "/vv\\"},
		defender.KindSniper:     {"{o}", "/ \\"},
	}
	opponentColors = map[string]core.Color{
		defender.KindBasic:      core.ColorBrightGreen,
		defender.KindAggressive: core.ColorBrightMagenta,
		defender.KindSniper:     core.ColorBrightYellow,
	}
)

// Draw paints a snapshot onto the screen buffer.
func Draw(s *core.Screen, snap defender.Snapshot) {
	s.Clear()

	switch snap.Mode {
	case defender.ModeMenu:
		drawMenu(s, snap)
	case defender.ModeHowToPlay:
		drawHowToPlay(s)
	case defender.ModePlaying:
		drawWorld(s, snap)
		drawHUD(s, snap)
	case defender.ModeGameOver:
		drawWorld(s, snap)
		drawGameOver(s, snap)
	}
}

// toCell converts a world position to a screen cell.
func toCell(x, y, cameraX float64) (int, int) {
	return int(math.Floor((x - cameraX) / CellWidth)), int(math.Floor(y / CellHeight))
}

func drawSprite(s *core.Screen, center core.Vec2, cameraX float64, rows []string, c core.Color) {
	col, row := toCell(center.X, center.Y, cameraX)
	top := row - len(rows)/2
	for i, line := range rows {
		w := len([]rune(line))
		x := col - w/2
		j := 0
		for _, r := range line {
			if r != ' ' {
				s.SetColor(x+j, top+i, r, c)
			}
			j++
		}
	}
}

func drawWorld(s *core.Screen, snap defender.Snapshot) {
	cam := snap.CameraX

	drawGround(s, snap)

	for _, p := range snap.Particles {
		if p.Alpha < 32 {
			continue
		}
		r := '·'
		switch {
		case p.Rect.W >= 12:
			r = '*'
		case p.Rect.W >= 5:
			r = '+'
		}
		c := p.Rect.Center()
		col, row := toCell(c.X, c.Y, cam)
		s.SetColor(col, row, r, core.NearestColor(p.Color))
	}

	for _, h := range snap.HealthItems {
		if h.Alpha < 128 {
			continue // blink off phase
		}
		sprite, color := []string{"[+]"}, core.ColorBrightGreen
		if h.Kind == defender.HealthWorld {
			sprite, color = []string{"[♥]"}, core.ColorBrightMagenta
		}
		drawSprite(s, h.Rect.Center(), cam, sprite, color)
	}

	for _, o := range snap.Opponents {
		sprite, ok := opponentSprites[o.Kind]
		if !ok {
			sprite = []string{"??"}
		}
		drawSprite(s, o.Rect.Center(), cam, sprite, opponentColors[o.Kind])
	}

	for _, shot := range snap.PlayerShots {
		drawBeam(s, shot, cam, core.ColorBrightCyan)
	}
	for _, shot := range snap.OpponentShots {
		if shot.Horizontal {
			drawBeam(s, shot, cam, core.ColorBrightRed)
			continue
		}
		c := shot.Rect.Center()
		col, row := toCell(c.X, c.Y, cam)
		s.SetColor(col, row, '•', core.ColorBrightRed)
	}

	if p := snap.Player; p != nil && snap.Mode == defender.ModePlaying {
		sprite := shipRight
		if p.Facing == defender.FacingLeft {
			sprite = shipLeft
		}
		color := core.ColorBrightWhite
		if p.Boosting {
			color = core.ColorBrightCyan
		}
		drawSprite(s, p.Rect.Center(), cam, sprite, color)
	}
}

func drawBeam(s *core.Screen, shot defender.ProjectileView, cameraX float64, c core.Color) {
	y := shot.Rect.Center().Y
	from, to := shot.Spawn.X, shot.EndX
	if from > to {
		from, to = to, from
	}
	c0, row := toCell(from, y, cameraX)
	c1, _ := toCell(to, y, cameraX)
	for col := c0; col <= c1; col++ {
		s.SetColor(col, row, '─', c)
	}
}

func drawGround(s *core.Screen, snap defender.Snapshot) {
	if len(snap.Landscape) == 0 {
		return
	}
	land := defender.Landscape{Points: snap.Landscape}
	for col := 0; col < s.Width(); col++ {
		x := snap.CameraX + float64(col)*CellWidth + CellWidth/2.0
		if x < 0 || x > snap.WorldW {
			continue
		}
		gy := land.GroundYAt(x)
		row := int(math.Floor(gy / CellHeight))
		surface := '▀'
		if math.Mod(gy, CellHeight) >= CellHeight/2.0 {
			surface = '▄'
		}
		s.SetColor(col, row, surface, core.ColorOrange)
		for r := row + 1; r < s.Height(); r++ {
			s.SetColor(col, r, '░', core.ColorGray)
		}
	}
}

// bar renders a fixed-width gauge like [██████░░░░].
func bar(value, maxValue, width int) string {
	if maxValue <= 0 {
		maxValue = 1
	}
	filled := core.Clamp(value*width/maxValue, 0, width)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func barColor(value, maxValue int) core.Color {
	switch {
	case value*2 > maxValue:
		return core.ColorBrightGreen
	case value*4 > maxValue:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightRed
	}
}

func drawHUD(s *core.Screen, snap defender.Snapshot) {
	score := fmt.Sprintf("SCORE %06d", snap.Score)
	s.DrawText(1, 0, score, core.ColorBrightWhite)

	x := len(score) + 3
	s.DrawText(x, 0, "WORLD", core.ColorGray)
	world := bar(snap.WorldHealth, snap.MaxWorldHealth, 10)
	s.DrawText(x+6, 0, world, barColor(snap.WorldHealth, snap.MaxWorldHealth))

	if p := snap.Player; p != nil {
		x += 6 + len([]rune(world)) + 2
		s.DrawText(x, 0, "SHIP", core.ColorGray)
		s.DrawText(x+5, 0, bar(p.Health, p.MaxHealth, 10), barColor(p.Health, p.MaxHealth))
	}

	drawMinimap(s, snap, 1)

	st := snap.Stats
	info := fmt.Sprintf("kills %d  shots %d  time %s", st.TotalKills(), st.ShotsFired, st.Elapsed.Truncate(time.Second))
	s.DrawText(1, 2, info, core.ColorGray)
}

// drawMinimap shows the whole world on one row: the viewport in brackets,
// opponents as x, pickups as + and the player as @.
func drawMinimap(s *core.Screen, snap defender.Snapshot, row int) {
	if snap.WorldW <= 0 {
		return
	}
	w := core.Min(60, s.Width()-4)
	if w < 10 {
		return
	}
	x0 := (s.Width() - w) / 2
	scale := float64(w) / snap.WorldW
	at := func(wx float64) int {
		return x0 + core.Clamp(int(wx*scale), 0, w-1)
	}

	s.DrawHLine(x0, row, w, '·', core.ColorGray)
	s.SetColor(at(snap.CameraX), row, '[', core.ColorWhite)
	s.SetColor(at(snap.CameraX+snap.ScreenW), row, ']', core.ColorWhite)

	for _, h := range snap.HealthItems {
		s.SetColor(at(h.Rect.Center().X), row, '+', core.ColorBrightGreen)
	}
	for _, o := range snap.Opponents {
		s.SetColor(at(o.Rect.Center().X), row, 'x', opponentColors[o.Kind])
	}
	if p := snap.Player; p != nil {
		s.SetColor(at(p.Rect.Center().X), row, '@', core.ColorBrightCyan)
	}
}
