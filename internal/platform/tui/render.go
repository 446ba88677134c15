package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/vkuzmin/twenty48/internal/game"
)

const cellWidth = 7

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	emptyCellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("238"))

	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	hudLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("220")).
			Padding(1, 3).
			Align(lipgloss.Center)

	// tileColors maps tile values to foreground colors, roughly tracking
	// the classic palette from dim to hot.
	tileColors = map[int]string{
		2:     "252",
		4:     "230",
		8:     "216",
		16:    "214",
		32:    "208",
		64:    "202",
		128:   "227",
		256:   "226",
		512:   "220",
		1024:  "214",
		2048:  "196",
		4096:  "201",
		8192:  "199",
		16384: "93",
		32768: "57",
		65536: "21",
	}
)

// tileStyle returns the style for a tile value.
func tileStyle(v int) lipgloss.Style {
	color, ok := tileColors[v]
	if !ok {
		color = "255"
	}
	return lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Bold(v >= 128).
		Foreground(lipgloss.Color(color))
}

// renderBoard draws the 4x4 grid.
func renderBoard(b game.Board) string {
	rows := make([]string, 0, game.Size)
	for r := range game.Size {
		cells := make([]string, 0, game.Size)
		for c := range game.Size {
			v := b[r][c]
			if v == 0 {
				cells = append(cells, emptyCellStyle.Render("·"))
			} else {
				cells = append(cells, tileStyle(v).Render(strconv.Itoa(v)))
			}
		}
		row := lipgloss.JoinHorizontal(lipgloss.Center, cells...)
		rows = append(rows, row, "")
	}
	// Drop the trailing blank spacer line.
	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows[:len(rows)-1]...))
}

// renderHUD draws the score line above the board.
func renderHUD(score, best, maxTile, moves int) string {
	parts := fmt.Sprintf("%s %d   %s %d   %s %d   %s %d",
		hudLabelStyle.Render("score"), score,
		hudLabelStyle.Render("best"), best,
		hudLabelStyle.Render("max"), maxTile,
		hudLabelStyle.Render("moves"), moves,
	)
	return hudStyle.Render(parts)
}

// renderOverlay draws the win / game-over banner.
func renderOverlay(title, hint string) string {
	return overlayStyle.Render(title + "\n" + hint)
}
