package ui

import (
	"strings"

	"github.com/atomicstack/tmux-pie-menu/internal/menu"
	"github.com/atomicstack/tmux-pie-menu/internal/pie"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	loadingText   = "working…"
	rootRingTitle = "tmux"
)

type cell struct {
	ch    rune
	style *lipgloss.Style
}

// canvas is a grid of terminal cells the ring is painted onto. Runs of
// cells sharing a style are rendered together.
type canvas struct {
	width  int
	height int
	cells  [][]cell
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height, cells: make([][]cell, height)}
	for y := range c.cells {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{ch: ' '}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) put(col, row int, text string, style *lipgloss.Style) {
	if row < 0 || row >= c.height {
		return
	}
	for _, ch := range text {
		if col >= 0 && col < c.width {
			c.cells[row][col] = cell{ch: ch, style: style}
		}
		col++
	}
}

// putCentered writes text centered on the given column.
func (c *canvas) putCentered(col, row int, text string, style *lipgloss.Style) {
	c.put(col-xansi.StringWidth(text)/2, row, text, style)
}

func (c *canvas) lines() []string {
	out := make([]string, c.height)
	for y, row := range c.cells {
		var b strings.Builder
		for x := 0; x < len(row); {
			style := row[x].style
			var run strings.Builder
			for x < len(row) && row[x].style == style {
				run.WriteRune(row[x].ch)
				x++
			}
			if style == nil {
				b.WriteString(run.String())
				continue
			}
			b.WriteString(style.Render(run.String()))
		}
		out[y] = b.String()
	}
	return out
}

// chromeLines is the number of rows below the canvas: the status line and
// the optional footer.
func (m *Model) chromeLines() int {
	if m.showFooter {
		return 2
	}
	return 1
}

func (m *Model) canvasHeight() int {
	h := m.height - m.chromeLines()
	if h < 1 {
		h = 1
	}
	return h
}

// canvasCenter returns the middle of the canvas in pointer space.
func (m *Model) canvasCenter() pie.Point {
	return pie.Point{X: float64(m.width / 2), Y: float64(m.canvasHeight() / 2 * 2)}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	c := newCanvas(m.width, m.canvasHeight())
	if r := m.top(); r != nil && r.pie.IsOpen() {
		drawRing(c, r)
	}
	lines := c.lines()
	lines = append(lines, m.statusLine())
	if m.showFooter {
		lines = append(lines, styles.Footer.Render(m.help.View(m.keys)))
	}
	return strings.Join(lines, "\n")
}

// drawRing paints the ring title at the center and every visible sprite,
// the selected one last so it is never overdrawn. The title lights up while
// a release would go back rather than pick a slice.
func drawRing(c *canvas, r *ring) {
	st := r.pie.State()
	title := styles.Title
	if st.Selected == pie.None {
		title = styles.Center
	}
	c.putCentered(int(st.Center.X), int(st.Center.Y/2), ringTitle(r.node), title)
	for i, sp := range r.sprites {
		if i == st.Selected || !sp.visible {
			continue
		}
		col, row := sp.cell()
		c.put(col, row, sp.text(), sp.style(false))
	}
	if st.Selected >= 0 && st.Selected < len(r.sprites) {
		if sp := r.sprites[st.Selected]; sp.visible {
			col, row := sp.cell()
			c.put(col, row, sp.text(), sp.style(true))
		}
	}
}

func ringTitle(node *menu.Node) string {
	if node == nil || node.ID == "root" {
		return rootRingTitle
	}
	title := node.ID
	if idx := strings.LastIndex(title, ":"); idx >= 0 {
		title = title[idx+1:]
	}
	title = strings.ReplaceAll(title, "-", " ")
	if node.Glyph != "" {
		title = node.Glyph + " " + title
	}
	return title
}

func (m *Model) statusLine() string {
	var (
		text  string
		style *lipgloss.Style
	)
	switch {
	case m.errMsg != "":
		text, style = m.errMsg, styles.Error
	case m.loading:
		text, style = loadingText, styles.Loading
	case m.backendLastErr != "":
		text, style = "tmux: "+m.backendLastErr, styles.Error
	case m.infoMsg != "":
		text, style = m.infoMsg, styles.Info
	default:
		return ""
	}
	if m.width > 1 && xansi.StringWidth(text) > m.width {
		text = truncate.StringWithTail(text, uint(m.width-1), "…")
	}
	return style.Render(text)
}
