// Package face renders the analog clock: a dial of hour marks with
// hour, minute and second hands plotted from the projected angles,
// plus a digital readout for the active city.
package face

import (
	"fmt"
	"math"
	"strings"

	"github.com/hama/hamaclock/internal/cities"
	"github.com/hama/hamaclock/internal/clock"
	"github.com/hama/hamaclock/internal/config"
	"github.com/hama/hamaclock/internal/tui/components/core"
	"github.com/hama/hamaclock/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Hand lengths as fractions of the dial radius.
const (
	hourLen   = 0.55
	minuteLen = 0.80
	secondLen = 0.92
)

// Model is the clock face component. The root model feeds it the
// config snapshot and the current wall-clock reading; View re-derives
// everything from those.
type Model struct {
	core.SizeableBase

	cfg     config.Config
	city    cities.City
	hasCity bool
	h, m, s int
}

// New creates a clock face.
func New() *Model {
	return &Model{cfg: config.Default()}
}

// SetConfig replaces the rendered configuration and resolves the
// active slot's city for the readout.
func (f *Model) SetConfig(cfg config.Config) {
	f.cfg = cfg
	f.city, f.hasCity = cities.Lookup(cfg.Active().Code)
}

// SetTime sets the wall-clock reading shown on the dial.
func (f *Model) SetTime(h, m, s int) {
	f.h, f.m, f.s = h, m, s
}

// Init implements the Component interface.
func (f *Model) Init() tea.Cmd {
	return nil
}

// Update implements the Component interface. The face is passive; the
// root model pushes state into it.
func (f *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return f, nil
}

// View renders the dial and the readout.
func (f *Model) View() string {
	r := f.radius()
	hands := clock.Project(f.h, f.m, f.s)

	dial := f.renderDial(r, hands)
	readout := f.renderReadout(hands)

	return lipgloss.JoinVertical(lipgloss.Center, dial, "", readout)
}

// radius maps the persisted pixel size onto a dial radius in rows,
// bounded so the dial stays legible in a terminal.
func (f *Model) radius() int {
	r := f.cfg.ClockSize / 20
	if r < 5 {
		r = 5
	}
	if r > 11 {
		r = 11
	}
	// Never overflow the component height (dial is 2r+1 rows).
	if f.Height > 6 && r > (f.Height-6)/2 {
		r = (f.Height - 6) / 2
	}
	if r < 5 {
		r = 5
	}
	return r
}

type cell struct {
	ch    string
	style lipgloss.Style
	set   bool
}

func (f *Model) renderDial(r int, hands clock.Hands) string {
	theme := styles.CurrentTheme()

	rows := 2*r + 1
	cols := 4*r + 1
	cx, cy := 2*r, r

	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, cols)
	}
	put := func(x, y int, ch string, style lipgloss.Style) {
		if y < 0 || y >= rows || x < 0 || x >= cols {
			return
		}
		grid[y][x] = cell{ch: ch, style: style, set: true}
	}

	// Hour marks; cardinal positions get their digits.
	digits := map[int]string{0: "12", 3: "3", 6: "6", 9: "9"}
	for i := 0; i < 12; i++ {
		rad := float64(i) * 30 * math.Pi / 180
		x := cx + int(math.Round(math.Sin(rad)*float64(r)*2))
		y := cy - int(math.Round(math.Cos(rad)*float64(r)))
		if d, ok := digits[i]; ok {
			for j, ch := range d {
				put(x+j, y, string(ch), theme.S().Subtitle)
			}
		} else {
			put(x, y, "·", theme.S().Subtle)
		}
	}

	// Hands. The second hand draws last so it stays visible.
	f.drawHand(put, cx, cy, r, hands.Hour, hourLen, "●", theme.S().Title)
	f.drawHand(put, cx, cy, r, hands.Minute, minuteLen, "•", theme.S().Text)
	f.drawHand(put, cx, cy, r, hands.Second, secondLen, "·", theme.S().Error)

	put(cx, cy, "●", theme.S().Bold)

	var b strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := grid[y][x]
			if !c.set {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(c.style.Render(c.ch))
		}
		if y < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// drawHand plots a hand from the center outward. Angles are degrees
// clockwise from 12; the x step is doubled to correct the 2:1 cell
// aspect ratio.
func (f *Model) drawHand(put func(int, int, string, lipgloss.Style), cx, cy, r int, angle, frac float64, ch string, style lipgloss.Style) {
	rad := angle * math.Pi / 180
	length := frac * float64(r)

	for d := 0.5; d <= length; d += 0.5 {
		x := cx + int(math.Round(math.Sin(rad)*d*2))
		y := cy - int(math.Round(math.Cos(rad)*d))
		put(x, y, ch, style)
	}
}

func (f *Model) renderReadout(hands clock.Hands) string {
	theme := styles.CurrentTheme()

	h12 := f.h % 12
	if h12 == 0 {
		h12 = 12
	}
	timeText := fmt.Sprintf("%02d:%02d:%02d %s", h12, f.m, f.s, clock.Meridiem(f.h))

	// FontSize chooses the readout weight the way the pixel font size
	// once did.
	timeStyle := theme.S().Text
	if f.cfg.FontSize >= 18 {
		timeStyle = theme.S().Title
	}

	slot := f.cfg.Active()
	place := slot.Code
	if f.hasCity {
		place = f.city.Label()
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		timeStyle.Render(timeText),
		theme.S().Muted.Render(place),
		theme.S().Subtle.Render(slot.TZ),
	)
}
