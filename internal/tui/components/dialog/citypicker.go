package dialog

import (
	"fmt"

	"github.com/hama/hamaclock/internal/cities"
	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// PickResult is the city picker's result: assign Code to slot Slot.
type PickResult struct {
	Slot int
	Code string
}

// CityPickerDialog lets the user pick a catalog city for one slot.
type CityPickerDialog struct {
	*BaseDialog

	list list.Model
	slot int
}

// NewCityPickerDialog creates the picker over the full city catalog.
func NewCityPickerDialog() *CityPickerDialog {
	items := make([]list.Item, 0, len(cities.All()))
	for _, c := range cities.All() {
		items = append(items, cityItem{city: c})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)
	l.KeyMap.Quit.SetEnabled(false)

	return &CityPickerDialog{
		BaseDialog: NewBaseDialog("Pick a city"),
		list:       l,
	}
}

// SetTarget points the picker at the slot being edited and pre-selects
// that slot's current city.
func (d *CityPickerDialog) SetTarget(slot int, currentCode string) {
	d.slot = slot
	d.BaseDialog.title = fmt.Sprintf("Pick a city for slot %d", slot+1)

	for i, c := range cities.All() {
		if c.Code == currentCode {
			d.list.Select(i)
			return
		}
	}
	d.list.Select(0)
}

// Init initializes the dialog.
func (d *CityPickerDialog) Init() tea.Cmd {
	return nil
}

// Update handles input.
func (d *CityPickerDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		// While the filter input is active the list owns every key.
		if d.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "enter":
				if item, ok := d.list.SelectedItem().(cityItem); ok {
					d.SetResult(PickResult{Slot: d.slot, Code: item.city.Code})
					return d, d.Close()
				}
				return d, nil
			case "esc", "ctrl+c":
				return d, d.Cancel()
			}
		}
	}

	var cmd tea.Cmd
	d.list, cmd = d.list.Update(msg)
	return d, cmd
}

// SetSize sizes the dialog and the embedded list.
func (d *CityPickerDialog) SetSize(width, height int) tea.Cmd {
	cmd := d.SizeableBase.SetSize(width, height)

	lw := width - 12
	if lw > 44 {
		lw = 44
	}
	lh := height - 10
	if lh > 18 {
		lh = 18
	}
	if lw < 20 {
		lw = 20
	}
	if lh < 5 {
		lh = 5
	}
	d.list.SetWidth(lw)
	d.list.SetHeight(lh)
	return cmd
}

// View renders the dialog.
func (d *CityPickerDialog) View() string {
	return d.RenderDialog(d.list.View())
}

// cityItem implements list.Item.
type cityItem struct {
	city cities.City
}

func (i cityItem) Title() string {
	return fmt.Sprintf("%s  %s", i.city.Code, i.city.Name)
}

func (i cityItem) Description() string {
	return fmt.Sprintf("%s · %s", i.city.Country, i.city.TZ)
}

func (i cityItem) FilterValue() string {
	return i.city.Code + " " + i.city.Name + " " + i.city.Country
}
