package ui

import (
	"drawpad/internal/editor"
	"drawpad/internal/render"
)

type MenuItem struct {
	ID       editor.ActionID
	Label    string
	Shortcut string
}

type Menu struct {
	Title string
	Items []MenuItem
}

func DefaultMenus() []Menu {
	return []Menu{
		{Title: "Draw", Items: []MenuItem{
			{ID: editor.ActionDrawObject, Label: "Draw Object", Shortcut: "Ctrl+D"},
		}},
		{Title: "Mosaic", Items: []MenuItem{
			{ID: editor.ActionGenerateMosaic, Label: "Generate Mosaic", Shortcut: "Ctrl+M"},
		}},
		{Title: "Canvas", Items: []MenuItem{
			{ID: editor.ActionClearCanvas, Label: "Clear Canvas", Shortcut: "Ctrl+L"},
			{ID: editor.ActionCopyCanvas, Label: "Copy to Clipboard", Shortcut: "Ctrl+Shift+C"},
		}},
		{Title: "Help", Items: []MenuItem{
			{ID: editor.ActionAbout, Label: "About", Shortcut: "F1"},
		}},
	}
}

const (
	menuTitlePad = 14
	dropdownPad  = 12
	shortcutGap  = 28
	minDropdownW = 160
)

// MenuBar tracks the menu titles, which dropdown is open and where its
// items sit. Call Layout before hit-testing or drawing.
type MenuBar struct {
	Menus []Menu
	// OpenIndex is the open dropdown, or -1.
	OpenIndex int

	titles   []Rect
	items    []Rect
	dropdown Rect
}

func NewMenuBar(menus []Menu) *MenuBar {
	return &MenuBar{Menus: menus, OpenIndex: -1}
}

func (m *MenuBar) Layout(layout Layout, theme Theme, measure MeasureFunc) {
	m.titles = m.titles[:0]
	x := 4
	for _, menu := range m.Menus {
		w := measure(menu.Title) + menuTitlePad*2
		m.titles = append(m.titles, Rect{X: x, Y: 0, W: w, H: layout.MenuH})
		x += w
	}

	m.items = m.items[:0]
	m.dropdown = Rect{}
	if m.OpenIndex < 0 || m.OpenIndex >= len(m.Menus) {
		return
	}
	menu := m.Menus[m.OpenIndex]
	w := minDropdownW
	for _, it := range menu.Items {
		iw := measure(it.Label) + shortcutGap + measure(it.Shortcut) + dropdownPad*2
		if iw > w {
			w = iw
		}
	}
	title := m.titles[m.OpenIndex]
	y := title.Y + title.H
	for range menu.Items {
		m.items = append(m.items, Rect{X: title.X, Y: y, W: w, H: theme.RowHeight - 4})
		y += theme.RowHeight - 4
	}
	m.dropdown = Rect{X: title.X, Y: title.Y + title.H, W: w, H: y - (title.Y + title.H)}
}

func (m *MenuBar) IsOpen() bool { return m.OpenIndex >= 0 }

func (m *MenuBar) Close() { m.OpenIndex = -1 }

// Contains reports whether (x, y) is over the bar or the open dropdown.
func (m *MenuBar) Contains(x, y int) bool {
	for _, r := range m.titles {
		if r.Contains(x, y) {
			return true
		}
	}
	return m.IsOpen() && m.dropdown.Contains(x, y)
}

// Click handles a press at (x, y). Clicking a title toggles its dropdown;
// clicking an item closes the dropdown and returns the item's action;
// clicking anywhere else closes it.
func (m *MenuBar) Click(x, y int) (editor.ActionID, bool) {
	for i, r := range m.titles {
		if r.Contains(x, y) {
			if m.OpenIndex == i {
				m.OpenIndex = -1
			} else {
				m.OpenIndex = i
			}
			return "", false
		}
	}
	if m.IsOpen() {
		items := m.Menus[m.OpenIndex].Items
		for i, r := range m.items {
			if r.Contains(x, y) && i < len(items) {
				m.OpenIndex = -1
				return items[i].ID, true
			}
		}
		m.OpenIndex = -1
	}
	return "", false
}

// Hover switches the open dropdown when the pointer slides onto another
// title, like a native menu bar.
func (m *MenuBar) Hover(x, y int) {
	if !m.IsOpen() {
		return
	}
	for i, r := range m.titles {
		if r.Contains(x, y) {
			m.OpenIndex = i
			return
		}
	}
}

func (m *MenuBar) Draw(fb *render.FrameBuffer, theme Theme, mx, my int) []Label {
	labels := make([]Label, 0, len(m.titles)+2*len(m.items))
	for i, r := range m.titles {
		if i == m.OpenIndex || r.Contains(mx, my) {
			fb.FillRect(r.X, r.Y, r.W, r.H, theme.MenuHover)
		}
		labels = append(labels, Label{Text: m.Menus[i].Title, Box: r, Align: AlignCenter, Color: theme.MenuText})
	}
	if !m.IsOpen() {
		return labels
	}
	d := m.dropdown
	fb.FillRect(d.X+2, d.Y+2, d.W, d.H, theme.Border)
	fb.FillRect(d.X, d.Y, d.W, d.H, theme.Dropdown)
	fb.StrokeRect(d.X, d.Y, d.W, d.H, 1, theme.Border)
	items := m.Menus[m.OpenIndex].Items
	for i, r := range m.items {
		if r.Contains(mx, my) {
			fb.FillRect(r.X+1, r.Y+1, r.W-2, r.H-2, theme.DropdownHover)
		}
		text := Rect{X: r.X + dropdownPad, Y: r.Y, W: r.W - dropdownPad*2, H: r.H}
		labels = append(labels, Label{Text: items[i].Label, Box: text, Color: theme.Text})
		if items[i].Shortcut != "" {
			labels = append(labels, Label{Text: items[i].Shortcut, Box: text, Color: theme.MutedText, Align: AlignRight})
		}
	}
	return labels
}
