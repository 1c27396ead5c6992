package form

import (
	"unicode"
	"unicode/utf8"
)

type Kind int

const (
	KindText Kind = iota
	KindChoice
	KindMultiChoice
)

const maxTextLen = 12

// Field is one labelled input row of a dialog.
type Field struct {
	Label   string
	Kind    Kind
	Text    string
	Options []string

	// Selected is the chosen option of a KindChoice field.
	Selected int
	// Checked marks the chosen options of a KindMultiChoice field.
	Checked []bool
}

func TextField(label string) *Field {
	return &Field{Label: label, Kind: KindText}
}

func ChoiceField(label string, options []string) *Field {
	return &Field{Label: label, Kind: KindChoice, Options: options}
}

// MultiChoiceField starts with every option checked.
func MultiChoiceField(label string, options []string) *Field {
	checked := make([]bool, len(options))
	for i := range checked {
		checked[i] = true
	}
	return &Field{Label: label, Kind: KindMultiChoice, Options: options, Checked: checked}
}

// InsertText appends printable runes of s to a text field. Anything is
// accepted here; numeric parsing happens on confirm.
func (f *Field) InsertText(s string) {
	if f.Kind != KindText {
		return
	}
	for _, r := range s {
		if unicode.IsControl(r) || !utf8.ValidRune(r) {
			continue
		}
		if utf8.RuneCountInString(f.Text) >= maxTextLen {
			return
		}
		f.Text += string(r)
	}
}

func (f *Field) Backspace() {
	if f.Kind != KindText || f.Text == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(f.Text)
	if size <= 0 {
		size = 1
	}
	f.Text = f.Text[:len(f.Text)-size]
}

func (f *Field) Select(option int) {
	if f.Kind != KindChoice || option < 0 || option >= len(f.Options) {
		return
	}
	f.Selected = option
}

// Cycle moves a choice selection by delta, wrapping around.
func (f *Field) Cycle(delta int) {
	n := len(f.Options)
	if f.Kind != KindChoice || n == 0 {
		return
	}
	f.Selected = ((f.Selected+delta)%n + n) % n
}

func (f *Field) Toggle(option int) {
	if f.Kind != KindMultiChoice || option < 0 || option >= len(f.Checked) {
		return
	}
	f.Checked[option] = !f.Checked[option]
}

// CheckedOptions returns the indexes of checked options in display order.
func (f *Field) CheckedOptions() []int {
	var out []int
	for i, on := range f.Checked {
		if on {
			out = append(out, i)
		}
	}
	return out
}
