package dto

// Button is one inline keyboard button. Exactly one of Action (callback
// data) or URL (external link) is set.
type Button struct {
	Label  string
	Action string
	URL    string
}

// RenderedMessage is a transport-agnostic outbound message: text plus an
// inline keyboard, one button row per Keyboard entry.
type RenderedMessage struct {
	Text     string
	Keyboard [][]Button
	HTML     bool
}

// Row builds a single keyboard row.
func Row(buttons ...Button) []Button { return buttons }

// Equal reports whether two rendered messages would display identically.
// The transport uses it to skip redundant message edits.
func (m RenderedMessage) Equal(other RenderedMessage) bool {
	if m.Text != other.Text || m.HTML != other.HTML || len(m.Keyboard) != len(other.Keyboard) {
		return false
	}
	for i, row := range m.Keyboard {
		if len(row) != len(other.Keyboard[i]) {
			return false
		}
		for j, b := range row {
			if b != other.Keyboard[i][j] {
				return false
			}
		}
	}
	return true
}
