package model

// DefaultColor is used when an event is created without an explicit color.
const DefaultColor = "#4a4a8f"

// Palette is the fixed set of colors an event may carry.
var Palette = []string{
	"#4a4a8f",
	"#e74c3c",
	"#2ecc71",
	"#3498db",
	"#f1c40f",
	"#9b59b6",
	"#e67e22",
	"#1abc9c",
}

type EventCreate struct {
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
	Color string `json:"color"`
}

type Event struct {
	ID string `json:"id"`
	EventCreate
}

// EventPatch carries the fields editable after creation. Start and end are
// fixed once an event exists; moving an event is delete plus re-add.
type EventPatch struct {
	Title *string
	Color *string
}

func ValidColor(c string) bool {
	for _, p := range Palette {
		if c == p {
			return true
		}
	}
	return false
}
