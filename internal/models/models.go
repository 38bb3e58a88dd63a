package models

type Parent string

const (
	ParentA Parent = "A"
	ParentB Parent = "B"
)

func (parent Parent) Valid() bool {
	return parent == ParentA || parent == ParentB
}

type Parity string

const (
	ParityOdd  Parity = "odd"
	ParityEven Parity = "even"
)

type Settings struct {
	ParentA string `json:"parentA"`
	ParentB string `json:"parentB"`
	Child1  string `json:"child1"`
	Child2  string `json:"child2"`
}

func DefaultSettings() Settings {
	return Settings{
		ParentA: "Iris",
		ParentB: "Koen",
		Child1:  "Kind 1",
		Child2:  "Kind 2",
	}
}

// ParentName returns the configured display name for parent, or "" when the
// parent is unset.
func (settings Settings) ParentName(parent Parent) string {
	switch parent {
	case ParentA:
		return settings.ParentA
	case ParentB:
		return settings.ParentB
	}
	return ""
}

// CalendarAssignments maps a YYYY-MM-DD date to the parent on duty. Dates
// without an entry are unassigned.
type CalendarAssignments map[string]Parent

type Note struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Text    string `json:"text"`
	Created string `json:"created"`
}

type NoteView struct {
	Note
	Parent     Parent `json:"parent,omitempty"`
	ParentName string `json:"parentName,omitempty"`
}

type ChecklistItem struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

type CleaningProgress struct {
	Done    int  `json:"done"`
	Total   int  `json:"total"`
	AllDone bool `json:"allDone"`
}

type WeekAssignment struct {
	WeekNumber int    `json:"weekNumber"`
	Parity     Parity `json:"parity"`
	Parent     Parent `json:"parent"`
	ParentName string `json:"parentName"`
}

type WeekDay struct {
	Date    string `json:"date"`
	Label   string `json:"label"`
	Day     int    `json:"day"`
	Parent  Parent `json:"parent,omitempty"`
	IsToday bool   `json:"isToday"`
}
