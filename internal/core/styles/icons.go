package styles

import "github.com/colonyops/paratrooper/internal/core/task"

// Icons maps task statuses to display glyphs.
type Icons struct {
	Complete   string
	InProgress string
	Incomplete string
}

// iconSets are the built-in glyph sets selectable via config.
var iconSets = map[string]Icons{
	"default": {Complete: "✓", InProgress: "~", Incomplete: "○"},
	"dots":    {Complete: "●", InProgress: "◐", Incomplete: "○"},
	"check":   {Complete: "☑", InProgress: "☐", Incomplete: "☐"},
	"simple":  {Complete: "x", InProgress: "~", Incomplete: " "},
}

// GetIcons returns the named icon set, falling back to the default.
func GetIcons(name string) Icons {
	if set, ok := iconSets[name]; ok {
		return set
	}
	return iconSets["default"]
}

// For returns the glyph for a status.
func (i Icons) For(s task.Status) string {
	switch s {
	case task.StatusComplete:
		return i.Complete
	case task.StatusInProgress:
		return i.InProgress
	}
	return i.Incomplete
}
