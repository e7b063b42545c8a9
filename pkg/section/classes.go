package section

import "strings"

// Class slot keys accepted by Classes.Merge and theme tokens (class.<slot>).
const (
	SlotSection     = "section"
	SlotContainer   = "container"
	SlotRow         = "row"
	SlotColumn      = "column"
	SlotIconWrapper = "icon_wrapper"
	SlotBody        = "body"
	SlotIcon        = "icon"
)

// Default class names follow the Infima grid used by the documentation site.
const (
	DefaultSectionClass     = "features"
	DefaultContainerClass   = "container"
	DefaultRowClass         = "row"
	DefaultColumnClass      = "col col--4"
	DefaultIconWrapperClass = "text--center"
	DefaultBodyClass        = "text--center padding-horiz--md"
	DefaultIconClass        = "featureSvg"
)

// Classes carries the styling capability: one class list per layout slot.
type Classes struct {
	Section     string `json:"section"`
	Container   string `json:"container"`
	Row         string `json:"row"`
	Column      string `json:"column"`
	IconWrapper string `json:"icon_wrapper"`
	Body        string `json:"body"`
	Icon        string `json:"icon"`
}

// DefaultClasses returns the stock class names.
func DefaultClasses() Classes {
	return Classes{
		Section:     DefaultSectionClass,
		Container:   DefaultContainerClass,
		Row:         DefaultRowClass,
		Column:      DefaultColumnClass,
		IconWrapper: DefaultIconWrapperClass,
		Body:        DefaultBodyClass,
		Icon:        DefaultIconClass,
	}
}

// Merge returns a copy with non-empty overrides applied. Unknown slots are
// ignored.
func (c Classes) Merge(overrides map[string]string) Classes {
	for slot, value := range overrides {
		value = normalizeClassList(value)
		if value == "" {
			continue
		}
		switch strings.TrimSpace(slot) {
		case SlotSection:
			c.Section = value
		case SlotContainer:
			c.Container = value
		case SlotRow:
			c.Row = value
		case SlotColumn:
			c.Column = value
		case SlotIconWrapper:
			c.IconWrapper = value
		case SlotBody:
			c.Body = value
		case SlotIcon:
			c.Icon = value
		}
	}
	return c
}

func normalizeClassList(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
