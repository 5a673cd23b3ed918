package layout

// Role is the accessible role of a grip.
type Role string

const RoleSeparator Role = "separator"

// Orientation is the direction a separator is drawn in.
type Orientation string

const (
	OrientationHorizontal Orientation = "horizontal"
	OrientationVertical   Orientation = "vertical"
)

// Grip carries the interaction props of a resize handle. The renderer
// attaches them as-is and never calls into panels any other way.
type Grip struct {
	Role        Role
	Orientation Orientation
	Label       string
	Anchor      string

	// OnPointerDown and OnTouchStart begin a drag at the coordinate along
	// the grip's resize axis.
	OnPointerDown func(coord float64)
	OnTouchStart  func(coord float64)
	// OnKeyDown handles a key press while the grip has focus and reports
	// whether it was consumed.
	OnKeyDown func(key string) bool
	// OnToggle collapses or restores the panel. Nil when the panel cannot
	// collapse.
	OnToggle func()
}

// Toggle describes a collapse button for assistive output.
type Toggle struct {
	// Expanded is true while the controlled region is shown.
	Expanded bool
	// Controls is the anchor of the region the toggle shows or hides.
	Controls string
	// Title reads "Collapse X" or "Expand X".
	Title string
}

func newToggle(title, controls string, collapsed bool) Toggle {
	t := Toggle{Expanded: !collapsed, Controls: controls, Title: "Collapse " + title}
	if collapsed {
		t.Title = "Expand " + title
	}
	return t
}

// SectionBinding is the renderer's view of one stacked section.
type SectionBinding struct {
	ID            string
	Title         string
	Anchor        string
	ContentAnchor string

	Height    float64
	Collapsed bool
	// SuppressTransition is true only while the section is being dragged.
	SuppressTransition bool

	Toggle Toggle
	// GripVisible is false for sections built without a resize grip.
	GripVisible bool
	Grip        Grip
}

// ColumnBinding is the renderer's view of a side column.
type ColumnBinding struct {
	Anchor             string
	Width              float64
	Collapsed          bool
	Collapsible        bool
	SuppressTransition bool
	// Toggle is the zero value for a column that cannot collapse.
	Toggle Toggle
	Grip   Grip
}

// Bindings is one immutable snapshot of the dock.
type Bindings struct {
	Anchors    map[string]string
	SectionIDs []string
	Sections   map[string]SectionBinding
	Left       ColumnBinding
	Right      ColumnBinding
}

// Grips returns every visible grip in focus order: the section grips top
// to bottom, then the catalog grip, then the inspector grip.
func (b Bindings) Grips() []Grip {
	grips := make([]Grip, 0, len(b.SectionIDs)+2)
	for _, id := range b.SectionIDs {
		if s := b.Sections[id]; s.GripVisible {
			grips = append(grips, s.Grip)
		}
	}
	return append(grips, b.Left.Grip, b.Right.Grip)
}
