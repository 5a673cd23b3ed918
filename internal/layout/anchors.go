package layout

// Anchor names the renderer binds regions to. They never change between
// snapshots.
const (
	AnchorRoot        = "dock-root"
	AnchorHeader      = "dock-header"
	AnchorLayout      = "dock-layout"
	AnchorLeftPanel   = "dock-left-panel"
	AnchorLeftGrip    = "dock-left-grip"
	AnchorCenterPanel = "dock-center-panel"
	AnchorRightGrip   = "dock-right-grip"
	AnchorRightPanel  = "dock-right-panel"
	AnchorFooter      = "dock-footer"
)

// SectionAnchor names the region of section id.
func SectionAnchor(id string) string {
	return "dock-section-" + id
}

// SectionGripAnchor names the grip below section id.
func SectionGripAnchor(id string) string {
	return "dock-section-" + id + "-grip"
}

// SectionContentAnchor names the content body of section id.
func SectionContentAnchor(id string) string {
	return "dock-section-" + id + "-content"
}

func buildAnchors(sectionIDs []string) map[string]string {
	anchors := map[string]string{
		"root":        AnchorRoot,
		"header":      AnchorHeader,
		"layout":      AnchorLayout,
		"leftPanel":   AnchorLeftPanel,
		"leftGrip":    AnchorLeftGrip,
		"centerPanel": AnchorCenterPanel,
		"rightGrip":   AnchorRightGrip,
		"rightPanel":  AnchorRightPanel,
		"footer":      AnchorFooter,
	}
	for _, id := range sectionIDs {
		anchors["section."+id] = SectionAnchor(id)
		anchors["section."+id+".grip"] = SectionGripAnchor(id)
		anchors["section."+id+".content"] = SectionContentAnchor(id)
	}
	return anchors
}
