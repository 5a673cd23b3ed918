// Package ui renders the dock for the terminal.
//
// # Overview
//
// The ui package is stateless with respect to panels: it receives a
// layout.Bindings snapshot and paints it with Lipgloss. It never touches
// storage or the drag event hub. Interaction goes back through the grip
// handlers carried by the snapshot.
//
// # Layout System
//
//	┌──────────────────────────────────────────────────────────┐
//	│ Header (1 line)                                          │
//	├────────────┬─┬──────────────────────────┬─┬──────────────┤
//	│ ▾ Section  │ │                          │ │ ▸ Inspector  │
//	│   ...      │ │                          │ │              │
//	│ ────────── │││        Preview           │││              │
//	│ ▸ Section  │ │                          │ │              │
//	│ ────────── │ │                          │ │              │
//	├────────────┴─┴──────────────────────────┴─┴──────────────┤
//	│ Footer (1 line)                                          │
//	└──────────────────────────────────────────────────────────┘
//
// # Units
//
// Panel sizes are pixels. ViewContext maps them onto cells using a cell
// size (8x16 by default) and reports the terminal back to the layout in
// pixels, so limits such as the 32px collapsed strip keep their meaning.
//
// # Hit testing
//
// Every grip and collapse marker drawn by Render is recorded as a Target.
// HitTest maps a mouse cell back to the target so the program can call the
// grip's handlers.
//
// # Text selection
//
// The preview and the expanded inspector body are selectable. Selection
// coordinates are screen cells; the program refuses to start one while a
// drag holds the window's selection lock.
//
// # Styles
//
// All styles are regenerated from the active Theme (dark or light) by
// SetTheme. The focused grip is painted after layout on a cell buffer.
package ui
