package panel

import (
	"github.com/zhubert/dock/internal/geometry"
	"github.com/zhubert/dock/internal/store"
)

// State is the persisted part of a panel.
type State struct {
	Size      float64
	Collapsed bool
}

// Codec maps a panel State onto its persisted record shape.
type Codec interface {
	Load(a *store.Adapter, key string, fallback State) State
	Save(a *store.Adapter, key string, s State)
}

// Wire shapes use pointers so a missing field fails validation instead of
// silently decoding as zero.
type sectionWire struct {
	Height    *float64 `json:"height"`
	Collapsed *bool    `json:"collapsed"`
}

type columnWire struct {
	Width     *float64 `json:"width"`
	Collapsed *bool    `json:"collapsed"`
}

// SectionCodec stores {height, collapsed}.
type SectionCodec struct{}

func (SectionCodec) Load(a *store.Adapter, key string, fallback State) State {
	w := store.Read(a, key, sectionWire{}, func(w sectionWire) bool {
		return w.Height != nil && w.Collapsed != nil &&
			geometry.ValidPanel(geometry.PanelGeometry{Height: *w.Height})
	})
	if w.Height == nil || w.Collapsed == nil {
		return fallback
	}
	return State{Size: *w.Height, Collapsed: *w.Collapsed}
}

func (SectionCodec) Save(a *store.Adapter, key string, s State) {
	a.Write(key, geometry.PanelGeometry{Height: s.Size, Collapsed: s.Collapsed})
}

// WidthCodec stores a bare number and has no collapsed flag.
type WidthCodec struct{}

func (WidthCodec) Load(a *store.Adapter, key string, fallback State) State {
	w := store.Read(a, key, geometry.ColumnWidth(fallback.Size), geometry.ValidWidth)
	return State{Size: float64(w)}
}

func (WidthCodec) Save(a *store.Adapter, key string, s State) {
	a.Write(key, geometry.ColumnWidth(s.Size))
}

// ColumnCodec stores {width, collapsed}.
type ColumnCodec struct{}

func (ColumnCodec) Load(a *store.Adapter, key string, fallback State) State {
	w := store.Read(a, key, columnWire{}, func(w columnWire) bool {
		return w.Width != nil && w.Collapsed != nil &&
			geometry.ValidColumn(geometry.CollapsibleColumnWidth{Width: *w.Width})
	})
	if w.Width == nil || w.Collapsed == nil {
		return fallback
	}
	return State{Size: *w.Width, Collapsed: *w.Collapsed}
}

func (ColumnCodec) Save(a *store.Adapter, key string, s State) {
	a.Write(key, geometry.CollapsibleColumnWidth{Width: s.Size, Collapsed: s.Collapsed})
}
