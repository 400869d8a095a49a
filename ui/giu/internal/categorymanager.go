package internal

import (
	"github.com/AllenDang/giu"
	"vincit.fi/photo-gallery/api/apitype"
	"vincit.fi/photo-gallery/backend/lightbox"
)

const maxCategoryShortcuts = 9

type CategoryDef struct {
	Name     apitype.Category
	Key      giu.Key
	Shortcut string
}

// CategoryKeyManager selects categories with the number keys 1-9 in the
// order the categories are listed.
type CategoryKeyManager struct {
	CategoryKeyMap map[giu.Key]*CategoryDef
	Callback       func(def *CategoryDef)
}

func NewCategoryKeyManager(callback func(def *CategoryDef)) *CategoryKeyManager {
	return &CategoryKeyManager{
		CategoryKeyMap: map[giu.Key]*CategoryDef{},
		Callback:       callback,
	}
}

func (s *CategoryKeyManager) Reset(categories []apitype.Category) {
	s.CategoryKeyMap = map[giu.Key]*CategoryDef{}

	for i, category := range categories {
		if i >= maxCategoryShortcuts {
			break
		}
		shortcut := rune('1' + i)
		key := giu.Key(shortcut)
		s.CategoryKeyMap[key] = &CategoryDef{
			Name:     category,
			Key:      key,
			Shortcut: string(shortcut),
		}
	}
}

func (s *CategoryKeyManager) HandleKeys() {
	for key, def := range s.CategoryKeyMap {
		if giu.IsKeyPressed(key) {
			s.Callback(def)
		}
	}
}

var lightboxKeys = map[giu.Key]lightbox.Key{
	giu.KeyEscape: lightbox.KeyEscape,
	giu.KeyLeft:   lightbox.KeyLeft,
	giu.KeyRight:  lightbox.KeyRight,
}

// LightboxKeyAction returns the action of the lightbox key pressed during
// this frame.
func LightboxKeyAction(open bool) lightbox.Action {
	for giuKey, key := range lightboxKeys {
		if giu.IsKeyPressed(giuKey) {
			if action := lightbox.KeyAction(key, open); action != lightbox.ActionNone {
				return action
			}
		}
	}
	return lightbox.ActionNone
}
