package widget

import (
	"github.com/AllenDang/giu"
	"image"
	"image/color"
	"vincit.fi/photo-gallery/api/apitype"
)

const (
	categoryButtonWidth     = 110
	categoryButtonHeight    = 28
	categoryButtonSpacing   = 8
	categoryIndicatorHeight = 3
)

var (
	selectedCategoryColor  = color.RGBA{R: 140, G: 184, B: 255, A: 255}
	selectedIndicatorColor = color.RGBA{R: 64, G: 160, B: 255, A: 255}
)

type CategoryBarWidget struct {
	categories []apitype.Category
	selected   apitype.Category
	onSelect   func(apitype.Category)
}

func CategoryBar(categories []apitype.Category, selected apitype.Category, onSelect func(apitype.Category)) *CategoryBarWidget {
	return &CategoryBarWidget{
		categories: categories,
		selected:   selected,
		onSelect:   onSelect,
	}
}

func (s *CategoryBarWidget) Build() {
	regionWidth, _ := giu.GetAvailableRegion()

	buttonsWidth := float32(len(s.categories)*(categoryButtonWidth+categoryButtonSpacing) - categoryButtonSpacing)
	offsetWidth := (regionWidth - buttonsWidth) / 2.0
	if offsetWidth < 0 {
		offsetWidth = 0
	}

	buttons := []giu.Widget{giu.Dummy(offsetWidth, 0)}
	for _, category := range s.categories {
		buttons = append(buttons, s.categoryButton(category))
	}

	giu.Style().
		SetStyle(giu.StyleVarItemSpacing, categoryButtonSpacing, 0).
		To(giu.Row(buttons...)).
		Build()
}

func (s *CategoryBarWidget) categoryButton(category apitype.Category) giu.Widget {
	selected := category == s.selected
	button := giu.Button(category.String()).
		Size(categoryButtonWidth, categoryButtonHeight).
		OnClick(func() {
			if !selected {
				s.onSelect(category)
			}
		})

	style := giu.Style()
	if selected {
		style.SetColor(giu.StyleColorButton, selectedCategoryColor)
		style.SetColor(giu.StyleColorText, color.Black)
	}

	indicator := giu.Custom(func() {
		if selected {
			canvas := giu.GetCanvas()
			start := giu.GetCursorScreenPos()
			end := start.Add(image.Pt(categoryButtonWidth, categoryIndicatorHeight))
			canvas.AddRectFilled(start, end, selectedIndicatorColor, 0, giu.DrawFlagsNone)
		}
		giu.Dummy(categoryButtonWidth, categoryIndicatorHeight).Build()
	})

	return style.
		SetStyle(giu.StyleVarItemSpacing, 0, 0).
		To(giu.Column(button, indicator))
}
