package gallery

import (
	"image"
	"vincit.fi/photo-gallery/common/util"
)

const (
	gridAspectWidth  = 4
	gridAspectHeight = 3
	defaultRatio     = float64(gridAspectWidth) / float64(gridAspectHeight)
)

func columnCount(width int, minColumnWidth int, gap int) int {
	if minColumnWidth <= 0 {
		return 1
	}
	columns := (width + gap) / (minColumnWidth + gap)
	if columns < 1 {
		return 1
	}
	return columns
}

func columnWidth(width int, columns int, gap int) int {
	cellWidth := (width - (columns-1)*gap) / columns
	if cellWidth < 1 {
		return 1
	}
	return cellWidth
}

// GridLayout places count cells of fixed 4:3 aspect ratio row by row. The
// number of columns is as large as fits with cells at least minCellWidth
// wide.
func GridLayout(count int, width int, minCellWidth int, gap int) []image.Rectangle {
	if count <= 0 {
		return nil
	}
	columns := columnCount(width, minCellWidth, gap)
	cellWidth := columnWidth(width, columns, gap)
	cellHeight := cellWidth * gridAspectHeight / gridAspectWidth

	cells := make([]image.Rectangle, 0, count)
	for i := 0; i < count; i++ {
		column := i % columns
		row := i / columns
		x := column * (cellWidth + gap)
		y := row * (cellHeight + gap)
		cells = append(cells, image.Rect(x, y, x+cellWidth, y+cellHeight))
	}
	return cells
}

// MasonryLayout packs items into columns, each item going to the currently
// shortest column. ratios are width/height of each item; an unknown ratio
// (zero or less) is drawn as 4:3.
func MasonryLayout(ratios []float64, width int, minColumnWidth int, gap int) []image.Rectangle {
	if len(ratios) == 0 {
		return nil
	}
	columns := columnCount(width, minColumnWidth, gap)
	cellWidth := columnWidth(width, columns, gap)
	heights := make([]int, columns)

	cells := make([]image.Rectangle, 0, len(ratios))
	for _, ratio := range ratios {
		if ratio <= 0 {
			ratio = defaultRatio
		}
		cellHeight := int(float64(cellWidth) / ratio)
		if cellHeight < 1 {
			cellHeight = 1
		}

		shortest := util.MinIndex(heights)
		x := shortest * (cellWidth + gap)
		y := heights[shortest]
		cells = append(cells, image.Rect(x, y, x+cellWidth, y+cellHeight))
		heights[shortest] += cellHeight + gap
	}
	return cells
}

// LayoutHeight is the total height needed by cells.
func LayoutHeight(cells []image.Rectangle) int {
	height := 0
	for _, cell := range cells {
		if cell.Max.Y > height {
			height = cell.Max.Y
		}
	}
	return height
}

// CellAt returns the index of the cell containing p or -1.
func CellAt(cells []image.Rectangle, p image.Point) int {
	for i, cell := range cells {
		if p.In(cell) {
			return i
		}
	}
	return -1
}
