package apitype

type ViewMode uint8

const (
	ViewGrid ViewMode = iota
	ViewMasonry
)

func (s ViewMode) Toggle() ViewMode {
	if s == ViewGrid {
		return ViewMasonry
	} else {
		return ViewGrid
	}
}

func (s ViewMode) String() string {
	switch s {
	case ViewGrid:
		return "Grid"
	case ViewMasonry:
		return "Masonry"
	}
	return "UNKNOWN"
}
