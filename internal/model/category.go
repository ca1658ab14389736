package model

// Category is the classifier's recommended disposition for an ad.
type Category string

// Category constants, in report priority order.
const (
	CategoryScale  Category = "SCALE"
	CategoryAdjust Category = "ADJUST"
	CategoryPause  Category = "PAUSE"
)

// Categories lists all known categories in priority order.
func Categories() []Category {
	return []Category{CategoryScale, CategoryAdjust, CategoryPause}
}

// Priority returns the sort rank of the category. Unknown categories sort
// after all known ones.
func (c Category) Priority() int {
	switch c {
	case CategoryScale:
		return 0
	case CategoryAdjust:
		return 1
	case CategoryPause:
		return 2
	default:
		return 3
	}
}

// Valid reports whether the category is one of the three known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryScale, CategoryAdjust, CategoryPause:
		return true
	default:
		return false
	}
}

// NormalizeCategory coerces an arbitrary classifier-supplied string to a
// known category. Unrecognized or empty values become ADJUST.
func NormalizeCategory(s string) Category {
	switch Category(s) {
	case CategoryScale:
		return CategoryScale
	case CategoryPause:
		return CategoryPause
	default:
		return CategoryAdjust
	}
}
