package apitype

type Category string

func (s Category) String() string {
	return string(s)
}

// CategorySet is the closed enumeration of categories. The "all" category
// is never assigned to an image but matches every image when selected.
type CategorySet struct {
	all        Category
	categories []Category
}

func NewCategorySet(all Category, categories []Category) *CategorySet {
	values := make([]Category, 0, len(categories)+1)
	values = append(values, all)
	for _, category := range categories {
		if category != all {
			values = append(values, category)
		}
	}
	return &CategorySet{
		all:        all,
		categories: values,
	}
}

func (s *CategorySet) All() Category {
	return s.all
}

func (s *CategorySet) IsAll(category Category) bool {
	return category == s.all
}

// Categories returns every selectable category, "all" first.
func (s *CategorySet) Categories() []Category {
	categories := make([]Category, len(s.categories))
	copy(categories, s.categories)
	return categories
}

func (s *CategorySet) Contains(category Category) bool {
	for _, value := range s.categories {
		if value == category {
			return true
		}
	}
	return false
}
