package leave

// Category is one of the four leave categories. The set is closed; every
// switch over it is exhaustive on purpose.
type Category string

const (
	CategorySick      Category = "sick"
	CategoryCasual    Category = "casual"
	CategoryPaid      Category = "paid"
	CategoryMaternity Category = "maternity"
)

var Categories = []Category{CategorySick, CategoryCasual, CategoryPaid, CategoryMaternity}

// ParseCategory maps a request tag to a known category. An unknown tag is a
// distinct failure from a category with zero remaining days.
func ParseCategory(value string) (Category, error) {
	for _, c := range Categories {
		if Category(value) == c {
			return c, nil
		}
	}
	return "", UnknownCategoryError{Category: value}
}

// column returns the leave_balances column holding the category's remaining
// count. Only ever called with a parsed category, so the identifier is safe
// to splice into SQL.
func (c Category) column() string {
	switch c {
	case CategorySick:
		return "sick_leave"
	case CategoryCasual:
		return "casual_leave"
	case CategoryPaid:
		return "paid_leave"
	case CategoryMaternity:
		return "maternity_leave"
	}
	return ""
}
