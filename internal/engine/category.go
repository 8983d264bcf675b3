package engine

// Category identifies a kind of question.
type Category int

const (
	Addition Category = iota
	Subtraction
	Multiplication
	Division
	Algebra
	ProblemSolving
	Graphs
)

var categoryKeys = map[Category]string{
	Addition:       "Category_Addition",
	Subtraction:    "Category_Subtraction",
	Multiplication: "Category_Multiplication",
	Division:       "Category_Division",
	Algebra:        "Category_Algebra",
	ProblemSolving: "Category_ProblemSolving",
	Graphs:         "Category_Graphs",
}

// Key returns the opaque category identifier used by the host and the
// localization catalogs, e.g. "Category_Addition".
func (c Category) Key() string {
	if k, ok := categoryKeys[c]; ok {
		return k
	}
	return categoryKeys[Addition]
}

func (c Category) String() string {
	return c.Key()
}

// ParseCategory maps a category key back to its Category.
func ParseCategory(key string) (Category, bool) {
	for c, k := range categoryKeys {
		if k == key {
			return c, true
		}
	}
	return Addition, false
}

// AllCategories returns every category in declaration order.
func AllCategories() []Category {
	return []Category{Addition, Subtraction, Multiplication, Division, Algebra, ProblemSolving, Graphs}
}

var gradeCategories = [][]Category{
	0: {Subtraction, Addition},
	1: {Subtraction, Addition},
	2: {Subtraction, Addition, Division, Multiplication},
	3: {Subtraction, Division, Multiplication, Algebra, ProblemSolving},
	4: {Division, Multiplication, Algebra, Graphs, ProblemSolving},
	5: {Division, Multiplication, Algebra, Graphs, ProblemSolving},
}

// CategoriesForGrade returns the ordered categories offered to a grade.
// Grades outside the table get none.
func CategoriesForGrade(grade int) []Category {
	if grade < 0 || grade >= len(gradeCategories) {
		return nil
	}
	out := make([]Category, len(gradeCategories[grade]))
	copy(out, gradeCategories[grade])
	return out
}
