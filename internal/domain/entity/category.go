package entity

// CategoryMiscellaneous is the fallback category applied whenever a
// description cannot be resolved to anything more specific.
const CategoryMiscellaneous = "Miscellaneous"

// Categories is the controlled vocabulary the classifier chooses from.
// The prompt enumerates this list verbatim, so entries must stay stable.
var Categories = []string{
	"Groceries",
	"Utilities",
	"Entertainment",
	"Dining",
	"Transport",
	"Rent",
	"Salary",
	"Shopping",
	"Healthcare",
	"Travel",
	CategoryMiscellaneous,
}
