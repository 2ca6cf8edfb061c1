package adapter

import "context"

// Classifier resolves free-text transaction descriptions to categories.
type Classifier interface {
	// Categorize returns a category for every input description. The result
	// is total over the input: descriptions the classifier cannot resolve
	// map to the Miscellaneous fallback. Categorize never returns an error;
	// external failures degrade the result instead of failing ingestion.
	Categorize(ctx context.Context, descriptions []string) map[string]string
}
