package domain

// FloatOr dereferences the first non-nil pointer, falling back otherwise.
// Optional numeric fields (budgets, hours) are stored as pointers so that
// zero and absent stay distinguishable.
func FloatOr(fallback float64, ptrs ...*float64) float64 {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}
