package scenario

// Loaders returns the full catalog's category loaders in their canonical
// order. Adding a category means adding its loader here.
func Loaders() []Loader {
	return []Loader{
		Scheduling,
		Rescheduling,
		Refill,
		OfficeInfo,
		EdgeCases,
	}
}

// DefaultRegistry builds the registry over the built-in catalog. The
// catalog is static, so a construction error here is a programming error.
func DefaultRegistry() *Registry {
	reg, err := NewRegistry(Loaders()...)
	if err != nil {
		panic("scenario: invalid built-in catalog: " + err.Error())
	}
	return reg
}
