package ports

// PathResolver defines the contract for locating an executable on the search path.
type PathResolver interface {
	// Resolve returns the absolute path of the first executable named name.
	Resolve(name string) (string, bool)
}
