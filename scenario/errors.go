package scenario

// ConfigError reports a malformed or semantically invalid statistical
// configuration. It is always fatal: a static config defect cannot be fixed
// by retrying, and the generator never substitutes defaults for bad values.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

// EmptyCatalogError reports a failure catalog with zero entries. An empty
// catalog almost always means the upstream failures.conf read broke, not a
// legitimate "nothing can fail" build, so generation refuses to proceed.
type EmptyCatalogError struct {
	Path string
}

func (e *EmptyCatalogError) Error() string {
	if e.Path == "" {
		return "failure catalog is empty"
	}
	return "failure catalog is empty: " + e.Path
}
