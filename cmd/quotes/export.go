package main

// Run executes the export command against whatever is currently stored.
func (c *ExportCmd) Run(deps *Dependencies) error {
	return runExport(deps)
}
