package plugin

// Bridge is the foreign runtime's side of the contract, as the core calls
// it (§4.7). Every method is synchronous from the core's perspective: a
// concrete Bridge (a subprocess, an embedded interpreter, an in-process
// stub for tests) blocks the calling goroutine until the foreign runtime
// responds. A Bridge implementation owns its own timeout policy — this
// package imposes none.
type Bridge interface {
	// LoadPlugin resolves a plugin module by url (name/nameIsAlias identify
	// how the plugin was referenced in configuration, e.g. a scoped package
	// alias) and returns its metadata.
	LoadPlugin(url, name string, nameIsAlias bool) (LoadPluginResult, error)

	// SetupRuleConfigs hands every loaded plugin's resolved rule options to
	// it once, before any lint_file call is made.
	SetupRuleConfigs(optionsJSON []byte) error

	// LintFile runs req.RuleIDs against the AST already resident in the
	// shared arena chunk identified by req.BufferID.
	LintFile(req LintFileRequest) (LintFileResult, error)

	// CreateWorkspace and DestroyWorkspace bracket a plugin's awareness of
	// one project root, for plugins that cache cross-file state.
	CreateWorkspace(dir string) error
	DestroyWorkspace(dir string)
}
