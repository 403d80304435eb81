package cmd

// CompiledConfig carries values baked in at build time through ldflags.
type CompiledConfig struct {
	Version string
}
