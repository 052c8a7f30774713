package slidedrift

import (
	_ "embed"
)

//go:embed VERSION
var Version string

//go:embed slidedrift.toml
var DefaultConfig string
