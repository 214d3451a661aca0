package config

import (
	_ "embed"
)

//go:embed defaults/skyshot.yaml
var defaultYAML []byte
