package config

import (
	_ "embed"
)

//go:embed defaults/flapgo.yaml
var defaultYAML []byte
