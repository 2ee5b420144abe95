package config

import _ "embed"

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte
