package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"ui": map[string]interface{}{
			"colored_output":      true,
			"show_completed_mark": true,
		},
		"search": map[string]interface{}{
			"max_results": 0, // 0 means return all fuzzy matches
		},
		"session": map[string]interface{}{
			"history_file": "~/.remindme/history",
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}

func GetDefaultConfigPath() string {
	return "~/.remindme/config.yaml"
}
