package config

// Merge combines user and project configs.
// Project settings take precedence field by field; an empty project field
// keeps the user value.
func Merge(user, project *Config) *Config {
	merged := NewConfig()

	for _, src := range []*Config{user, project} {
		if src == nil {
			continue
		}
		if src.Timeout > 0 {
			merged.Timeout = src.Timeout
		}
		for name, p := range src.Providers {
			cur, ok := merged.Providers[name]
			if !ok {
				merged.Providers[name] = p
				continue
			}
			if p.URL != "" {
				cur.URL = p.URL
			}
			if p.Timeout > 0 {
				cur.Timeout = p.Timeout
			}
			cur.Source = p.Source
			merged.Providers[name] = cur
		}
	}

	return merged
}

// Load loads and merges user and project configs.
func Load(projectDir string) (*Config, error) {
	user, err := LoadUserConfig()
	if err != nil {
		return nil, err
	}

	project, err := LoadProjectConfig(projectDir)
	if err != nil {
		return nil, err
	}

	return Merge(user, project), nil
}
