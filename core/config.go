package core

import (
	"fmt"
	"strings"
)

// DefaultNormalizeFormat renders the full twelve digit form without a
// separator.
const DefaultNormalizeFormat = "YYYYMMDDNNNN"

type Config struct {
	ServiceName     string `koanf:"service_name" mapstructure:"service_name"`
	Forgiving       bool   `koanf:"forgiving" mapstructure:"forgiving"`
	Strict          bool   `koanf:"strict" mapstructure:"strict"`
	NormalizeFormat string `koanf:"normalize_format" mapstructure:"normalize_format"`
}

func DefaultConfig() Config {
	return Config{
		ServiceName:     "personnummer",
		NormalizeFormat: DefaultNormalizeFormat,
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ServiceName) == "" {
		return fmt.Errorf("core: service_name is required")
	}
	if strings.TrimSpace(c.NormalizeFormat) == "" {
		return fmt.Errorf("core: normalize_format is required")
	}
	return validateTemplate(c.NormalizeFormat)
}

// validateTemplate enforces that each placeholder occurs at most once and
// that the template carries at most one separator slot. YYYY is consumed
// before YY so the four digit token does not count as two YY occurrences.
func validateTemplate(template string) error {
	rest := template
	for _, token := range []string{"YYYY", "NNNN", "YY", "MM", "DD"} {
		count := strings.Count(rest, token)
		if count > 1 {
			return fmt.Errorf("core: normalize_format repeats placeholder %s", token)
		}
		rest = strings.Replace(rest, token, "", 1)
	}
	if strings.Count(rest, "-")+strings.Count(rest, "+") > 1 {
		return fmt.Errorf("core: normalize_format has more than one separator slot")
	}
	return nil
}
