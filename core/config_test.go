package core

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.NormalizeFormat != "YYYYMMDDNNNN" {
		t.Fatalf("unexpected default template: %q", cfg.NormalizeFormat)
	}
	if cfg.Forgiving || cfg.Strict {
		t.Fatalf("forgiving and strict must default to off")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid custom template", func(c *Config) { c.NormalizeFormat = "YYMMDD-NNNN" }, false},
		{"empty service name", func(c *Config) { c.ServiceName = " " }, true},
		{"empty template", func(c *Config) { c.NormalizeFormat = "" }, true},
		{"repeated placeholder", func(c *Config) { c.NormalizeFormat = "MMMMDDNNNN" }, true},
		{"two separator slots", func(c *Config) { c.NormalizeFormat = "YY-MM-DD" }, true},
		{"mixed separator slots", func(c *Config) { c.NormalizeFormat = "YY-MM+DD" }, true},
		{"yyyy does not count as yy twice", func(c *Config) { c.NormalizeFormat = "YYYYMMDDNNNN" }, false},
		{"yyyy and yy together", func(c *Config) { c.NormalizeFormat = "YYYYYYMMDDNNNN" }, false},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		err := cfg.Validate()
		if tc.wantErr && err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
	}
}
