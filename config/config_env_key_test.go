package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"session": map[string]any{
			"cookieName": "",
		},
		"pricing": map[string]any{
			"shippingFee": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "PRICING_SHIPPINGFEE", want: "pricing.shippingFee"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Session.Provider != "memory" {
		t.Fatalf("Session.Provider = %q, want memory", cfg.Session.Provider)
	}
	if cfg.Session.CookieName != defaultCookieName {
		t.Fatalf("Session.CookieName = %q, want %q", cfg.Session.CookieName, defaultCookieName)
	}
	if cfg.Catalog.PageSize != defaultPageSize {
		t.Fatalf("Catalog.PageSize = %d, want %d", cfg.Catalog.PageSize, defaultPageSize)
	}
	if cfg.Pricing.ShippingFee != defaultShippingFee {
		t.Fatalf("Pricing.ShippingFee = %v, want %v", cfg.Pricing.ShippingFee, defaultShippingFee)
	}
}
