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
		"pubsub": map[string]any{
			"topicId": "",
		},
		"discovery": map[string]any{
			"maxDistanceKm": 100.0,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "DISCOVERY_MAXDISTANCEKM", want: "discovery.maxDistanceKm"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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

func TestApplyDefaults_FillsAbsentSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Discovery.RadiusKm != DefaultRadiusKm {
		t.Fatalf("RadiusKm = %v, want %v", cfg.Discovery.RadiusKm, DefaultRadiusKm)
	}
	if cfg.Presence.HeartbeatMinGapSec != DefaultHeartbeatMinGapSec {
		t.Fatalf("HeartbeatMinGapSec = %v, want %v", cfg.Presence.HeartbeatMinGapSec, DefaultHeartbeatMinGapSec)
	}
	if cfg.Chat.TypingTimeoutSec != DefaultTypingTimeoutSec {
		t.Fatalf("TypingTimeoutSec = %v, want %v", cfg.Chat.TypingTimeoutSec, DefaultTypingTimeoutSec)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Discovery: &DiscoveryConfig{RadiusKm: 5, MaxDistanceKm: 40, MaxResults: 10},
		Presence:  &PresenceConfig{HeartbeatIntervalSec: 120, HeartbeatMinGapSec: 30},
	}
	applyDefaults(cfg)

	if cfg.Discovery.RadiusKm != 5 || cfg.Discovery.MaxDistanceKm != 40 {
		t.Fatalf("explicit discovery values overwritten: %+v", cfg.Discovery)
	}
	if cfg.Presence.HeartbeatMinGapSec != 30 {
		t.Fatalf("explicit presence values overwritten: %+v", cfg.Presence)
	}
}
