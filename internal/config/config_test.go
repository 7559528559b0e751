package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Port != "3001" {
		t.Errorf("Port = %q, want 3001", cfg.Port)
	}
	if cfg.DBHost != "localhost" || cfg.DBPort != "5432" {
		t.Errorf("unexpected DB defaults: %s:%s", cfg.DBHost, cfg.DBPort)
	}
	if cfg.DBName != "ecosense" {
		t.Errorf("DBName = %q, want ecosense", cfg.DBName)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DBHost != "db.internal" {
		t.Errorf("DBHost = %q, want db.internal", cfg.DBHost)
	}
	if cfg.CloudinaryCloudName != "demo" {
		t.Errorf("CloudinaryCloudName = %q, want demo", cfg.CloudinaryCloudName)
	}
}
