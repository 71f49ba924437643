package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("INVENTORY_USERNAME", "")
	t.Setenv("INVENTORY_PASSWORD", "")
	t.Setenv("PARTSBIN_DB", "")
	t.Setenv("PARTSBIN_ADDR", "")
	t.Setenv("PARTSBIN_BACKUP_EVERY", "")

	cfg := Load()
	if cfg.DBPath != "electronics_inventory.db" {
		t.Errorf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.BackupEvery != "@daily" {
		t.Errorf("expected default backup schedule, got %q", cfg.BackupEvery)
	}
	if cfg.Username != "" || cfg.Password != "" {
		t.Error("expected empty credentials when unset")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("INVENTORY_USERNAME", "admin")
	t.Setenv("INVENTORY_PASSWORD", "hunter2")
	t.Setenv("PARTSBIN_DB", "/tmp/parts.db")
	t.Setenv("PARTSBIN_ADDR", ":9090")
	t.Setenv("PARTSBIN_BACKUP_DIR", "/tmp/backups")
	t.Setenv("PARTSBIN_BACKUP_EVERY", "@hourly")

	cfg := Load()
	if cfg.Username != "admin" || cfg.Password != "hunter2" {
		t.Errorf("unexpected credentials %q/%q", cfg.Username, cfg.Password)
	}
	if cfg.DBPath != "/tmp/parts.db" {
		t.Errorf("unexpected db path %q", cfg.DBPath)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("unexpected addr %q", cfg.Addr)
	}
	if cfg.BackupDir != "/tmp/backups" || cfg.BackupEvery != "@hourly" {
		t.Errorf("unexpected backup config %q/%q", cfg.BackupDir, cfg.BackupEvery)
	}
}
