package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	appErrors "inkwell/internal/errors"
)

func TestInitializeLoadsDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyPalette); got != DefaultPalette {
		t.Fatalf("expected default %s to be %q, got %q", KeyPalette, DefaultPalette, got)
	}
	if got := GetString(KeyMode); got != "auto" {
		t.Fatalf("expected default %s to be auto, got %q", KeyMode, got)
	}
	if GetBool(KeyDebug) {
		t.Fatalf("expected default %s to be false", KeyDebug)
	}
	if got := GetString(KeyLogLevel); got != "debug" {
		t.Fatalf("expected default %s to be debug, got %q", KeyLogLevel, got)
	}
}

func TestProjectConfigOverridesUser(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	nested := filepath.Join(projectDir, "a", "b")
	mustMkdir(t, nested)
	writeFile(t, filepath.Join(projectDir, ".inkwell", "config.yaml"), `
palette: nord
mode: dark
`)

	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
palette: github
mode: light
debug: true
`)

	if err := Initialize(WithWorkingDir(nested), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyPalette); got != "nord" {
		t.Fatalf("expected project config to win for %s, got %q", KeyPalette, got)
	}
	if got := GetString(KeyMode); got != "dark" {
		t.Fatalf("expected project config to win for %s, got %q", KeyMode, got)
	}
	if !GetBool(KeyDebug) {
		t.Fatalf("expected user-only %s to survive the merge", KeyDebug)
	}
}

func TestEnvironmentAndOverridesPrecedence(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectCfg := filepath.Join(tmp, ".inkwell", "config.yaml")
	writeFile(t, projectCfg, `
palette: nord
log:
  level: info
`)

	t.Setenv("INK_PALETTE", "dracula")
	t.Setenv("INK_LOG_LEVEL", "warn")

	if err := Initialize(
		WithWorkingDir(tmp),
		WithProjectConfig(projectCfg),
		WithUserConfig(filepath.Join(tmp, "user.yaml")),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyPalette); got != "dracula" {
		t.Fatalf("expected environment to override %s, got %q", KeyPalette, got)
	}
	if got := GetString(KeyLogLevel); got != "warn" {
		t.Fatalf("expected environment to override %s, got %q", KeyLogLevel, got)
	}

	if err := ApplyOverrides(map[string]any{KeyPalette: "solarized"}); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}
	if got := GetString(KeyPalette); got != "solarized" {
		t.Fatalf("expected CLI override to set %s=solarized, got %q", KeyPalette, got)
	}
}

func TestInvalidYAMLReportsPath(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, "palette: [unclosed\n")

	err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg))
	if err == nil {
		t.Fatal("expected Initialize to fail on malformed YAML")
	}
	if !strings.Contains(err.Error(), userCfg) {
		t.Fatalf("expected error to mention %s, got %v", userCfg, err)
	}
}

func TestLoadTheme(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		palette  string
		mode     string
		wantCode appErrors.Code
	}{
		{name: "defaults", yaml: "", palette: "default", mode: "auto"},
		{name: "explicit", yaml: "palette: github\nmode: Dark\n", palette: "github", mode: "dark"},
		{name: "unknown palette", yaml: "palette: neon\n", wantCode: appErrors.CodeUnknownPalette},
		{name: "bad mode", yaml: "mode: sepia\n", wantCode: appErrors.CodeConfigurationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset()
			t.Cleanup(reset)

			tmp := t.TempDir()
			userCfg := filepath.Join(tmp, "user.yaml")
			writeFile(t, userCfg, tt.yaml)
			if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
				t.Fatalf("Initialize returned error: %v", err)
			}

			got, err := LoadTheme()
			if tt.wantCode != "" {
				if !appErrors.IsCode(err, tt.wantCode) {
					t.Fatalf("expected error code %s, got %v", tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTheme returned error: %v", err)
			}
			if got.Palette != tt.palette || got.Mode != tt.mode {
				t.Fatalf("LoadTheme() = %+v, want palette=%s mode=%s", got, tt.palette, tt.mode)
			}
		})
	}
}

func TestLoadThemeWithFallback(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		palette  string
		mode     string
		wantCode appErrors.Code
	}{
		{name: "valid passes through", yaml: "palette: nord\nmode: light\n", palette: "nord", mode: "light"},
		{name: "unknown palette", yaml: "palette: removed\nmode: dark\n", palette: DefaultPalette, mode: "dark", wantCode: appErrors.CodeUnknownPalette},
		{name: "bad mode", yaml: "palette: github\nmode: sepia\n", palette: "github", mode: "auto", wantCode: appErrors.CodeConfigurationError},
		{name: "both broken", yaml: "palette: removed\nmode: sepia\n", palette: DefaultPalette, mode: "auto", wantCode: appErrors.CodeUnknownPalette},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset()
			t.Cleanup(reset)

			tmp := t.TempDir()
			userCfg := filepath.Join(tmp, "user.yaml")
			writeFile(t, userCfg, tt.yaml)
			if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
				t.Fatalf("Initialize returned error: %v", err)
			}

			got, err := LoadThemeWithFallback()
			if tt.wantCode == "" && err != nil {
				t.Fatalf("LoadThemeWithFallback returned error: %v", err)
			}
			if tt.wantCode != "" && !appErrors.IsCode(err, tt.wantCode) {
				t.Fatalf("expected error code %s, got %v", tt.wantCode, err)
			}
			if got.Palette != tt.palette || got.Mode != tt.mode {
				t.Fatalf("LoadThemeWithFallback() = %+v, want palette=%s mode=%s", got, tt.palette, tt.mode)
			}
		})
	}
}

func TestSavePaletteWritesUserConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "home", ".inkwell", "config.yaml")
	writeFile(t, userCfg, "debug: true\n")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if err := SavePalette("nord"); err != nil {
		t.Fatalf("SavePalette returned error: %v", err)
	}
	if err := SaveMode("dark"); err != nil {
		t.Fatalf("SaveMode returned error: %v", err)
	}

	data, err := os.ReadFile(userCfg)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	content := string(data)
	for _, want := range []string{"palette: nord", "mode: dark", "debug: true"} {
		if !strings.Contains(content, want) {
			t.Errorf("saved config missing %q:\n%s", want, content)
		}
	}
	if got := GetString(KeyPalette); got != "nord" {
		t.Errorf("expected live config to reflect saved palette, got %q", got)
	}
}

func TestSavePalettePrefersProjectConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectCfg := filepath.Join(tmp, ".inkwell", "config.yaml")
	writeFile(t, projectCfg, "mode: light\n")
	userCfg := filepath.Join(tmp, "user.yaml")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if err := SavePalette("github"); err != nil {
		t.Fatalf("SavePalette returned error: %v", err)
	}

	data, err := os.ReadFile(projectCfg)
	if err != nil {
		t.Fatalf("read project config: %v", err)
	}
	if !strings.Contains(string(data), "palette: github") {
		t.Fatalf("expected project config to be updated, got:\n%s", data)
	}
	if _, err := os.Stat(userCfg); !os.IsNotExist(err) {
		t.Fatalf("expected user config to remain untouched, stat err = %v", err)
	}
}

func TestSaveRejectsUnknownValues(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, "user.yaml"))); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if err := SavePalette("neon"); !appErrors.IsCode(err, appErrors.CodeUnknownPalette) {
		t.Fatalf("expected unknown_palette, got %v", err)
	}
	if err := SaveMode("sepia"); !appErrors.IsCode(err, appErrors.CodeInvalidMode) {
		t.Fatalf("expected invalid_mode, got %v", err)
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	mustMkdir(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}
