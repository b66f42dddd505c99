package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	appErrors "inkwell/internal/errors"
	"inkwell/internal/theme"

	"github.com/spf13/viper"
)

const (
	KeyPalette  = "palette"
	KeyMode     = "mode"
	KeyDebug    = "debug"
	KeyLogLevel = "log.level"
	KeyNoColor  = "no-color"
)

const (
	// DefaultPalette is the palette used when nothing is configured.
	DefaultPalette = "default"
	envPrefix      = "INK"
	configDirName  = ".inkwell"
	configFileName = "config.yaml"
)

type initSettings struct {
	workingDir        string
	projectConfigPath string
	userConfigPath    string
}

// Option configures Initialize behaviour. Useful for tests to override paths.
type Option func(*initSettings)

// WithWorkingDir overrides the directory used for project config discovery.
func WithWorkingDir(dir string) Option {
	return func(cfg *initSettings) {
		cfg.workingDir = dir
	}
}

// WithProjectConfig explicitly sets the project config path instead of discovery.
func WithProjectConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.projectConfigPath = path
	}
}

// WithUserConfig overrides the default user config path.
func WithUserConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.userConfigPath = path
	}
}

var (
	configOnce sync.Once
	configMu   sync.RWMutex
	configInst *viper.Viper
	initErr    error

	// Paths recorded by configure so Save* writes where Initialize read.
	activeProjectConfig string
	activeUserConfig    string
)

// Initialize loads configuration using the precedence:
// defaults < user config < project config < environment variables < overrides.
func Initialize(opts ...Option) error {
	configOnce.Do(func() {
		settings := initSettings{}
		for _, opt := range opts {
			opt(&settings)
		}
		initErr = configure(&settings)
	})
	return initErr
}

// ApplyOverrides injects values typically coming from CLI flags.
func ApplyOverrides(overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	if err := Initialize(); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if configInst == nil {
		return fmt.Errorf("configuration not initialized")
	}
	for k, v := range overrides {
		configInst.Set(k, v)
	}
	return nil
}

// GetString fetches a string configuration value, initializing on demand.
func GetString(key string) string {
	v, err := getViper()
	if err != nil {
		return ""
	}
	return v.GetString(key)
}

// GetBool fetches a bool configuration value, initializing on demand.
func GetBool(key string) bool {
	v, err := getViper()
	if err != nil {
		return false
	}
	return v.GetBool(key)
}

// Set updates a configuration key at runtime, initializing on demand.
func Set(key string, value any) error {
	if err := Initialize(); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if configInst == nil {
		return fmt.Errorf("configuration not initialized")
	}
	configInst.Set(key, value)
	return nil
}

// Theme holds the validated appearance settings.
type Theme struct {
	Palette string
	// Mode is "light", "dark" or "auto".
	Mode string
}

// LoadTheme reads and validates the palette and mode settings.
func LoadTheme() (Theme, error) {
	t := readTheme()
	if err := t.validate(); err != nil {
		return t, err
	}
	return t, nil
}

// LoadThemeWithFallback is LoadTheme for commands that repair the config.
// An unknown palette becomes DefaultPalette and an invalid mode becomes auto;
// the validation error is still returned so callers can report it.
func LoadThemeWithFallback() (Theme, error) {
	t := readTheme()
	err := t.validate()
	if _, ok := theme.Lookup(t.Palette); !ok {
		t.Palette = DefaultPalette
	}
	if t.Mode != theme.ModeAuto {
		if _, perr := theme.ParseMode(t.Mode); perr != nil {
			t.Mode = theme.ModeAuto
		}
	}
	return t, err
}

func readTheme() Theme {
	t := Theme{
		Palette: strings.TrimSpace(GetString(KeyPalette)),
		Mode:    strings.ToLower(strings.TrimSpace(GetString(KeyMode))),
	}
	if t.Palette == "" {
		t.Palette = DefaultPalette
	}
	if t.Mode == "" {
		t.Mode = theme.ModeAuto
	}
	return t
}

func (t Theme) validate() error {
	if _, ok := theme.Lookup(t.Palette); !ok {
		return appErrors.New(appErrors.CodeUnknownPalette,
			fmt.Sprintf("unknown palette %q (available: %s)", t.Palette, strings.Join(theme.Available(), ", ")), nil)
	}
	if t.Mode != theme.ModeAuto {
		if _, err := theme.ParseMode(t.Mode); err != nil {
			return appErrors.New(appErrors.CodeConfigurationError,
				fmt.Sprintf("config %s: %v", KeyMode, err), err)
		}
	}
	return nil
}

func configure(settings *initSettings) error {
	workingDir := strings.TrimSpace(settings.workingDir)
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determine working directory: %w", err)
		}
		workingDir = wd
	}

	userConfigPath := strings.TrimSpace(settings.userConfigPath)
	if userConfigPath == "" {
		path, err := defaultUserConfigPath()
		if err != nil {
			return err
		}
		userConfigPath = path
	}

	projectConfigPath := strings.TrimSpace(settings.projectConfigPath)
	if projectConfigPath == "" {
		path, err := findProjectConfig(workingDir)
		if err != nil {
			return err
		}
		projectConfigPath = path
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := mergeConfigFile(v, userConfigPath); err != nil {
		return fmt.Errorf("load user config: %w", err)
	}
	if err := mergeConfigFile(v, projectConfigPath); err != nil {
		return fmt.Errorf("load project config: %w", err)
	}

	configMu.Lock()
	defer configMu.Unlock()
	configInst = v
	activeUserConfig = userConfigPath
	activeProjectConfig = projectConfigPath
	return nil
}

func mergeConfigFile(v *viper.Viper, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	//nolint:gosec // G304: Config loader intentionally reads user and project config files
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

func findProjectConfig(startDir string) (string, error) {
	if strings.TrimSpace(startDir) == "" {
		return "", nil
	}
	dir := startDir
	for {
		candidate := filepath.Join(dir, configDirName, configFileName)
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %s is a directory", candidate)
			}
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyPalette, DefaultPalette)
	v.SetDefault(KeyMode, theme.ModeAuto)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogLevel, "debug")
	v.SetDefault(KeyNoColor, false)
}

func getViper() (*viper.Viper, error) {
	if err := Initialize(); err != nil {
		return nil, err
	}
	configMu.RLock()
	defer configMu.RUnlock()
	if configInst == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return configInst, nil
}

// reset clears package state for tests.
//
//nolint:unused // Used in config_test.go
func reset() {
	configMu.Lock()
	defer configMu.Unlock()
	configInst = nil
	initErr = nil
	configOnce = sync.Once{}
	activeProjectConfig = ""
	activeUserConfig = ""
}

// ResetForTesting clears package state for tests in other packages.
// Returns a cleanup function that should be deferred.
func ResetForTesting(t interface{ TempDir() string }) func() {
	_, cleanup := ResetForTestingWithUserConfig(t, "")
	return cleanup
}

// ResetForTestingWithUserConfig is ResetForTesting with contents written to
// the user config file before Initialize runs. Returns the file path and the
// cleanup function.
func ResetForTestingWithUserConfig(t interface{ TempDir() string }, contents string) (string, func()) {
	reset()
	tmp := t.TempDir()
	userPath := filepath.Join(tmp, "user.yaml")
	if contents != "" {
		_ = os.WriteFile(userPath, []byte(contents), 0600)
	}
	_ = Initialize(WithWorkingDir(tmp), WithUserConfig(userPath))
	return userPath, reset
}

// SavePalette persists the palette name to the writable config file.
func SavePalette(name string) error {
	if _, ok := theme.Lookup(name); !ok {
		return appErrors.New(appErrors.CodeUnknownPalette, fmt.Sprintf("unknown palette %q", name), nil)
	}
	return save(KeyPalette, name)
}

// SaveMode persists the mode setting ("light", "dark" or "auto").
func SaveMode(mode string) error {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode != theme.ModeAuto {
		if _, err := theme.ParseMode(mode); err != nil {
			return err
		}
	}
	return save(KeyMode, mode)
}

// save writes key to the project config if one was found, otherwise the user
// config. The user config directory is created on demand; project config
// directories never are.
func save(key string, value any) error {
	targetPath, err := findWritableConfigPath()
	if err != nil {
		return fmt.Errorf("find config path: %w", err)
	}

	// Fresh viper instance so only this file's contents are rewritten.
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(targetPath)
	_ = v.ReadInConfig() // missing file is fine

	v.Set(key, value)

	dir := filepath.Dir(targetPath)
	//nolint:gosec // G301: User config directory needs standard permissions
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := v.WriteConfigAs(targetPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return Set(key, value)
}

// findWritableConfigPath prefers the project config that Initialize found,
// falling back to the user config.
func findWritableConfigPath() (string, error) {
	if err := Initialize(); err != nil {
		return "", err
	}
	configMu.RLock()
	project, user := activeProjectConfig, activeUserConfig
	configMu.RUnlock()

	if project != "" {
		if _, err := os.Stat(project); err == nil {
			return project, nil
		}
	}
	if user != "" {
		return user, nil
	}
	return defaultUserConfigPath()
}
