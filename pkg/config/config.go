/*
Package config manages TOML config for lexiprep's index builder and
lookup tools.
*/
package config

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/mkovacs/lexiprep/internal/utils"
)

// Config holds the entire config structure.
type Config struct {
	Builder BuilderConfig `toml:"builder"`
	Cache   CacheConfig   `toml:"cache"`
	Lookup  LookupConfig  `toml:"lookup"`
}

// BuilderConfig controls how pkg/builder ingests wordlists and shapes the
// BK-tree it produces.
type BuilderConfig struct {
	// BKTreeShuffleSeed seeds the shuffle applied to the wordlist before
	// BK-tree insertion. A fixed seed makes builds reproducible; 0 means
	// "derive a seed from the wordlist itself" (see pkg/builder).
	BKTreeShuffleSeed int64 `toml:"bktree_shuffle_seed"`
	// EmitManifest controls whether cmd/prepdata writes a build manifest
	// to <wordlist>.manifest.yaml when no -manifest path is given.
	EmitManifest bool `toml:"emit_manifest"`
	// CollectContext is loaded and saved with the rest of the config.
	// cmd/prepdata does not read it; the co-occurrence pass runs only when
	// a caller invokes Builder.CollectContext directly.
	CollectContext bool `toml:"collect_context"`
}

// CacheConfig controls the bounded LRU cache placed in front of BK-tree
// Find and Trie CollectMatches results.
type CacheConfig struct {
	Size int `toml:"size"`
}

// LookupConfig holds defaults for cmd/lookup's REPL.
type LookupConfig struct {
	DefaultTolerance int `toml:"default_tolerance"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Builder: BuilderConfig{
			BKTreeShuffleSeed: 0,
			EmitManifest:      true,
			CollectContext:    false,
		},
		Cache: CacheConfig{
			Size: 512,
		},
		Lookup: LookupConfig{
			DefaultTolerance: 2,
		},
	}
}

// GetDefaultConfigPath returns the default path for config.toml, under
// utils.DefaultConfigDir.
func GetDefaultConfigPath() (string, error) {
	configDir, err := utils.DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
//  1. Custom path from -config flag
//  2. Default path: [UserConfigDir]/lexiprep/config.toml
//  3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates a default one if missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	status := utils.CheckDirStatus(configDir)
	if status.Error != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, status.Error)
		return DefaultConfig(), nil
	}
	if !status.Writable {
		log.Warnf("Config directory %s is not writable. Using built-in defaults...", configDir)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file, falling back to a partial recovery
// parse for a corrupt or partially-invalid file.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if builderSection, ok := utils.ExtractSection(tempConfig, "builder"); ok {
		extractBuilderConfig(builderSection, &config.Builder)
	}
	if cacheSection, ok := utils.ExtractSection(tempConfig, "cache"); ok {
		extractCacheConfig(cacheSection, &config.Cache)
	}
	if lookupSection, ok := utils.ExtractSection(tempConfig, "lookup"); ok {
		extractLookupConfig(lookupSection, &config.Lookup)
	}
	return config, nil
}

func extractBuilderConfig(data map[string]any, builder *BuilderConfig) {
	if val, ok := utils.ExtractBuilderShuffleSeed(data); ok {
		builder.BKTreeShuffleSeed = val
	}
	if val, ok := utils.ExtractBuilderEmitManifest(data); ok {
		builder.EmitManifest = val
	}
	if val, ok := utils.ExtractBuilderCollectContext(data); ok {
		builder.CollectContext = val
	}
}

func extractCacheConfig(data map[string]any, cache *CacheConfig) {
	if val, ok := utils.ExtractCacheSize(data); ok {
		cache.Size = val
	}
}

func extractLookupConfig(data map[string]any, lookup *LookupConfig) {
	if val, ok := utils.ExtractLookupDefaultTolerance(data); ok {
		lookup.DefaultTolerance = val
	}
}

// RebuildConfigFile force-creates a new config.toml at the default path.
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(defaultPath)
	status := utils.CheckDirStatus(configDir)
	if status.Error != nil {
		return status.Error
	}
	if !status.Writable {
		return fmt.Errorf("config directory %s is not writable", configDir)
	}
	config := DefaultConfig()
	return utils.SaveTOMLFile(config, defaultPath)
}

// GetActiveConfigPath returns the absolute path of the loaded config file.
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves config into a TOML file.
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
