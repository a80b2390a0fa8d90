package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// LoadTOMLFile decodes configPath directly into config — lexiprep's *Config,
// or any TOML-tagged struct sharing its [builder]/[cache]/[lookup] shape.
func LoadTOMLFile(configPath string, config interface{}) error {
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		log.Warnf("TOML parsing error in config file %s: %v. Attempting partial recovery...", configPath, err)
		return err
	}
	return nil
}

// ParseTOMLWithRecovery decodes configPath into an untyped document, for
// pulling individual well-typed fields out of a file that fails to decode
// cleanly into Config as a whole.
func ParseTOMLWithRecovery(configPath string) (map[string]any, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	doc := make(map[string]any)
	if _, err := toml.Decode(string(data), &doc); err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v", configPath, err)
		return nil, err
	}
	return doc, nil
}

// ExtractSection pulls one of lexiprep's top-level tables ("builder",
// "cache", "lookup") out of a document decoded by ParseTOMLWithRecovery.
func ExtractSection(doc map[string]any, sectionName string) (map[string]any, bool) {
	section, ok := doc[sectionName].(map[string]any)
	return section, ok
}

func extractInt(section map[string]any, key string) (int, bool) {
	if val, ok := section[key].(int64); ok {
		return int(val), true
	}
	return 0, false
}

func extractBool(section map[string]any, key string) (bool, bool) {
	val, ok := section[key].(bool)
	return val, ok
}

// ExtractBuilderShuffleSeed recovers [builder].bktree_shuffle_seed.
func ExtractBuilderShuffleSeed(section map[string]any) (int64, bool) {
	v, ok := extractInt(section, "bktree_shuffle_seed")
	return int64(v), ok
}

// ExtractBuilderEmitManifest recovers [builder].emit_manifest.
func ExtractBuilderEmitManifest(section map[string]any) (bool, bool) {
	return extractBool(section, "emit_manifest")
}

// ExtractBuilderCollectContext recovers [builder].collect_context.
func ExtractBuilderCollectContext(section map[string]any) (bool, bool) {
	return extractBool(section, "collect_context")
}

// ExtractCacheSize recovers [cache].size.
func ExtractCacheSize(section map[string]any) (int, bool) {
	return extractInt(section, "size")
}

// ExtractLookupDefaultTolerance recovers [lookup].default_tolerance.
func ExtractLookupDefaultTolerance(section map[string]any) (int, bool) {
	return extractInt(section, "default_tolerance")
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// SaveTOMLFile encodes data (lexiprep's *Config) as TOML into filePath.
func SaveTOMLFile(data interface{}, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		log.Errorf("Failed to create file: %v", err)
		return err
	}
	defer file.Close()
	encoder := toml.NewEncoder(file)
	return encoder.Encode(data)
}

// DirCheckResult reports whether a config directory exists (creating it if
// missing) and whether it is actually writable.
type DirCheckResult struct {
	Exists   bool
	Writable bool
	Error    error
}

// testWriteAccess probes dirPath by creating and removing a throwaway file.
func testWriteAccess(dirPath string) bool {
	testFile := filepath.Join(dirPath, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		log.Warnf("Cannot write to directory %s: %v", dirPath, err)
		return false
	}
	file.Close()
	os.Remove(testFile)
	return true
}

// CheckDirStatus ensures dirPath exists, creating it (and its parents) if
// necessary, and reports whether it can actually be written to. pkg/config
// calls this in InitConfig and RebuildConfigFile, so a directory that
// exists but is read-only (or fails to create) is caught before InitConfig
// or RebuildConfigFile attempt to save into it.
func CheckDirStatus(dirPath string) DirCheckResult {
	result := DirCheckResult{}
	if _, err := os.Stat(dirPath); err == nil {
		result.Exists = true
		result.Writable = testWriteAccess(dirPath)
		return result
	}
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		result.Error = err
		log.Warnf("Cannot create directory %s: %v", dirPath, err)
		return result
	}
	result.Exists = true
	result.Writable = testWriteAccess(dirPath)
	return result
}
