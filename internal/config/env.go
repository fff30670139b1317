package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/romanpravda/scormpack/pkg/scormpack"
)

// EnvPrefix starts every environment variable read by ApplyEnv.
const EnvPrefix = "SCORMPACK_"

// DotEnvFile is loaded from the working directory when present.
const DotEnvFile = ".env"

// Environment returns the SCORMPACK_* variables visible to a build.
// A .env file in the working directory is loaded first and never overrides
// the process environment; values from envFiles override both, later files
// winning. A missing .env is fine; an unreadable or malformed one is an
// ErrInvalidConfig.
func Environment(envFiles []string) (map[string]string, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w: %w", DotEnvFile, scormpack.ErrInvalidConfig, err)
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(key, EnvPrefix) {
			env[key] = value
		}
	}

	for _, file := range envFiles {
		values, err := godotenv.Read(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file '%s': %w: %w", file, scormpack.ErrInvalidConfig, err)
		}
		for k, v := range values {
			if strings.HasPrefix(k, EnvPrefix) {
				env[k] = v
			}
		}
	}

	return env, nil
}

// ApplyEnv copies SCORMPACK_* values from env into cfg.
// SCORMPACK_EXCLUDE holds comma-separated patterns.
func ApplyEnv(cfg *scormpack.PackageConfig, env map[string]string) error {
	strs := map[string]*string{
		"TITLE":                &cfg.Title,
		"IDENTIFIER":           &cfg.Identifier,
		"SCORM_VERSION":        &cfg.Version,
		"DESTINATION":          &cfg.Destination,
		"ORGANIZATION":         &cfg.Organization,
		"STARTING_PAGE":        &cfg.StartingPage,
		"PACKAGE_FILENAME":     &cfg.PackageFilename,
		"METADATA_DESCRIPTION": &cfg.MetadataDescription,
		"ENTRY_IDENTIFIER":     &cfg.Metadata.EntryIdentifier,
		"CATALOG":              &cfg.Metadata.CatalogValue,
		"LIFECYCLE_VERSION":    &cfg.Metadata.LifeCycleVersion,
		"CLASSIFICATION":       &cfg.Metadata.Classification,
	}
	for name, dst := range strs {
		if v, ok := env[EnvPrefix+name]; ok && v != "" {
			*dst = v
		}
	}

	if v, ok := env[EnvPrefix+"MASTERY_SCORE"]; ok && v != "" {
		score, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sMASTERY_SCORE=%q: %w", EnvPrefix, v, scormpack.ErrInvalidConfig)
		}
		cfg.SetMasteryScore(score)
	}

	bools := map[string]func(bool){
		"RANDOM_FILENAME":    func(b bool) { cfg.RandomFilename = b },
		"CREATE_ZIP_ARCHIVE": func(b bool) { cfg.CreateZipArchive = &b },
		"SIMPLIFIED":         func(b bool) { cfg.Simplified = b },
		"FORCE":              func(b bool) { cfg.Force = b },
	}
	for name, set := range bools {
		v, ok := env[EnvPrefix+name]
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s=%q: %w", EnvPrefix, name, v, scormpack.ErrInvalidConfig)
		}
		set(b)
	}

	if v, ok := env[EnvPrefix+"EXCLUDE"]; ok && v != "" {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.Exclude = append(cfg.Exclude, p)
			}
		}
	}

	return nil
}
