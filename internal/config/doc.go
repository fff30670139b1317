// Package config loads the optional scormpack.yaml project file and the
// SCORMPACK_* environment variables that feed a build.
//
// Sources are layered by the CLI, lowest priority first:
//
//	scormpack.yaml < .env / --env-file / process environment < flags
package config
