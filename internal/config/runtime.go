package config

import (
	"os"
	"path/filepath"
)

// resolveRuntimePath home-joins a relative runtime path so every runtime
// artifact (.env, input history, log file) lands in the same directory no
// matter where the binary is launched from.
func resolveRuntimePath(path string) string {
	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}

func GetRuntimePath() string {
	path := os.Getenv("PEOPLEAI_RUNTIME_PATH")
	if path == "" {
		path = ".peopleai"
	}
	return resolveRuntimePath(path)
}
