package config

import "os"

func IsDebug() bool {
	return os.Getenv("PEOPLEAI_DEBUG") == "1"
}
