// Package configloader loads service configuration from a YAML file, a .env
// file and process environment variables, later sources overriding earlier
// ones.
package configloader

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Validator is implemented by config structs that can check themselves after
// unmarshalling.
type Validator interface {
	Validate() error
}

const configFile = "config.yaml"

// Load reads config.yaml, then .env, then <SERVICE>_-prefixed environment
// variables into a fresh T and validates the result. Environment variables
// map to koanf paths by lowercasing and replacing "_" with "." after the
// prefix, e.g. PRODUCTS_SERVER_PORT -> server.port.
func Load[T Validator](serviceName string) (T, error) {
	var cfg T
	k := koanf.New(".")
	envPrefix := strings.ToUpper(serviceName) + "_"

	keyTransformer := func(key string) string {
		key = strings.ToLower(key)
		key = strings.TrimPrefix(key, strings.ToLower(envPrefix))
		return strings.ReplaceAll(key, "_", ".")
	}

	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: error loading YAML config file '%s': %v", configFile, err)
		}
	}

	loadDotEnv(k, keyTransformer)

	if err := k.Load(env.Provider(envPrefix, ".", keyTransformer), nil); err != nil {
		log.Printf("WARN: error loading system env vars: %v", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// loadDotEnv merges a .env file into k, if one exists next to the binary.
func loadDotEnv(k *koanf.Koanf, keyTransformer func(string) string) {
	envFileMap, err := godotenv.Read(".env")
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: error reading .env file: %v", err)
		}
		return
	}
	envMap := make(map[string]any, len(envFileMap))
	for key, value := range envFileMap {
		envMap[keyTransformer(key)] = value
	}
	if err := k.Load(confmap.Provider(envMap, "."), nil); err != nil {
		log.Printf("WARN: error loading .env config: %v", err)
	}
}
