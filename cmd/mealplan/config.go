package main

import (
	"flag"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config corresponds to configs/server.yaml.
type Config struct {
	Server struct {
		Port  string `yaml:"port"`
		Debug bool   `yaml:"debug"`
	} `yaml:"server"`
	Catalog struct {
		// Provider selects where the catalog comes from: "file" reads the
		// JSON exports under Paths.Data, "postgres" loads straight from the
		// food database (DATABASE_URL).
		Provider string `yaml:"provider"`
	} `yaml:"catalog"`
	Paths struct {
		Data  string `yaml:"data"`
		Cache string `yaml:"cache"`
		// History is the served-meal log; empty disables history tracking.
		History string `yaml:"history"`
		// Families is a yaml file of stored household profiles; empty
		// disables lookup by family_id.
		Families string `yaml:"families"`
	} `yaml:"paths"`
}

func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// InitConfig resolves the server configuration with the precedence
// flags > config file > defaults.
func InitConfig() (*Config, bool) {
	configPath := flag.String("config", "configs/server.yaml", "Path to server config file")
	portFlag := flag.String("port", "", "Server port")
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	providerFlag := flag.String("provider", "", "Catalog provider: file or postgres")
	dataFlag := flag.String("data", "", "Path to the catalog data directory")
	cacheFlag := flag.String("cache", "", "Path to the similarity cache directory")
	historyFlag := flag.String("history", "", "Path to the served-meal history file")
	familiesFlag := flag.String("families", "", "Path to the stored family profiles file")
	clearCacheFlag := flag.Bool("clear-cache", false, "Remove cached similarity matrices and exit")
	flag.Parse()

	// 1. Defaults.
	cfg := &Config{}
	cfg.Server.Port = "8080"
	cfg.Catalog.Provider = "file"
	cfg.Paths.Data = "data"
	cfg.Paths.Cache = "data/cache"
	cfg.Paths.History = "data/history.jsonl"

	// 2. Config file, when present, overrides the defaults.
	if loaded, err := loadConfigFile(*configPath); err == nil {
		if loaded.Server.Port != "" {
			cfg.Server.Port = loaded.Server.Port
		}
		if loaded.Server.Debug {
			cfg.Server.Debug = true
		}
		if loaded.Catalog.Provider != "" {
			cfg.Catalog.Provider = loaded.Catalog.Provider
		}
		if loaded.Paths.Data != "" {
			cfg.Paths.Data = loaded.Paths.Data
		}
		if loaded.Paths.Cache != "" {
			cfg.Paths.Cache = loaded.Paths.Cache
		}
		if loaded.Paths.History != "" {
			cfg.Paths.History = loaded.Paths.History
		}
		if loaded.Paths.Families != "" {
			cfg.Paths.Families = loaded.Paths.Families
		}
	} else {
		log.Printf("Info: could not load config file '%s': %v. Using defaults or flags.", *configPath, err)
	}

	// 3. Flags win.
	if *portFlag != "" {
		cfg.Server.Port = *portFlag
	}
	if *debugFlag {
		cfg.Server.Debug = true
	}
	if *providerFlag != "" {
		cfg.Catalog.Provider = *providerFlag
	}
	if *dataFlag != "" {
		cfg.Paths.Data = *dataFlag
	}
	if *cacheFlag != "" {
		cfg.Paths.Cache = *cacheFlag
	}
	if *historyFlag != "" {
		cfg.Paths.History = *historyFlag
	}
	if *familiesFlag != "" {
		cfg.Paths.Families = *familiesFlag
	}

	return cfg, *clearCacheFlag
}
