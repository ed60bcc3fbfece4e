package config

import (
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Database Database `koanf:"db"`
	Export   Export   `koanf:"export"`
}

type Database struct {
	// Path is the location of the SQLite file backing all stored collections.
	Path string `koanf:"path"`
}

type Export struct {
	// Dir is where exported artifacts are written.
	Dir string `koanf:"dir"`
	// ProcessingDelayMs is the artificial delay applied to export execution,
	// kept only for user-facing progress feedback. Tests set it to zero.
	ProcessingDelayMs int `koanf:"processingdelayms"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Database: Database{
			Path: "spendwise.db",
		},
		Export: Export{
			Dir:               "exports",
			ProcessingDelayMs: 1200,
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults", path)
		} else {
			log.Errorf("error loading config file: %v", err)
			return Application{}, err
		}
	}

	var cfg Application
	if err := k.Unmarshal("", &cfg); err != nil {
		log.Errorf("error unmarshalling config: %v", err)
		return Application{}, err
	}

	return cfg, nil
}
