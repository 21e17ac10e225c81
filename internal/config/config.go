package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Addr     string   `koanf:"addr"`
	Frontend Frontend `koanf:"frontend"`
	Storage  Storage  `koanf:"storage"`
	Tracker  Tracker  `koanf:"tracker"`
}

type Frontend struct {
	Enabled bool `koanf:"enabled"`
}

type Storage struct {
	// Dir holds the session cache files (last baseline and last actuals).
	Dir string `koanf:"dir"`
}

type Tracker struct {
	// AnchorDate is the mandatory week anchor (YYYY-MM-DD) that is always
	// present in the week grid, even when no project dates reach it.
	AnchorDate string `koanf:"anchordate"`
	// ActualsAsOfFilter restricts as-of-today actual hours to weeks up to
	// today. Off by default: the historical behavior reports the lifetime
	// actual total in the as-of-today block.
	ActualsAsOfFilter bool `koanf:"actualsasoffilter"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Addr: ":8181",
		Frontend: Frontend{
			Enabled: true,
		},
		Storage: Storage{
			Dir: "./data",
		},
		Tracker: Tracker{
			AnchorDate:        "2025-06-30",
			ActualsAsOfFilter: false,
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "HOURTRACK_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "HOURTRACK_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
