package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	IsDebug *bool `yaml:"is_debug"`
	Log     struct {
		Format string `yaml:"format" env:"OCPP_LOG_FORMAT" env-default:"text" env-description:"text or json"`
	} `yaml:"log"`
	// Profiles restricts the accepted actions to these OCPP profiles, all of them when empty.
	Profiles []string `yaml:"profiles" env:"OCPP_PROFILES" env-separator:"," env-description:"comma separated profile names"`
	Checker  struct {
		MaxLineBytes int  `yaml:"max_line_bytes" env:"OCPP_MAX_LINE_BYTES" env-default:"1048576"`
		EchoPayload  bool `yaml:"echo_payload" env:"OCPP_ECHO_PAYLOAD" env-default:"false"`
	} `yaml:"checker"`
	Metrics struct {
		Textfile string `yaml:"textfile" env:"OCPP_METRICS_TEXTFILE" env-description:"prometheus text file written on exit"`
	} `yaml:"metrics"`
}

func (c *Config) Debug() bool {
	return c.IsDebug != nil && *c.IsDebug
}

var instance *Config
var instanceErr error
var once sync.Once

// GetConfig reads path once. A missing file is not an error: defaults and environment
// variables apply.
func GetConfig(path string) (*Config, error) {
	once.Do(func() {
		instance, instanceErr = readConfig(path)
	})
	return instance, instanceErr
}

func readConfig(path string) (*Config, error) {
	logrus.Debugf("reading config %s", path)
	conf := &Config{}
	err := cleanenv.ReadConfig(path, conf)
	if errors.Is(err, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(conf)
	}
	if err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		logrus.Info(desc)
		return nil, err
	}
	if conf.Checker.MaxLineBytes <= 0 {
		return nil, fmt.Errorf("checker.max_line_bytes must be positive, got %d", conf.Checker.MaxLineBytes)
	}
	return conf, nil
}
