package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type Company struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Phone   string `yaml:"phone"`
	GSTIN   string `yaml:"gstin"`
}

type Config struct {
	DBPath    string  `yaml:"db_path"`
	MediaDir  string  `yaml:"media_dir"`
	ExportDir string  `yaml:"export_dir"`
	Debug     bool    `yaml:"debug"`
	Company   Company `yaml:"company"`
}

// NewConfig reads the YAML file at path. Missing directories fall back
// to ./media and ./exports.
func NewConfig(path string) (*Config, error) {
	var c Config

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, &c)
	if err != nil {
		return nil, err
	}

	if c.DBPath == "" {
		return nil, errors.New("missing required database configuration")
	}
	if c.MediaDir == "" {
		c.MediaDir = "./media"
	}
	if c.ExportDir == "" {
		c.ExportDir = "./exports"
	}

	return &c, nil
}
