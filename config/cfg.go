package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"github.com/zooyer/dxf-codec/core"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	CodecConfig struct {
		OutputVersion string `yaml:"output_version" validate:"required"`
		WriteHandles  bool   `yaml:"write_handles"`
		CodePage      string `yaml:"code_page"`
	}

	DumpConfig struct {
		Format string `yaml:"format" validate:"required,oneof=yaml msgpack text"`
	}

	Config struct {
		Version int           `yaml:"version" validate:"eq=1"`
		Codec   CodecConfig   `yaml:"codec"`
		Dump    DumpConfig    `yaml:"dump"`
		Logging LoggingConfig `yaml:"logging"`
	}
)

// Version 解析 output_version
func (c *CodecConfig) Version() (core.AcadVersion, error) {
	return core.ParseVersion(c.OutputVersion)
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// 只接受已定义的字段
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
		if _, err := cfg.Codec.Version(); err != nil {
			return nil, fmt.Errorf("codec.output_version: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration 先展开内置模板作为默认值，再用 path 指向的文件覆盖
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare 返回展开后的默认配置文件内容
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
