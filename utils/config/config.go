package config

import (
	"fmt"

	"github.com/tsinghua-fib-lab/nasch-settings/topology"
	"gopkg.in/yaml.v2"
)

const (
	DefaultOutputDir = "."
	DefaultIndent    = 2
)

// RuntimeConfig 运行时配置
// 功能：在原始配置基础上填好默认值，供任务直接使用
type RuntimeConfig struct {
	All Config // 全部配置

	OutputDir string           // 输出目录
	Indent    int              // JSON缩进
	Topology  topology.Options // 路网生成设置
}

// Load 解析YAML配置
// 说明：使用严格模式，未知字段视为错误
func Load(data []byte) (Config, error) {
	var c Config
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return Config{}, fmt.Errorf("config file load err: %w", err)
	}
	return c, nil
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 功能：校验配置并填充默认值
// 参数：config-原始配置对象
// 返回：运行时配置，配置不合法时返回错误
// 说明：
// 1. 输出目录默认为当前目录，缩进默认为2
// 2. transition_time默认为5，external_controller默认为"external"
func NewRuntimeConfig(config Config) (*RuntimeConfig, error) {
	rc := &RuntimeConfig{
		All:       config,
		OutputDir: DefaultOutputDir,
		Indent:    DefaultIndent,
		Topology:  topology.DefaultOptions(),
	}

	if config.Output.Dir != "" {
		rc.OutputDir = config.Output.Dir
	}
	if config.Output.Indent != nil {
		if *config.Output.Indent < 0 {
			return nil, fmt.Errorf("output.indent must be >= 0, got %d", *config.Output.Indent)
		}
		rc.Indent = *config.Output.Indent
	}
	if config.Topology.TransitionTime != nil {
		if *config.Topology.TransitionTime < 0 {
			return nil, fmt.Errorf("topology.transition_time must be >= 0, got %d", *config.Topology.TransitionTime)
		}
		rc.Topology.TransitionTime = *config.Topology.TransitionTime
	}
	if config.Topology.ExternalController != "" {
		rc.Topology.ExternalController = config.Topology.ExternalController
	}
	if config.Input.File == "" && config.Input.URI != "" && config.Input.Params == nil {
		return nil, fmt.Errorf("input.params must be set when reading from %s", config.Input.URI)
	}
	return rc, nil
}
