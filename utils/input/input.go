package input

import (
	"context"
	"fmt"

	"github.com/tsinghua-fib-lab/nasch-settings/utils/config"
)

// Source 参数表来源
type Source interface {
	// 来源名称，用于日志与错误信息
	Name() string
	// 按顺序读取全部行
	Load(ctx context.Context) ([]Row, error)
}

// NewSource 根据配置选择参数表来源
// 说明：CSV文件优先于MongoDB
func NewSource(c config.Input) (Source, error) {
	if c.File != "" {
		return NewCSVSource(c.File), nil
	}
	if c.URI != "" && c.Params != nil {
		return NewMongoSource(c.URI, *c.Params), nil
	}
	return nil, fmt.Errorf("no parameter input: set input.file (or -input) or input.uri with input.params")
}
