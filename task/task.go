package task

import (
	"context"
	"fmt"

	"github.com/tsinghua-fib-lab/nasch-settings/entity"
	"github.com/tsinghua-fib-lab/nasch-settings/topology"
	"github.com/tsinghua-fib-lab/nasch-settings/utils/config"
	"github.com/tsinghua-fib-lab/nasch-settings/utils/input"
	"github.com/tsinghua-fib-lab/nasch-settings/utils/output"
)

// Context 一次批量生成任务的上下文
// 功能：持有参数表来源、输出写入器和运行时配置，按顺序处理每一行
type Context struct {
	// 任务名
	job string
	// 运行时配置
	runtimeConfig *config.RuntimeConfig
	// 参数表来源
	source input.Source
	// 配置文件写入器
	writer output.Writer
	// 已生成的文件路径
	generated []string
}

// NewContext 创建新的批量生成任务上下文
// 参数：
//   - job: 任务名称，仅用于日志
//   - rc: 运行时配置
//   - source: 参数表来源
//   - writer: 配置文件写入器
func NewContext(job string, rc *config.RuntimeConfig, source input.Source, writer output.Writer) *Context {
	return &Context{
		job:           job,
		runtimeConfig: rc,
		source:        source,
		writer:        writer,
		generated:     make([]string, 0),
	}
}

// Run 执行批量生成
// 功能：读取全部参数行，逐行解析、构建路网并写出
// 返回：第一个错误（带行标识），之后的行不再处理，已写出的文件保留
func (ctx *Context) Run(c context.Context) error {
	rows, err := ctx.source.Load(c)
	if err != nil {
		return fmt.Errorf("load %s: %w", ctx.source.Name(), err)
	}
	log.Infof("[%s] %d parameter sets from %s", ctx.job, len(rows), ctx.source.Name())

	for _, row := range rows {
		if err := c.Err(); err != nil {
			return err
		}
		path, err := ctx.runRow(row)
		if err != nil {
			log.Errorf("abort after %d of %d rows", len(ctx.generated), len(rows))
			return fmt.Errorf("row %s: %w", row.Label(), err)
		}
		ctx.generated = append(ctx.generated, path)
		log.Infof("Generated %s.", path)
	}
	return nil
}

func (ctx *Context) runRow(row input.Row) (string, error) {
	p, err := input.ParseParameterSet(row)
	if err != nil {
		return "", err
	}
	t, err := topology.Build(p, ctx.runtimeConfig.Topology)
	if err != nil {
		return "", err
	}
	log.Debugf("%s: %d roads, %d groups, %d lights", p.OutputFilename, len(t.Roads), len(t.TrafficLightGroups), len(t.TrafficLights))
	return ctx.writer.Write(p.OutputFilename, entity.Document{Simulation: t})
}

// Generated 已生成的文件路径，按处理顺序
func (ctx *Context) Generated() []string {
	return ctx.generated
}
