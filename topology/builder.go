// Package topology 由实验参数生成元胞自动机仿真器所需的路网描述
//
// 网格模式下，纵向道路占用ID [0, N)，横向道路占用ID [N, 2N)；
// 第r行与第c列的路口编号为 r*N+c，每个路口对应一个信号灯组和一对信号灯。
package topology

import (
	"github.com/tsinghua-fib-lab/nasch-settings/entity"
	"github.com/tsinghua-fib-lab/nasch-settings/entity/junction"
	"github.com/tsinghua-fib-lab/nasch-settings/entity/junction/trafficlight"
	"github.com/tsinghua-fib-lab/nasch-settings/entity/road"
)

const (
	DefaultTransitionTime     = 5          // 信号灯组默认切换时间
	DefaultExternalController = "external" // 外部控制器名称（大小写无关）
)

// Options 构建过程中不来自参数表的全局设置
type Options struct {
	TransitionTime     int32  // 写入每个TrafficLightGroup的transitionTime
	ExternalController string // controllerType等于该值（大小写无关）时信号灯由外部控制
}

// DefaultOptions 返回默认构建设置
func DefaultOptions() Options {
	return Options{
		TransitionTime:     DefaultTransitionTime,
		ExternalController: DefaultExternalController,
	}
}

// Build 根据一组参数生成路网
// 功能：gridSize为0时生成单路段，否则生成N×N网格的道路、交叉换路点、信号灯组和信号灯
// 参数：p-参数表，opts-构建设置
// 返回：完整的路网，参数不合法时返回InvalidParameterError
// 说明：纯函数，相同输入总是得到相同输出
func Build(p entity.ParameterSet, opts Options) (entity.Topology, error) {
	n := p.GridSize
	if n < 0 {
		return entity.Topology{}, &entity.InvalidParameterError{Field: "gridSize", Value: n, Reason: "must be >= 0"}
	}
	if n > entity.MaxGridSize {
		return entity.Topology{}, &entity.InvalidParameterError{Field: "gridSize", Value: n, Reason: "must be <= 32767"}
	}
	if n > 0 && p.RoadSize < 1 {
		return entity.Topology{}, &entity.InvalidParameterError{Field: "roadSize", Value: p.RoadSize, Reason: "must be >= 1 for a grid"}
	}

	t := entity.Topology{
		Episodes:           p.Episodes,
		QueueSize:          p.QueueSize,
		ControllerType:     p.ControllerType,
		CycleTime:          p.CycleTime,
		VMax:               p.VMax,
		BrakeProbability:   p.BrakeProbability,
		NumberOfColumns:    1,
		TrafficLightGroups: make([]entity.TrafficLightGroup, 0),
		TrafficLights:      make([]entity.TrafficLight, 0),
	}

	roadManager := road.NewManager()
	if n == 0 {
		// 单路段：无路口、无信号灯，用于标定基本图
		roadManager.InitSingle(p)
		t.Roads = roadManager.Roads()
		return t, nil
	}

	roadManager.InitGrid(p, n)
	mode := entity.ClassifyController(p.ControllerType, opts.ExternalController)
	timing := trafficlight.NewTiming(mode, p.TimeOpen, p.TimeClosed)
	junctionManager := junction.NewManager()
	if err := junctionManager.Init(p, n, roadManager, timing, opts.TransitionTime); err != nil {
		return entity.Topology{}, err
	}

	t.NumberOfColumns = n
	t.Roads = roadManager.Roads()
	t.TrafficLightGroups = junctionManager.Groups()
	t.TrafficLights = junctionManager.Lights()
	return t, nil
}
