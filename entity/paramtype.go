package entity

import (
	"math"
	"strings"
)

// MaxGridSize 网格边长上限，保证信号灯数量2*N*N不超出int32
const MaxGridSize = 32767

// ControllerMode 信号灯控制方式
type ControllerMode int

const (
	ControllerFixedCycle ControllerMode = iota // 固定周期信控，使用配置的timeOpen/timeClosed
	ControllerExternal                         // 外部控制器信控，timeOpen/timeClosed为-1
)

func (m ControllerMode) String() string {
	switch m {
	case ControllerExternal:
		return "external"
	default:
		return "fixed-cycle"
	}
}

// ClassifyController 按控制器名称判断信控方式
// 功能：将controllerType与外部控制器名称做大小写无关的比较
// 参数：controllerType-参数表中的控制器名称，externalName-外部控制器名称
// 返回：信控方式
func ClassifyController(controllerType, externalName string) ControllerMode {
	if strings.EqualFold(strings.TrimSpace(controllerType), externalName) {
		return ControllerExternal
	}
	return ControllerFixedCycle
}

// ParameterSet 一组实验参数（参数表中的一行）
// 功能：描述生成一个路网配置文件所需的全部参数
// 说明：由utils/input解析并校验，之后只读
type ParameterSet struct {
	OutputFilename   string  // 输出文件名
	Episodes         int32   // 仿真轮数
	QueueSize        int32   // 队列长度
	ControllerType   string  // 控制器名称（原样写入输出）
	CycleTime        int32   // 信控周期
	VMax             int32   // 最大车速（元胞/步）
	BrakeProbability float64 // 随机减速概率
	GridSize         int32   // 网格边长N，0表示单路段
	RoadSize         int32   // 每条道路的元胞数
	IsPeriodic       bool    // 是否为周期边界
	AlphaWeight      float64 // 开放边界流入率
	Beta             float64 // 开放边界流出率
	Density          float64 // 初始密度
	ProbChange       float64 // 交叉点换路概率
	TimeOpen         float64 // 固定周期绿灯时长
	TimeClosed       float64 // 固定周期红灯时长
}

// Validate 校验参数取值范围
// 功能：检查数值字段的语义合法性
// 返回：第一个不合法字段对应的InvalidParameterError，合法则返回nil
func (p ParameterSet) Validate() error {
	if p.OutputFilename == "" {
		return &InvalidParameterError{Field: "outputFilename", Value: p.OutputFilename, Reason: "must not be empty"}
	}
	if strings.TrimSpace(p.ControllerType) == "" {
		return &InvalidParameterError{Field: "controllerType", Value: p.ControllerType, Reason: "must not be empty"}
	}
	nonNegative := []struct {
		field string
		value int32
	}{
		{"episodes", p.Episodes},
		{"queueSize", p.QueueSize},
		{"vMax", p.VMax},
		{"gridSize", p.GridSize},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return &InvalidParameterError{Field: f.field, Value: f.value, Reason: "must be >= 0"}
		}
	}
	if p.GridSize > MaxGridSize {
		return &InvalidParameterError{Field: "gridSize", Value: p.GridSize, Reason: "must be <= 32767"}
	}
	if p.RoadSize < 1 {
		return &InvalidParameterError{Field: "roadSize", Value: p.RoadSize, Reason: "must be >= 1"}
	}
	finite := []struct {
		field string
		value float64
	}{
		{"alphaWeight", p.AlphaWeight},
		{"beta", p.Beta},
		{"timeOpen", p.TimeOpen},
		{"timeClosed", p.TimeClosed},
	}
	for _, f := range finite {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &InvalidParameterError{Field: f.field, Value: f.value, Reason: "must be a finite number"}
		}
	}
	probabilities := []struct {
		field string
		value float64
	}{
		{"brakeProbability", p.BrakeProbability},
		{"density", p.Density},
		{"probChange", p.ProbChange},
	}
	for _, f := range probabilities {
		// NaN也会落入该分支
		if !(f.value >= 0 && f.value <= 1) {
			return &InvalidParameterError{Field: f.field, Value: f.value, Reason: "must be in [0, 1]"}
		}
	}
	return nil
}
