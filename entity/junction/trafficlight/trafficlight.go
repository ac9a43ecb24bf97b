package trafficlight

import (
	"github.com/tsinghua-fib-lab/nasch-settings/entity"
)

// ExternalSentinel 外部控制时timeOpen/timeClosed的取值，表示由控制器决定
const ExternalSentinel = -1

// Timing 一次构建中所有信号灯共用的配时
// 功能：在构建开始时根据控制方式确定一次，之后每个信号灯直接复用
type Timing struct {
	External   bool
	TimeOpen   float64
	TimeClosed float64
}

// NewTiming 根据控制方式生成信号灯配时
// 参数：mode-信控方式，timeOpen/timeClosed-固定周期配时
// 返回：配时，外部控制时忽略固定周期配时
func NewTiming(mode entity.ControllerMode, timeOpen, timeClosed float64) Timing {
	if mode == entity.ControllerExternal {
		return Timing{External: true, TimeOpen: ExternalSentinel, TimeClosed: ExternalSentinel}
	}
	return Timing{TimeOpen: timeOpen, TimeClosed: timeClosed}
}

// Place 信号灯所在的道路与元胞位置
type Place struct {
	RoadID   int32
	Position int32
}

// NewPair 创建同组的一对信号灯
// 功能：为一个路口在纵向道路和横向道路上各放置一个信号灯，两者共享groupID
// 参数：groupID-信号灯组ID，vertical/horizontal-两个信号灯的位置，timing-配时
// 返回：[纵向信号灯, 横向信号灯]
func NewPair(groupID int32, vertical, horizontal Place, timing Timing) [2]entity.TrafficLight {
	return [2]entity.TrafficLight{
		newLight(groupID, vertical, timing),
		newLight(groupID, horizontal, timing),
	}
}

func newLight(groupID int32, place Place, timing Timing) entity.TrafficLight {
	return entity.TrafficLight{
		RoadID:          place.RoadID,
		Position:        place.Position,
		ExternalControl: timing.External,
		TimeOpen:        timing.TimeOpen,
		TimeClosed:      timing.TimeClosed,
		Paired:          true,
		GroupID:         groupID,
	}
}
