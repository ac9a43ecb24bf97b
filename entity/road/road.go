package road

import (
	"github.com/tsinghua-fib-lab/nasch-settings/entity"
)

// newRoad 创建一条道路
// 功能：根据参数表生成道路记录，sharedSections初始为空
// 参数：id-道路ID，p-参数表
// 返回：道路记录
// 说明：周期边界道路没有流入流出，alphaWeight与beta强制为0
func newRoad(id int32, p entity.ParameterSet) entity.Road {
	r := entity.Road{
		ID:               id,
		Size:             p.RoadSize,
		IsPeriodic:       p.IsPeriodic,
		MaxSpeed:         p.VMax,
		BrakeProbability: p.BrakeProbability,
		AlphaWeight:      p.AlphaWeight,
		Beta:             p.Beta,
		Density:          p.Density,
		SharedSections:   make([]entity.SharedSection, 0),
	}
	if r.IsPeriodic {
		r.AlphaWeight = 0
		r.Beta = 0
	}
	return r
}

// VerticalID 第c列纵向道路的ID，占用[0, n)
func VerticalID(c, n int32) int32 {
	return c
}

// HorizontalID 第r行横向道路的ID，占用[n, 2n)
func HorizontalID(r, n int32) int32 {
	return n + r
}

// IsVertical 判断道路ID是否属于纵向道路
func IsVertical(id, n int32) bool {
	return id >= 0 && id < n
}
