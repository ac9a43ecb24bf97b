package topology

import (
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/nasch-settings/entity"
)

// GroupMatrix 将信号灯组按numberOfColumns切分为矩阵
// 返回：第r行第c列为路口(r, c)的信号灯组；单路段时为空
func GroupMatrix(t entity.Topology) [][]entity.TrafficLightGroup {
	if len(t.TrafficLightGroups) == 0 || t.NumberOfColumns < 1 {
		return [][]entity.TrafficLightGroup{}
	}
	return lo.Chunk(t.TrafficLightGroups, int(t.NumberOfColumns))
}
