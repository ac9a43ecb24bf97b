package junction

import (
	"fmt"

	"git.fiblab.net/general/common/v2/parallel"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/nasch-settings/entity"
	"github.com/tsinghua-fib-lab/nasch-settings/entity/junction/trafficlight"
	"github.com/tsinghua-fib-lab/nasch-settings/entity/road"
)

// JunctionManager Junction管理器
// 功能：生成网格中全部路口，并同步产生交叉换路点、信号灯组和信号灯
type JunctionManager struct {
	junctions []*Junction

	groups []entity.TrafficLightGroup
	lights []entity.TrafficLight
}

// NewManager 创建Junction管理器实例
func NewManager() *JunctionManager {
	return &JunctionManager{
		junctions: make([]*Junction, 0),
		groups:    make([]entity.TrafficLightGroup, 0),
		lights:    make([]entity.TrafficLight, 0),
	}
}

// Init 初始化N×N网格的所有路口
// 功能：按行优先顺序遍历(r, c)，为每个路口生成信号灯组、一对信号灯，并在纵向道路上追加交叉换路点
// 参数：p-参数表，n-网格边长，roadManager-已初始化网格道路的Road管理器，timing-信号灯配时，transitionTime-信号灯组切换时间
// 返回：道路不存在时返回错误
func (m *JunctionManager) Init(
	p entity.ParameterSet,
	n int32,
	roadManager *road.RoadManager,
	timing trafficlight.Timing,
	transitionTime int32,
) error {
	// 路口按行优先并行生成，ID即下标
	m.junctions = parallel.GoMap(lo.Range(int(n)*int(n)), func(k int) *Junction {
		return newJunction(int32(k)/n, int32(k)%n, n, p.RoadSize)
	})
	if cells := lo.Uniq(lo.Map(lo.Range(int(n)), func(k int, _ int) int32 {
		return CellIndex(int32(k), n, p.RoadSize)
	})); len(cells) < int(n) {
		log.Debugf("%d crossings share %d cells on each road of size %d", n, len(cells), p.RoadSize)
	}

	// 交叉换路点按行追加到纵向道路，保持串行
	m.groups = make([]entity.TrafficLightGroup, 0, len(m.junctions))
	m.lights = make([]entity.TrafficLight, 0, 2*len(m.junctions))
	for _, j := range m.junctions {
		if err := roadManager.AddSharedSection(j.verticalRoadID, j.sharedSection(p.ProbChange)); err != nil {
			return fmt.Errorf("%v: %w", j, err)
		}
		m.groups = append(m.groups, j.group(transitionTime))
		pair := j.lights(timing)
		m.lights = append(m.lights, pair[:]...)
	}
	return nil
}

// Get 根据ID获取Junction实例，如果不存在则panic
func (m *JunctionManager) Get(id int32) *Junction {
	if j, err := m.GetOrError(id); err != nil {
		log.Panicf("%v", err)
		return nil
	} else {
		return j
	}
}

// GetOrError 根据ID获取Junction实例（带错误处理）
// 说明：ID按行优先连续分配，直接作为下标
func (m *JunctionManager) GetOrError(id int32) (*Junction, error) {
	if id < 0 || int(id) >= len(m.junctions) {
		return nil, fmt.Errorf("no id %d in junction data", id)
	}
	return m.junctions[id], nil
}

// Groups 按groupID顺序返回信号灯组
func (m *JunctionManager) Groups() []entity.TrafficLightGroup {
	return m.groups
}

// Lights 按groupID顺序返回信号灯，每组先纵向后横向
func (m *JunctionManager) Lights() []entity.TrafficLight {
	return m.lights
}
