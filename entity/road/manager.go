package road

import (
	"fmt"

	"git.fiblab.net/general/common/v2/parallel"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/nasch-settings/entity"
)

// RoadManager Road管理器
// 功能：在一次构建过程中持有全部道路，按ID追加交叉换路点
// 说明：构建结束后通过Roads取出结果，之后不再修改
type RoadManager struct {
	data  map[int32]int // 道路ID->roads下标
	roads []entity.Road
}

// NewManager 创建Road管理器实例
func NewManager() *RoadManager {
	return &RoadManager{
		data:  make(map[int32]int),
		roads: make([]entity.Road, 0),
	}
}

// InitSingle 初始化单路段（gridSize为0）
// 功能：生成唯一一条ID为0的道路，无交叉点
func (m *RoadManager) InitSingle(p entity.ParameterSet) {
	m.init([]entity.Road{newRoad(0, p)})
}

// InitGrid 初始化N×N网格道路
// 功能：先生成N条纵向道路（ID 0..N-1），再生成N条横向道路（ID N..2N-1）
// 参数：p-参数表，n-网格边长
// 说明：并行生成，结果按ID顺序排列
func (m *RoadManager) InitGrid(p entity.ParameterSet, n int32) {
	m.init(parallel.GoMap(lo.Range(2*int(n)), func(i int) entity.Road {
		k := int32(i)
		if k < n {
			return newRoad(VerticalID(k, n), p)
		}
		return newRoad(HorizontalID(k-n, n), p)
	}))
}

func (m *RoadManager) init(roads []entity.Road) {
	m.roads = roads
	m.data = lo.SliceToMap(lo.Range(len(roads)), func(i int) (int32, int) {
		return roads[i].ID, i
	})
}

// Get 根据ID获取道路，如果不存在则panic
func (m *RoadManager) Get(id int32) *entity.Road {
	if road, err := m.GetOrError(id); err != nil {
		log.Panicf("%v", err)
		return nil
	} else {
		return road
	}
}

// GetOrError 根据ID获取道路（带错误处理）
func (m *RoadManager) GetOrError(id int32) (*entity.Road, error) {
	if i, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in road data", id)
	} else {
		return &m.roads[i], nil
	}
}

// AddSharedSection 在道路上追加一个交叉换路点
func (m *RoadManager) AddSharedSection(id int32, s entity.SharedSection) error {
	road, err := m.GetOrError(id)
	if err != nil {
		return err
	}
	road.SharedSections = append(road.SharedSections, s)
	return nil
}

// Roads 按ID顺序返回全部道路
func (m *RoadManager) Roads() []entity.Road {
	return m.roads
}
