package junction

import (
	"fmt"
	"math"

	"github.com/tsinghua-fib-lab/nasch-settings/entity"
	"github.com/tsinghua-fib-lab/nasch-settings/entity/junction/trafficlight"
	"github.com/tsinghua-fib-lab/nasch-settings/entity/road"
)

// CellIndex 交叉点在道路上的元胞位置
// 功能：将道路等分为n段，取第k段中点对应的元胞
// 参数：k-段序号（0..n-1），n-段数，roadSize-道路元胞数
// 返回：round((k+0.5)/n*(roadSize-1))
// 说明：采用四舍六入五成双；roadSize较小时不同的k可能得到同一元胞，此时保持重叠不做去重
func CellIndex(k, n, roadSize int32) int32 {
	return int32(math.RoundToEven((float64(k) + 0.5) / float64(n) * float64(roadSize-1)))
}

// Junction 网格中的一个路口
// 功能：记录第r行横向道路与第c列纵向道路的交叉位置
type Junction struct {
	id int32 // 信号灯组ID，r*n+c

	row, col         int32
	verticalRoadID   int32
	horizontalRoadID int32
	verticalIndex    int32 // 纵向道路上的元胞位置，由行号决定
	horizontalIndex  int32 // 横向道路上的元胞位置，由列号决定
}

// newJunction 创建(r, c)处的路口
func newJunction(r, c, n, roadSize int32) *Junction {
	return &Junction{
		id:               r*n + c,
		row:              r,
		col:              c,
		verticalRoadID:   road.VerticalID(c, n),
		horizontalRoadID: road.HorizontalID(r, n),
		verticalIndex:    CellIndex(r, n, roadSize),
		horizontalIndex:  CellIndex(c, n, roadSize),
	}
}

// sharedSection 挂在纵向道路上、指向横向道路的交叉换路点，双向概率相同
func (j *Junction) sharedSection(probChange float64) entity.SharedSection {
	return entity.SharedSection{
		ConnectedRoadID:    j.horizontalRoadID,
		OwnIndex:           j.verticalIndex,
		ConnectedIndex:     j.horizontalIndex,
		ProbOwnToConnected: probChange,
		ProbConnectedToOwn: probChange,
	}
}

func (j *Junction) group(transitionTime int32) entity.TrafficLightGroup {
	return entity.TrafficLightGroup{ID: j.id, TransitionTime: transitionTime}
}

func (j *Junction) lights(timing trafficlight.Timing) [2]entity.TrafficLight {
	return trafficlight.NewPair(
		j.id,
		trafficlight.Place{RoadID: j.verticalRoadID, Position: j.verticalIndex},
		trafficlight.Place{RoadID: j.horizontalRoadID, Position: j.horizontalIndex},
		timing,
	)
}

// ID 获取路口（信号灯组）ID
// 返回：路口ID，如果路口为nil则返回-1
func (j *Junction) ID() int32 {
	if j == nil {
		return -1
	}
	return j.id
}

// Cell 路口在行列中的位置
func (j *Junction) Cell() (row, col int32) {
	return j.row, j.col
}

// Indices 路口在纵向道路和横向道路上的元胞位置
func (j *Junction) Indices() (vertical, horizontal int32) {
	return j.verticalIndex, j.horizontalIndex
}

func (j *Junction) String() string {
	return fmt.Sprintf("Junction %d (r=%d, c=%d)", j.id, j.row, j.col)
}
