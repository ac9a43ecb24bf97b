package entity

import (
	"encoding/json"
	"fmt"
)

// SharedSection 两条道路的交叉换路点
// 序列化为定长数组 [connectedRoadID, ownIndex, connectedIndex, probOwnToConnected, probConnectedToOwn]
type SharedSection struct {
	ConnectedRoadID    int32   // 相连道路ID
	OwnIndex           int32   // 本道路上的元胞位置
	ConnectedIndex     int32   // 相连道路上的元胞位置
	ProbOwnToConnected float64 // 本道路->相连道路换路概率
	ProbConnectedToOwn float64 // 相连道路->本道路换路概率
}

func (s SharedSection) MarshalJSON() ([]byte, error) {
	return json.Marshal([5]any{
		s.ConnectedRoadID,
		s.OwnIndex,
		s.ConnectedIndex,
		s.ProbOwnToConnected,
		s.ProbConnectedToOwn,
	})
}

func (s *SharedSection) UnmarshalJSON(data []byte) error {
	var raw []json.Number
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedSharedSection, err)
	}
	if len(raw) != 5 {
		return fmt.Errorf("%w: got %d elements", ErrMalformedSharedSection, len(raw))
	}
	ints := make([]int32, 3)
	for i := range ints {
		v, err := raw[i].Int64()
		if err != nil {
			return fmt.Errorf("%w: element %d: %v", ErrMalformedSharedSection, i, err)
		}
		ints[i] = int32(v)
	}
	floats := make([]float64, 2)
	for i := range floats {
		v, err := raw[3+i].Float64()
		if err != nil {
			return fmt.Errorf("%w: element %d: %v", ErrMalformedSharedSection, 3+i, err)
		}
		floats[i] = v
	}
	*s = SharedSection{
		ConnectedRoadID:    ints[0],
		OwnIndex:           ints[1],
		ConnectedIndex:     ints[2],
		ProbOwnToConnected: floats[0],
		ProbConnectedToOwn: floats[1],
	}
	return nil
}

// Road 元胞自动机道路
type Road struct {
	ID               int32           `json:"roadID"`
	Size             int32           `json:"roadSize"`
	IsPeriodic       bool            `json:"isPeriodic"`
	MaxSpeed         int32           `json:"maxSpeed"`
	BrakeProbability float64         `json:"brakeProbability"`
	AlphaWeight      float64         `json:"alphaWeight"`
	Beta             float64         `json:"beta"`
	Density          float64         `json:"density"`
	SharedSections   []SharedSection `json:"sharedSections"`
}

// TrafficLightGroup 路口信号灯组，每个路口一个
type TrafficLightGroup struct {
	ID             int32 `json:"groupID"`
	TransitionTime int32 `json:"transitionTime"`
}

// TrafficLight 道路上的信号灯
type TrafficLight struct {
	RoadID          int32   `json:"roadID"`
	Position        int32   `json:"position"`
	ExternalControl bool    `json:"externalControl"`
	TimeOpen        float64 `json:"timeOpen"`   // 外部控制时为-1
	TimeClosed      float64 `json:"timeClosed"` // 外部控制时为-1
	Paired          bool    `json:"paired"`
	GroupID         int32   `json:"groupID"`
}

// Topology 仿真器使用的完整路网描述
type Topology struct {
	Episodes           int32               `json:"episodes"`
	QueueSize          int32               `json:"queueSize"`
	ControllerType     string              `json:"controllerType"`
	CycleTime          int32               `json:"cycleTime"`
	VMax               int32               `json:"vMax"`
	BrakeProbability   float64             `json:"brakeProbability"`
	NumberOfColumns    int32               `json:"numberOfColumns"`
	Roads              []Road              `json:"roads"`
	TrafficLightGroups []TrafficLightGroup `json:"trafficLightGroups"`
	TrafficLights      []TrafficLight      `json:"trafficLights"`
}

// Document 配置文件根对象
type Document struct {
	Simulation Topology `json:"simulation"`
}
