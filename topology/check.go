package topology

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/nasch-settings/entity"
	"github.com/tsinghua-fib-lab/nasch-settings/entity/junction/trafficlight"
	"github.com/tsinghua-fib-lab/nasch-settings/entity/road"
	"github.com/tsinghua-fib-lab/nasch-settings/utils"
	"golang.org/x/exp/slices"
)

var ErrViolation = errors.New("topology violation")

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrViolation, fmt.Sprintf(format, args...))
}

// Check 检查路网是否满足生成器保证的结构性质
// 功能：用于检查已有配置文件（可能被手工修改过）在交给仿真器前是否仍然自洽
// 参数：t-待检查的路网
// 返回：全部违反项，为空表示通过
func Check(t entity.Topology) []error {
	errs := make([]error, 0)
	errs = append(errs, checkRoads(t)...)
	if len(t.TrafficLightGroups) == 0 && len(t.Roads) == 1 {
		return append(errs, checkSingle(t)...)
	}
	return append(errs, checkGrid(t)...)
}

// checkRoads 道路ID与下标一致、周期边界无流入流出、引用的道路存在
func checkRoads(t entity.Topology) []error {
	errs := make([]error, 0)
	roadsByID := lo.SliceToMap(t.Roads, func(r entity.Road) (int32, entity.Road) {
		return r.ID, r
	})
	referenced := make([]int32, 0)
	for i, r := range t.Roads {
		if r.ID != int32(i) {
			errs = append(errs, violation("road at index %d has roadID %d", i, r.ID))
		}
		if r.IsPeriodic && (r.AlphaWeight != 0 || r.Beta != 0) {
			errs = append(errs, violation("periodic road %d has alphaWeight=%v beta=%v", r.ID, r.AlphaWeight, r.Beta))
		}
		for _, s := range r.SharedSections {
			referenced = append(referenced, s.ConnectedRoadID)
			if s.ProbOwnToConnected != s.ProbConnectedToOwn {
				errs = append(errs, violation("road %d shared section to %d has asymmetric probabilities", r.ID, s.ConnectedRoadID))
			}
		}
	}
	for _, l := range t.TrafficLights {
		referenced = append(referenced, l.RoadID)
		if r, ok := roadsByID[l.RoadID]; ok && (l.Position < 0 || l.Position >= r.Size) {
			errs = append(errs, violation("light of group %d at position %d outside road %d", l.GroupID, l.Position, r.ID))
		}
		if l.ExternalControl && (l.TimeOpen != trafficlight.ExternalSentinel || l.TimeClosed != trafficlight.ExternalSentinel) {
			errs = append(errs, violation("externally controlled light of group %d has timeOpen=%v timeClosed=%v", l.GroupID, l.TimeOpen, l.TimeClosed))
		}
	}
	_, missing := utils.Find(roadsByID, referenced)
	for _, id := range missing {
		errs = append(errs, violation("reference to unknown road %d", id))
	}
	return errs
}

func checkSingle(t entity.Topology) []error {
	errs := make([]error, 0)
	if t.Roads[0].ID != 0 {
		errs = append(errs, violation("single road must have roadID 0, got %d", t.Roads[0].ID))
	}
	if len(t.Roads[0].SharedSections) != 0 {
		errs = append(errs, violation("single road has %d shared sections", len(t.Roads[0].SharedSections)))
	}
	if len(t.TrafficLights) != 0 {
		errs = append(errs, violation("single road has %d traffic lights", len(t.TrafficLights)))
	}
	if t.NumberOfColumns != 1 {
		errs = append(errs, violation("single road must have numberOfColumns 1, got %d", t.NumberOfColumns))
	}
	return errs
}

func checkGrid(t entity.Topology) []error {
	n := t.NumberOfColumns
	if n < 1 {
		return []error{violation("grid must have numberOfColumns >= 1, got %d", n)}
	}
	errs := make([]error, 0)
	if len(t.Roads) != int(2*n) {
		errs = append(errs, violation("expected %d roads for a %dx%d grid, got %d", 2*n, n, n, len(t.Roads)))
	}
	if len(t.TrafficLightGroups) != int(n*n) {
		errs = append(errs, violation("expected %d traffic light groups, got %d", n*n, len(t.TrafficLightGroups)))
	}
	if len(t.TrafficLights) != int(2*n*n) {
		errs = append(errs, violation("expected %d traffic lights, got %d", 2*n*n, len(t.TrafficLights)))
	}

	groupIDs := lo.Map(t.TrafficLightGroups, func(g entity.TrafficLightGroup, _ int) int32 {
		return g.ID
	})
	slices.Sort(groupIDs)
	for i, id := range groupIDs {
		if id != int32(i) {
			errs = append(errs, violation("groupIDs are not contiguous from 0: position %d holds %d", i, id))
			break
		}
	}

	lightsByGroup := lo.GroupBy(t.TrafficLights, func(l entity.TrafficLight) int32 {
		return l.GroupID
	})
	for _, id := range groupIDs {
		lights := lightsByGroup[id]
		if len(lights) != 2 {
			errs = append(errs, violation("group %d has %d lights, expected 2", id, len(lights)))
			continue
		}
		vertical := lo.CountBy(lights, func(l entity.TrafficLight) bool {
			return road.IsVertical(l.RoadID, n)
		})
		if vertical != 1 {
			errs = append(errs, violation("group %d must pair one vertical and one horizontal light, got %d vertical", id, vertical))
		}
		if !lights[0].Paired || !lights[1].Paired {
			errs = append(errs, violation("group %d has an unpaired light", id))
		}
	}
	orphans := lo.Filter(lo.Keys(lightsByGroup), func(id int32, _ int) bool {
		return !slices.Contains(groupIDs, id)
	})
	slices.Sort(orphans)
	for _, id := range orphans {
		errs = append(errs, violation("lights reference unknown group %d", id))
	}
	if modes := lo.Uniq(lo.Map(t.TrafficLights, func(l entity.TrafficLight, _ int) bool {
		return l.ExternalControl
	})); len(modes) > 1 {
		errs = append(errs, violation("lights mix external and fixed-cycle control"))
	}

	for _, r := range t.Roads {
		if !road.IsVertical(r.ID, n) {
			if len(r.SharedSections) != 0 {
				errs = append(errs, violation("horizontal road %d carries %d shared sections", r.ID, len(r.SharedSections)))
			}
			continue
		}
		if len(r.SharedSections) != int(n) {
			errs = append(errs, violation("vertical road %d has %d shared sections, expected %d", r.ID, len(r.SharedSections), n))
			continue
		}
		for row, s := range r.SharedSections {
			if want := road.HorizontalID(int32(row), n); s.ConnectedRoadID != want {
				errs = append(errs, violation("vertical road %d shared section %d points at road %d, expected %d", r.ID, row, s.ConnectedRoadID, want))
			}
		}
	}
	return errs
}
