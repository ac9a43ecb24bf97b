package task

import (
	"fmt"

	"github.com/tsinghua-fib-lab/nasch-settings/topology"
	"github.com/tsinghua-fib-lab/nasch-settings/utils/output"
)

// CheckFiles 检查已有路网配置文件
// 功能：逐个读取文件并检查结构性质，输出每一项违反
// 参数：paths-配置文件路径
// 返回：读取失败或存在违反项时返回错误
func CheckFiles(paths []string) error {
	bad := 0
	for _, path := range paths {
		doc, err := output.ReadFile(path)
		if err != nil {
			return err
		}
		errs := topology.Check(doc.Simulation)
		for _, e := range errs {
			log.Warnf("%s: %v", path, e)
		}
		if len(errs) > 0 {
			bad++
			continue
		}
		t := doc.Simulation
		log.Infof("%s: ok (%d roads, %d groups in %d columns, %d lights)",
			path, len(t.Roads), len(t.TrafficLightGroups), t.NumberOfColumns, len(t.TrafficLights))
		for r, row := range topology.GroupMatrix(t) {
			log.Debugf("%s: group row %d: %v", path, r, row)
		}
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d topology files failed the check", bad, len(paths))
	}
	return nil
}
