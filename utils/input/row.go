package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tsinghua-fib-lab/nasch-settings/entity"
)

// 参数表必需的列名
const (
	FieldOutputFilename   = "outputFilename"
	FieldEpisodes         = "episodes"
	FieldQueueSize        = "queueSize"
	FieldControllerType   = "controllerType"
	FieldCycleTime        = "cycleTime"
	FieldVMax             = "vMax"
	FieldBrakeProbability = "brakeProbability"
	FieldGridSize         = "gridSize"
	FieldRoadSize         = "roadSize"
	FieldIsPeriodic       = "isPeriodic"
	FieldAlphaWeight      = "alphaWeight"
	FieldBeta             = "beta"
	FieldDensity          = "density"
	FieldProbChange       = "probChange"
	FieldTimeOpen         = "timeOpen"
	FieldTimeClosed       = "timeClosed"
)

// RequiredFields 全部必需列，按参数表约定的顺序
var RequiredFields = []string{
	FieldOutputFilename, FieldEpisodes, FieldQueueSize, FieldControllerType,
	FieldCycleTime, FieldVMax, FieldBrakeProbability, FieldGridSize, FieldRoadSize,
	FieldIsPeriodic, FieldAlphaWeight, FieldBeta, FieldDensity, FieldProbChange,
	FieldTimeOpen, FieldTimeClosed,
}

// Row 参数表中的一行，值均为原始字符串
type Row struct {
	Source string            // 来源（文件名或 db.col）
	Line   int               // 行号（CSV）或文档序号（MongoDB），从1开始
	Fields map[string]string // 列名->原始值
}

// Label 用于错误信息的行标识
func (r Row) Label() string {
	return fmt.Sprintf("%s:%d", r.Source, r.Line)
}

// rowParser 逐字段解析，记录第一个错误
type rowParser struct {
	row Row
	err error
}

func (p *rowParser) raw(field string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	v, ok := p.row.Fields[field]
	if !ok {
		p.err = &entity.MissingFieldError{Row: p.row.Label(), Field: field}
		return "", false
	}
	return strings.TrimSpace(v), true
}

func (p *rowParser) str(field string) string {
	v, _ := p.raw(field)
	return v
}

func (p *rowParser) integer(field string) int32 {
	v, ok := p.raw(field)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		p.err = &entity.TypeConversionError{Row: p.row.Label(), Field: field, Value: v, Kind: "int", Err: err}
		return 0
	}
	return int32(n)
}

func (p *rowParser) float(field string) float64 {
	v, ok := p.raw(field)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.err = &entity.TypeConversionError{Row: p.row.Label(), Field: field, Value: v, Kind: "float", Err: err}
		return 0
	}
	return f
}

func (p *rowParser) boolean(field string) bool {
	v, ok := p.raw(field)
	if !ok {
		return false
	}
	b, err := ParseBool(v)
	if err != nil {
		p.err = &entity.InvalidParameterError{Field: field, Value: v, Reason: err.Error()}
		return false
	}
	return b
}

// ParseBool 解析参数表中的布尔值
// 说明：true/1/yes 为真，false/0/no 为假（大小写无关），其他取值报错
func ParseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expect one of true/false/1/0/yes/no")
	}
}

// ParseParameterSet 将一行解析为参数表并校验
// 返回：MissingFieldError、TypeConversionError或InvalidParameterError
func ParseParameterSet(row Row) (entity.ParameterSet, error) {
	p := &rowParser{row: row}
	ps := entity.ParameterSet{
		OutputFilename:   p.str(FieldOutputFilename),
		Episodes:         p.integer(FieldEpisodes),
		QueueSize:        p.integer(FieldQueueSize),
		ControllerType:   p.str(FieldControllerType),
		CycleTime:        p.integer(FieldCycleTime),
		VMax:             p.integer(FieldVMax),
		BrakeProbability: p.float(FieldBrakeProbability),
		GridSize:         p.integer(FieldGridSize),
		RoadSize:         p.integer(FieldRoadSize),
		IsPeriodic:       p.boolean(FieldIsPeriodic),
		AlphaWeight:      p.float(FieldAlphaWeight),
		Beta:             p.float(FieldBeta),
		Density:          p.float(FieldDensity),
		ProbChange:       p.float(FieldProbChange),
		TimeOpen:         p.float(FieldTimeOpen),
		TimeClosed:       p.float(FieldTimeClosed),
	}
	if p.err != nil {
		return entity.ParameterSet{}, p.err
	}
	if err := ps.Validate(); err != nil {
		return entity.ParameterSet{}, err
	}
	log.Debugf("%s: %+v", row.Label(), ps)
	return ps, nil
}
