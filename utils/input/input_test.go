package input_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/nasch-settings/entity"
	"github.com/tsinghua-fib-lab/nasch-settings/utils/config"
	"github.com/tsinghua-fib-lab/nasch-settings/utils/input"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const header = "outputFilename,episodes,queueSize,controllerType,cycleTime,vMax,brakeProbability,gridSize,roadSize,isPeriodic,alphaWeight,beta,density,probChange,timeOpen,timeClosed\n"

func TestReadCSV(t *testing.T) {
	data := "\ufeff" + header +
		"grid.json,100,10,External,60,5,0.1,2,10,TRUE,0.3,0.4,0.2,0.5,30,20\n" +
		"single.json,50,5,Sync,60,5,0.2,0,100,no,0.3,0.4,0.2,0,30,20\n"
	rows, err := input.ReadCSV("params.csv", strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "params.csv:2", rows[0].Label())
	assert.Equal(t, "params.csv:3", rows[1].Label())

	p, err := input.ParseParameterSet(rows[0])
	require.NoError(t, err)
	assert.Equal(t, entity.ParameterSet{
		OutputFilename:   "grid.json",
		Episodes:         100,
		QueueSize:        10,
		ControllerType:   "External",
		CycleTime:        60,
		VMax:             5,
		BrakeProbability: 0.1,
		GridSize:         2,
		RoadSize:         10,
		IsPeriodic:       true,
		AlphaWeight:      0.3,
		Beta:             0.4,
		Density:          0.2,
		ProbChange:       0.5,
		TimeOpen:         30,
		TimeClosed:       20,
	}, p)

	p, err = input.ParseParameterSet(rows[1])
	require.NoError(t, err)
	assert.False(t, p.IsPeriodic)
	assert.Equal(t, int32(0), p.GridSize)
}

func TestReadCSVFieldCount(t *testing.T) {
	_, err := input.ReadCSV("bad.csv", strings.NewReader(header+"a.json,1,2\n"))
	assert.Error(t, err)
}

func TestReadCSVEmpty(t *testing.T) {
	rows, err := input.ReadCSV("empty.csv", strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func validRow() input.Row {
	fields := map[string]string{
		"outputFilename": "a.json", "episodes": "1", "queueSize": "1", "controllerType": "Sync",
		"cycleTime": "10", "vMax": "5", "brakeProbability": "0.1", "gridSize": "1", "roadSize": "10",
		"isPeriodic": "1", "alphaWeight": "0.1", "beta": "0.1", "density": "0.1", "probChange": "0.1",
		"timeOpen": "5", "timeClosed": "5",
	}
	return input.Row{Source: "t.csv", Line: 4, Fields: fields}
}

func TestParseMissingField(t *testing.T) {
	row := validRow()
	delete(row.Fields, "probChange")
	_, err := input.ParseParameterSet(row)
	var missing *entity.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "probChange", missing.Field)
	assert.Equal(t, "t.csv:4", missing.Row)
}

func TestParseTypeConversion(t *testing.T) {
	row := validRow()
	row.Fields["roadSize"] = "ten"
	_, err := input.ParseParameterSet(row)
	var conv *entity.TypeConversionError
	require.ErrorAs(t, err, &conv)
	assert.Equal(t, "roadSize", conv.Field)
	assert.Equal(t, "int", conv.Kind)

	row = validRow()
	row.Fields["density"] = "0,5"
	_, err = input.ParseParameterSet(row)
	require.ErrorAs(t, err, &conv)
	assert.Equal(t, "float", conv.Kind)
}

func TestParseInvalid(t *testing.T) {
	row := validRow()
	row.Fields["isPeriodic"] = "maybe"
	_, err := input.ParseParameterSet(row)
	var invalid *entity.InvalidParameterError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "isPeriodic", invalid.Field)

	row = validRow()
	row.Fields["gridSize"] = "-3"
	_, err = input.ParseParameterSet(row)
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "gridSize", invalid.Field)
}

func TestParseBool(t *testing.T) {
	for _, v := range []string{"true", "TRUE", " 1 ", "Yes"} {
		b, err := input.ParseBool(v)
		require.NoError(t, err, v)
		assert.True(t, b, v)
	}
	for _, v := range []string{"false", "0", "NO"} {
		b, err := input.ParseBool(v)
		require.NoError(t, err, v)
		assert.False(t, b, v)
	}
	_, err := input.ParseBool("")
	assert.Error(t, err)
}

func TestDocumentRow(t *testing.T) {
	doc := bson.M{
		"_id":              primitive.NewObjectID(),
		"outputFilename":   "m.json",
		"episodes":         int32(3),
		"queueSize":        int64(2),
		"controllerType":   "external",
		"cycleTime":        int32(60),
		"vMax":             int32(5),
		"brakeProbability": 0.15,
		"gridSize":         int32(2),
		"roadSize":         int32(12),
		"isPeriodic":       true,
		"alphaWeight":      0.5,
		"beta":             0.5,
		"density":          0.25,
		"probChange":       1e-3,
		"timeOpen":         float64(30),
		"timeClosed":       float64(20),
	}
	row := input.DocumentRow("exp.runs", 1, doc)
	assert.NotContains(t, row.Fields, "_id")
	assert.Equal(t, "exp.runs:1", row.Label())

	p, err := input.ParseParameterSet(row)
	require.NoError(t, err)
	assert.Equal(t, int32(2), p.QueueSize)
	assert.True(t, p.IsPeriodic)
	assert.Equal(t, 0.001, p.ProbChange)
	assert.Equal(t, 30.0, p.TimeOpen)
}

func TestNewSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.csv")
	require.NoError(t, os.WriteFile(path, []byte(header), 0o644))

	src, err := input.NewSource(config.Input{File: path})
	require.NoError(t, err)
	assert.Equal(t, "params.csv", src.Name())
	rows, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)

	src, err = input.NewSource(config.Input{URI: "mongodb://localhost", Params: &config.InputPath{DB: "exp", Col: "runs"}})
	require.NoError(t, err)
	assert.Equal(t, "exp.runs", src.Name())

	_, err = input.NewSource(config.Input{})
	assert.Error(t, err)
}

func TestParseNonFinite(t *testing.T) {
	rows, err := input.ReadCSV("params.csv", strings.NewReader(header+
		"first.json,10,5,Sync,60,5,0.1,2,10,false,NaN,0.4,0.2,0.5,Inf,20\n"))
	require.NoError(t, err)
	_, err = input.ParseParameterSet(rows[0])
	var invalid *entity.InvalidParameterError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "alphaWeight", invalid.Field)
}
