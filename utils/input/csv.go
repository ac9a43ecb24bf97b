package input

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CSVSource 从带表头的CSV文件读取参数表
type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Name() string {
	return filepath.Base(s.path)
}

// Load 读取CSV文件的全部数据行
func (s *CSVSource) Load(_ context.Context) ([]Row, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open parameter file: %w", err)
	}
	defer f.Close()
	return ReadCSV(s.Name(), f)
}

// ReadCSV 解析CSV内容
// 功能：第一行为表头，其余每行按表头生成一个Row
// 参数：name-来源名称，r-CSV内容
// 返回：全部数据行；列数与表头不一致时返回错误
func ReadCSV(name string, r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", name, err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	rows := make([]Row, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		line, _ := reader.FieldPos(0)
		fields := make(map[string]string, len(header))
		for i, h := range header {
			fields[h] = record[i]
		}
		rows = append(rows, Row{Source: name, Line: line, Fields: fields})
	}
	log.Debugf("read %d rows from %s", len(rows), name)
	return rows, nil
}
