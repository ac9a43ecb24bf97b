package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsinghua-fib-lab/nasch-settings/entity"
)

// Writer 路网配置文件写入接口
type Writer interface {
	// Write 写入一个配置文件，返回实际写入的路径
	Write(name string, doc entity.Document) (string, error)
}

// FileWriter 将路网写为JSON文件
type FileWriter struct {
	dir    string
	indent int
}

// NewFileWriter 创建文件写入器
// 参数：dir-输出目录（相对路径的文件名拼接在其后），indent-缩进空格数，0为紧凑输出
func NewFileWriter(dir string, indent int) *FileWriter {
	return &FileWriter{dir: dir, indent: indent}
}

// Path 文件名对应的输出路径
func (w *FileWriter) Path(name string) string {
	if filepath.IsAbs(name) || w.dir == "" {
		return name
	}
	return filepath.Join(w.dir, name)
}

// Write 序列化并写入文件
// 返回：写入路径；目录不可用或写入失败时返回WriteError
func (w *FileWriter) Write(name string, doc entity.Document) (string, error) {
	path := w.Path(name)
	data, err := Marshal(doc, w.indent)
	if err != nil {
		return path, &entity.WriteError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return path, &entity.WriteError{Path: path, Err: err}
	}
	return path, nil
}

// Marshal 序列化路网配置文件
func Marshal(doc entity.Document, indent int) ([]byte, error) {
	var data []byte
	var err error
	if indent > 0 {
		data, err = json.MarshalIndent(doc, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// ReadFile 读取已生成的路网配置文件
func ReadFile(path string) (entity.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entity.Document{}, err
	}
	var doc entity.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return entity.Document{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}

// PrepareDir 预检查输出目录
// 功能：目录不存在时创建，路径被文件占用时报错
func PrepareDir(dir string) error {
	if dir == "" {
		return nil
	}
	if stat, err := os.Stat(dir); err == nil {
		if !stat.IsDir() {
			return &entity.WriteError{Path: dir, Err: fmt.Errorf("not a directory")}
		}
		log.Debugf("output dir %s exists", dir)
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &entity.WriteError{Path: dir, Err: err}
	}
	log.Infof("created output dir %s", dir)
	return nil
}
