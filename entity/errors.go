package entity

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedSharedSection = errors.New("shared section must be a 5-element array")
)

// MissingFieldError 参数表缺少必需列
type MissingFieldError struct {
	Row   string // 行标识，如 "params.csv:3"
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Row, e.Field)
}

// TypeConversionError 字段值无法转换为声明的类型
type TypeConversionError struct {
	Row   string
	Field string
	Value string
	Kind  string // int | float | bool
	Err   error
}

func (e *TypeConversionError) Error() string {
	return fmt.Sprintf("%s: field %q value %q is not a valid %s: %v", e.Row, e.Field, e.Value, e.Kind, e.Err)
}

func (e *TypeConversionError) Unwrap() error {
	return e.Err
}

// InvalidParameterError 字段值语义不合法
type InvalidParameterError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Field, e.Value, e.Reason)
}

// WriteError 输出文件无法写入
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
