package nderrors

import (
	"errors"
	"fmt"
)

// Kind identifies the high level class of an error surfaced by netdiff.
type Kind string

const (
	// KindParse indicates 结构化解析失败（仅限外部 primary parser）。
	KindParse Kind = "parse"
	// KindReport 表示报告写出失败。
	KindReport Kind = "report"
	// KindCatalog 表示命令目录/选择文件无效。
	KindCatalog Kind = "catalog"
	// KindUnsupported 表示暂不支持的命令。
	KindUnsupported Kind = "unsupported"
	// KindInternal 表示未知或内部错误。
	KindInternal Kind = "internal"
)

// Error 包装底层错误并附加 Kind，方便调用方根据类型处理。
type Error struct {
	Kind Kind
	Err  error
}

// Error 实现 error 接口。
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap 允许 errors.Is/As 访问底层错误。
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New 创建指定 Kind 的错误。
func New(kind Kind, err error) error {
	if err == nil {
		err = errors.New(string(kind))
	}
	return &Error{Kind: kind, Err: err}
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

var (
	// ErrNotImplemented 统一指示功能尚未实现。
	ErrNotImplemented = errors.New("netdiff: not implemented")
)
