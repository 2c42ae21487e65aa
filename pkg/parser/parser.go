// Package parser defines the parsing capability interfaces of netdiff.
//
// Every supported command has a deterministic line-by-line parser in the
// junos subpackage; those are the reference implementations and always run
// standalone. An optional external "primary" parser (netdiff.PrimaryParser)
// may be consulted first; its failures are recovered by falling back to the
// reference parser.
package parser

import (
	"context"
	"fmt"

	"github.com/honeybbq/netdiff/pkg/nderrors"
	"github.com/honeybbq/netdiff/pkg/netdiff"
)

// Parser 将命令输出片段解析成领域集合，使用泛型约束集合类型。
// 实现必须对 absent/空白片段返回零值集合，绝不报错。
type Parser[T netdiff.Collection] interface {
	Parse(seg netdiff.Segment) T
}

// Func 让普通解析函数满足 Parser。
type Func[T netdiff.Collection] func(seg netdiff.Segment) T

// Parse 实现 Parser 接口。
func (f Func[T]) Parse(seg netdiff.Segment) T {
	return f(seg)
}

// NotImplementedPrimary 用于尚未接入外部结构化解析器的阶段：
// 永远失败，从而让调用方回退到正则解析器。
type NotImplementedPrimary struct {
	name string
}

// NewNotImplementedPrimary 构造 stub。
func NewNotImplementedPrimary(name string) *NotImplementedPrimary {
	if name == "" {
		name = "primary"
	}
	return &NotImplementedPrimary{name: name}
}

// Name 实现 netdiff.PrimaryParser。
func (p *NotImplementedPrimary) Name() string {
	return p.name
}

// Parse 实现 netdiff.PrimaryParser。
func (p *NotImplementedPrimary) Parse(_ context.Context, command string, _ netdiff.Segment) (map[string]any, error) {
	return nil, nderrors.New(nderrors.KindParse, fmt.Errorf("%s parser for %q: %w", p.name, command, nderrors.ErrNotImplemented))
}
