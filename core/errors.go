package core

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEOF 在到达实体或段边界之前输入结束
var ErrUnexpectedEOF = errors.New("dxf: unexpected end of input")

// ErrLineBreak 字符串值中含有换行，写出后会破坏组码对的行结构
var ErrLineBreak = errors.New("value contains a line break")

// ErrOverflow 数值超出组码类型的范围
var ErrOverflow = errors.New("value out of range")

// UnexpectedPairError 当前位置不允许出现该组码
type UnexpectedPairError struct {
	Pair   CodePair
	Reason string
}

func (e *UnexpectedPairError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("dxf: unexpected code pair %s", e.Pair)
	}
	return fmt.Sprintf("dxf: unexpected code pair %s: %s", e.Pair, e.Reason)
}

// ValueError 值的类型与组码要求不符，或无法解析
type ValueError struct {
	Pair CodePair
	Want ValueType
	Err  error
}

func (e *ValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dxf: code %d expects %s value, got %q: %v", e.Pair.Code, e.Want, e.Pair.ValueString(), e.Err)
	}
	return fmt.Sprintf("dxf: code %d expects %s value, got %T %q", e.Pair.Code, e.Want, e.Pair.Value, e.Pair.ValueString())
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// EnumError 数值不在枚举定义域内
type EnumError struct {
	Pair CodePair
	Enum string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("dxf: value %s of code %d is not a valid %s", e.Pair.ValueString(), e.Pair.Code, e.Enum)
}

// IsUnexpectedPair reports whether err is a structural code pair error.
func IsUnexpectedPair(err error) bool {
	var e *UnexpectedPairError
	return errors.As(err, &e)
}

// IsValueError reports whether err is a value coercion error.
func IsValueError(err error) bool {
	var e *ValueError
	return errors.As(err, &e)
}

// IsEnumError reports whether err is an enumeration domain error.
func IsEnumError(err error) bool {
	var e *EnumError
	return errors.As(err, &e)
}
