package core

import (
	"fmt"
	"strconv"
	"strings"
)

// CodePair 代表 DXF 中的一组标签对，值的类型由组码范围决定
type CodePair struct {
	Code  int
	Value any // string, float64, int16, int32, int64, bool
}

func NewString(code int, s string) CodePair { return CodePair{Code: code, Value: s} }

func NewFloat(code int, f float64) CodePair { return CodePair{Code: code, Value: f} }

func NewShort(code int, i int16) CodePair { return CodePair{Code: code, Value: i} }

func NewInt(code int, i int32) CodePair { return CodePair{Code: code, Value: i} }

func NewLong(code int, i int64) CodePair { return CodePair{Code: code, Value: i} }

func NewBool(code int, b bool) CodePair { return CodePair{Code: code, Value: b} }

// AsString 取字符串值
func (p CodePair) AsString() (string, error) {
	if s, ok := p.Value.(string); ok {
		return s, nil
	}
	return "", &ValueError{Pair: p, Want: TypeString}
}

// AsFloat 取浮点值
func (p CodePair) AsFloat() (float64, error) {
	if f, ok := p.Value.(float64); ok {
		return f, nil
	}
	return 0, &ValueError{Pair: p, Want: TypeFloat}
}

// AsShort 取 16 位整数
func (p CodePair) AsShort() (int16, error) {
	if i, ok := p.Value.(int16); ok {
		return i, nil
	}
	return 0, &ValueError{Pair: p, Want: TypeShort}
}

// AsInt 取 32 位整数
func (p CodePair) AsInt() (int32, error) {
	if i, ok := p.Value.(int32); ok {
		return i, nil
	}
	return 0, &ValueError{Pair: p, Want: TypeInt}
}

// AsBool 取布尔值，290-299 之外的 short 值按非零判断
func (p CodePair) AsBool() (bool, error) {
	switch v := p.Value.(type) {
	case bool:
		return v, nil
	case int16:
		return v != 0, nil
	}
	return false, &ValueError{Pair: p, Want: TypeBool}
}

// AsHandle 把十六进制字符串解析为句柄
func (p CodePair) AsHandle() (Handle, error) {
	s, err := p.AsString()
	if err != nil {
		return 0, err
	}
	h, err := ParseHandle(s)
	if err != nil {
		return 0, &ValueError{Pair: p, Want: TypeString, Err: err}
	}
	return h, nil
}

// IsMarker 是否为实体类型标记 (组码 0)
func (p CodePair) IsMarker() bool {
	return p.Code == 0
}

func (p CodePair) String() string {
	return fmt.Sprintf("%d/%s", p.Code, p.ValueString())
}

// ValueString 以 ASCII DXF 的写法格式化值
func (p CodePair) ValueString() string {
	switch v := p.Value.(type) {
	case string:
		return v
	case float64:
		return formatFloat(v)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		if v {
			return "1"
		}
		return "0"
	}
	return fmt.Sprint(p.Value)
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
