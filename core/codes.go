package core

import (
	"strconv"
	"strings"
)

// ValueType 组码对应的值类型
type ValueType int

const (
	TypeString ValueType = iota
	TypeFloat
	TypeShort
	TypeInt
	TypeLong
	TypeBool
)

func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeFloat:
		return "double"
	case TypeShort:
		return "short"
	case TypeInt:
		return "int"
	case TypeLong:
		return "long"
	case TypeBool:
		return "bool"
	}
	return "unknown"
}

// ExpectedType 按组码范围返回值类型
func ExpectedType(code int) ValueType {
	switch {
	case code < 0:
		return TypeString
	case code <= 9:
		return TypeString
	case code <= 59:
		return TypeFloat
	case code <= 79:
		return TypeShort
	case code <= 89:
		return TypeString
	case code <= 99:
		return TypeInt
	case code <= 109:
		return TypeString
	case code <= 149:
		return TypeFloat
	case code <= 159:
		return TypeString
	case code <= 169:
		return TypeLong
	case code <= 179:
		return TypeShort
	case code <= 209:
		return TypeString
	case code <= 239:
		return TypeFloat
	case code <= 269:
		return TypeString
	case code <= 289:
		return TypeShort
	case code <= 299:
		return TypeBool
	case code <= 369:
		return TypeString
	case code <= 389:
		return TypeShort
	case code <= 399:
		return TypeString
	case code <= 409:
		return TypeShort
	case code <= 419:
		return TypeString
	case code <= 429:
		return TypeInt
	case code <= 439:
		return TypeString
	case code <= 459:
		return TypeInt
	case code <= 469:
		return TypeFloat
	case code <= 999:
		return TypeString
	case code <= 1009:
		return TypeString
	case code <= 1059:
		return TypeFloat
	case code <= 1070:
		return TypeShort
	case code == 1071:
		return TypeInt
	}
	return TypeString
}

// ParsePair 把原始文本按组码类型转换为 CodePair
func ParsePair(code int, raw string) (CodePair, error) {
	switch ExpectedType(code) {
	case TypeFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return CodePair{}, &ValueError{Pair: NewString(code, raw), Want: TypeFloat, Err: err}
		}
		return NewFloat(code, f), nil
	case TypeShort:
		i, err := parseInt(raw, 16)
		if err != nil {
			return CodePair{}, &ValueError{Pair: NewString(code, raw), Want: TypeShort, Err: err}
		}
		return NewShort(code, int16(i)), nil
	case TypeInt:
		i, err := parseInt(raw, 32)
		if err != nil {
			return CodePair{}, &ValueError{Pair: NewString(code, raw), Want: TypeInt, Err: err}
		}
		return NewInt(code, int32(i)), nil
	case TypeLong:
		i, err := parseInt(raw, 64)
		if err != nil {
			return CodePair{}, &ValueError{Pair: NewString(code, raw), Want: TypeLong, Err: err}
		}
		return NewLong(code, i), nil
	case TypeBool:
		i, err := parseInt(raw, 16)
		if err != nil {
			return CodePair{}, &ValueError{Pair: NewString(code, raw), Want: TypeBool, Err: err}
		}
		return NewBool(code, i != 0), nil
	}
	// 字符串保留前导空格，只去掉行尾
	return NewString(code, raw), nil
}

// 有些文件会把整数写成 "1.0"
func parseInt(raw string, bits int) (int64, error) {
	s := strings.TrimSpace(raw)
	i, err := strconv.ParseInt(s, 10, bits)
	if err == nil {
		return i, nil
	}
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil || f != float64(int64(f)) {
		return 0, err
	}
	return strconv.ParseInt(strconv.FormatInt(int64(f), 10), 10, bits)
}
