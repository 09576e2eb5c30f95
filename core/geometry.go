package core

import (
	"strconv"
	"strings"
)

// Point 代表三维空间中的一个点
type Point struct {
	X, Y, Z float64
}

func NewPoint(x, y, z float64) Point { return Point{X: x, Y: y, Z: z} }

// Vector 三维方向
type Vector struct {
	X, Y, Z float64
}

func NewVector(x, y, z float64) Vector { return Vector{X: x, Y: y, Z: z} }

// ZAxis 默认法向
var ZAxis = Vector{Z: 1}

// Color 原始颜色索引 (组码 62)
type Color int16

const (
	ColorByBlock Color = 0
	ColorByLayer Color = 256
)

// Handle 对象句柄，文件中以十六进制字符串出现
type Handle uint32

func ParseHandle(s string) (Handle, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	return Handle(v), nil
}

func (h Handle) String() string {
	return strings.ToUpper(strconv.FormatUint(uint64(h), 16))
}
