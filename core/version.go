package core

import (
	"fmt"
	"strings"
)

// AcadVersion 文件格式版本，按发布顺序全序可比较
type AcadVersion int

const (
	R10 AcadVersion = iota
	R11
	R12
	R13
	R14
	R2000
	R2004
	R2007
	R2010
	R2013
	R2018
)

var versionNames = []string{"R10", "R11", "R12", "R13", "R14", "R2000", "R2004", "R2007", "R2010", "R2013", "R2018"}

// $ACADVER 取值，R11 与 R12 共用 AC1009
var versionCodes = []string{"AC1006", "AC1009", "AC1009", "AC1012", "AC1014", "AC1015", "AC1018", "AC1021", "AC1024", "AC1027", "AC1032"}

func (v AcadVersion) String() string {
	if v < R10 || v > R2018 {
		return fmt.Sprintf("AcadVersion(%d)", int(v))
	}
	return versionNames[v]
}

// Code 返回 $ACADVER 的值
func (v AcadVersion) Code() string {
	if v < R10 || v > R2018 {
		return ""
	}
	return versionCodes[v]
}

// ParseVersion 接受 "R2000" 或 "AC1015" 两种写法
func ParseVersion(s string) (AcadVersion, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, name := range versionNames {
		if s == name {
			return AcadVersion(i), nil
		}
	}
	if s == "AC1009" {
		return R12, nil
	}
	for i, code := range versionCodes {
		if s == code {
			return AcadVersion(i), nil
		}
	}
	return 0, fmt.Errorf("dxf: unknown version %q", s)
}

func (v AcadVersion) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *AcadVersion) UnmarshalText(b []byte) error {
	parsed, err := ParseVersion(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
