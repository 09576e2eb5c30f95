package utils

import (
	"github.com/zooyer/dxf-codec/entities"
)

// GetAttrs 块引用上所有属性，标签到值
func GetAttrs(ins *entities.Insert) map[string]string {
	var attrs = make(map[string]string)
	for _, a := range ins.Attributes {
		attrs[a.AttributeTag] = a.Value
	}

	return attrs
}

func GetAttr(ins *entities.Insert, key string) string {
	return GetAttrs(ins)[key]
}

// SetAttr 修改已有属性的值，标签不存在时追加一个新属性
func SetAttr(ins *entities.Insert, key, value string) {
	for i := range ins.Attributes {
		if ins.Attributes[i].AttributeTag == key {
			ins.Attributes[i].Value = value
			return
		}
	}

	a := entities.NewAttribute()
	a.AttributeTag = key
	a.Value = value
	a.Location = ins.Location
	ins.Attributes = append(ins.Attributes, *a)
	ins.HasAttributes = true
}
