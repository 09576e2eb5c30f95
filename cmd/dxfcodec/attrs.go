package main

import (
	"fmt"
	"strings"

	dxf "github.com/zooyer/dxf-codec"
	"github.com/zooyer/dxf-codec/entities"
	"github.com/zooyer/dxf-codec/utils"
)

type assignment struct {
	tag, value string
}

// parseAssignments 解析 TAG=VALUE 列表，值可以为空
func parseAssignments(list []string) ([]assignment, error) {
	out := make([]assignment, 0, len(list))
	for _, s := range list {
		tag, value, ok := strings.Cut(s, "=")
		tag = strings.TrimSpace(tag)
		if !ok || len(tag) == 0 {
			return nil, fmt.Errorf("bad attribute assignment %q, expected TAG=VALUE", s)
		}
		out = append(out, assignment{tag: tag, value: value})
	}
	return out, nil
}

// applyAssignments 修改块引用属性，block 为空时作用于所有块引用。
// 返回被修改的块引用数量。
func applyAssignments(doc *dxf.Document, block string, list []assignment) int {
	if len(list) == 0 {
		return 0
	}

	var n int
	apply := func(ents []*entities.Entity) {
		for _, e := range ents {
			ins, ok := e.Specific.(*entities.Insert)
			if !ok || (len(block) > 0 && ins.Name != block) {
				continue
			}
			for _, a := range list {
				utils.SetAttr(ins, a.tag, a.value)
			}
			n++
		}
	}

	apply(doc.Entities)
	for _, b := range doc.Blocks {
		apply(b.Entities)
	}
	return n
}
