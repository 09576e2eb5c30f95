package entities

import (
	"go.uber.org/zap"

	"github.com/zooyer/dxf-codec/core"
)

// Reader 从组码流中逐个读出实体
type Reader struct {
	src *core.PutBack
	log *zap.Logger
}

func NewReader(src core.Source, opts ...Option) *Reader {
	o := newOptions(opts)
	return &Reader{src: core.NewPutBack(src), log: o.log}
}

// Read 读取下一个实体。遇到 0/ENDSEC 或 0/ENDBLK 时把它退回并返回 (nil, nil)。
// 不认识的实体类型和无法确定子类的标注会被跳过。
func (r *Reader) Read() (*Entity, error) {
	for {
		p, err := r.src.NextInEntity()
		if err != nil {
			return nil, err
		}
		if !p.IsMarker() {
			return nil, &core.UnexpectedPairError{Pair: p, Reason: "expected 0/entity-type or 0/ENDSEC"}
		}
		name, err := p.AsString()
		if err != nil {
			return nil, err
		}

		switch name {
		case "ENDSEC", "ENDBLK":
			r.src.PutBack(p)
			return nil, nil
		case "DIMENSION":
			e, err := readDimension(r.src)
			if err != nil {
				return nil, err
			}
			if e == nil {
				r.log.Debug("Dimension discarded, no subclass marker found")
				continue
			}
			return e, nil
		}

		specific := newEntityType(name)
		if specific == nil {
			r.log.Debug("Skipping unsupported entity", zap.String("type", name))
			if err = r.skip(); err != nil {
				return nil, err
			}
			continue
		}

		e := NewEntity(specific)
		if err = r.readBody(e); err != nil {
			return nil, err
		}
		return e, nil
	}
}

func (r *Reader) skip() error {
	for {
		p, err := r.src.NextInEntity()
		if err != nil {
			return err
		}
		if p.IsMarker() {
			r.src.PutBack(p)
			return nil
		}
	}
}

// claimer 上下文相关的组码由它先处理
type claimer func(p core.CodePair) (bool, error)

func customReader(entity *Entity) claimer {
	switch e := entity.Specific.(type) {
	case *Attribute:
		return newAttribState(&e.AttributeText, &e.AttributeTag).claim
	case *AttributeDefinition:
		return newAttribState(&e.AttributeText, &e.TextTag).claim
	case *LwPolyline:
		return (&lwPolylineState{poly: e}).claim
	case *MText:
		return (&mtextState{text: e, common: &entity.Common}).claim
	}
	return nil
}

// readBody 依次交给自定义解析、组码表、公共字段处理，直到下一个 0 组码
func (r *Reader) readBody(e *Entity) error {
	var (
		fields = genericFields(e.Specific)
		custom = customReader(e)
	)
	for {
		p, err := r.src.NextInEntity()
		if err != nil {
			return err
		}
		if p.IsMarker() {
			r.src.PutBack(p)
			break
		}
		if custom != nil {
			ok, err := custom(p)
			if err != nil {
				return err
			}
			if ok {
				continue
			}
		}
		ok, err := fields.apply(p)
		if err != nil {
			return err
		}
		if !ok {
			if err = e.Common.apply(p, r.src); err != nil {
				return err
			}
		}
	}

	if dropped := fields.finish(); dropped > 0 {
		r.log.Warn("Coordinate lists of unequal length truncated",
			zap.String("type", e.Type()),
			zap.Int("dropped", dropped),
		)
	}
	return nil
}

// ReadAll 读到段结束为止，并把 VERTEX/ATTRIB 序列合并进所属实体
func ReadAll(src core.Source, opts ...Option) ([]*Entity, error) {
	r := NewReader(src, opts...)
	var list []*Entity
	for {
		e, err := r.Read()
		if err != nil {
			return nil, err
		}
		if e == nil {
			break
		}
		list = append(list, e)
	}
	return Collect(list), nil
}
