package entities

import (
	"go.uber.org/zap"

	"github.com/zooyer/dxf-codec/core"
)

// Writer 按指定版本写出实体
type Writer struct {
	Version      core.AcadVersion
	WriteHandles bool

	out core.Sink
	log *zap.Logger
}

func NewWriter(out core.Sink, version core.AcadVersion, opts ...Option) *Writer {
	o := newOptions(opts)
	return &Writer{
		Version:      version,
		WriteHandles: o.writeHandles,
		out:          out,
		log:          o.log,
	}
}

// WriteEntity 写出一个实体。该版本不支持的实体类型直接省略。
func (w *Writer) WriteEntity(e *Entity) error {
	if !SupportedOn(e.Specific, w.Version) {
		w.log.Debug("Entity not supported on version, omitted",
			zap.String("type", e.Type()),
			zap.Stringer("version", w.Version),
		)
		return nil
	}

	if err := w.out.WritePair(core.NewString(0, e.Type())); err != nil {
		return err
	}
	if err := e.Common.write(w.Version, w.WriteHandles, w.out); err != nil {
		return err
	}
	if dimensionBaseOf(e.Specific) != nil {
		if err := writeDimension(e.Specific, w.Version, w.out); err != nil {
			return err
		}
	} else {
		if err := genericFields(e.Specific).write(w.Version, w.out); err != nil {
			return err
		}
		if err := w.writeTrailing(e.Specific); err != nil {
			return err
		}
	}
	for _, x := range e.Common.XData {
		if err := x.write(w.out); err != nil {
			return err
		}
	}
	return nil
}

// writeTrailing POLYLINE 的顶点和 INSERT 的属性写成独立的实体，最后跟一个 SEQEND
func (w *Writer) writeTrailing(t EntityType) error {
	var children []EntityType
	switch e := t.(type) {
	case *Polyline:
		for i := range e.Vertices {
			v := e.Vertices[i]
			children = append(children, &v)
		}
	case *Insert:
		if len(e.Attributes) == 0 {
			return nil
		}
		for i := range e.Attributes {
			a := e.Attributes[i]
			children = append(children, &a)
		}
	default:
		return nil
	}

	children = append(children, &Seqend{})
	for _, child := range children {
		if err := w.WriteEntity(NewEntity(child)); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) WriteAll(list []*Entity) error {
	for _, e := range list {
		if err := w.WriteEntity(e); err != nil {
			return err
		}
	}
	return nil
}
