package entities

import (
	"github.com/zooyer/dxf-codec/core"
)

// lwPolylineState 组码 10 开始一个新顶点，其余顶点组码修改最后一个顶点
type lwPolylineState struct {
	poly *LwPolyline
}

func (s *lwPolylineState) last(p core.CodePair) (*LwPolylineVertex, error) {
	if len(s.poly.Vertices) == 0 {
		return nil, &core.UnexpectedPairError{Pair: p, Reason: "vertex field before the first 10"}
	}
	return &s.poly.Vertices[len(s.poly.Vertices)-1], nil
}

func (s *lwPolylineState) claim(p core.CodePair) (bool, error) {
	switch p.Code {
	case 10:
		f, err := p.AsFloat()
		if err != nil {
			return true, err
		}
		s.poly.Vertices = append(s.poly.Vertices, LwPolylineVertex{X: f})
		return true, nil
	case 20, 40, 41, 42, 91:
	default:
		return false, nil
	}

	v, err := s.last(p)
	if err != nil {
		return true, err
	}
	switch p.Code {
	case 20:
		v.Y, err = p.AsFloat()
	case 40:
		v.StartingWidth, err = p.AsFloat()
	case 41:
		v.EndingWidth, err = p.AsFloat()
	case 42:
		v.Bulge, err = p.AsFloat()
	case 91:
		v.ID, err = p.AsInt()
	}
	return true, err
}
