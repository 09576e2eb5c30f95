package entities

import (
	"github.com/zooyer/dxf-codec/core"
)

const xrecordMarker = "AcDbXrecord"

// attribState ATTRIB/ATTDEF 单个实体解析期间的上下文
type attribState struct {
	text *AttributeText
	tag  *string // ATTRIB 的 AttributeTag 或 ATTDEF 的 TextTag

	lastMarker string
	versionSet bool
	xrecord70  int
}

func newAttribState(text *AttributeText, tag *string) *attribState {
	return &attribState{text: text, tag: tag}
}

func (s *attribState) claim(p core.CodePair) (bool, error) {
	var (
		err  error
		xrec = s.lastMarker == xrecordMarker
		a    = s.text
	)
	switch p.Code {
	case 100:
		s.lastMarker, err = p.AsString()
	case 2:
		if xrec {
			a.XRecordTag, err = p.AsString()
		} else {
			*s.tag, err = p.AsString()
		}
	case 10, 20, 30:
		if xrec {
			err = setCoordinate(&a.AlignmentPoint, 10, p)
		} else {
			err = setCoordinate(&a.Location, 10, p)
		}
	case 40:
		if xrec {
			a.AnnotationScale, err = p.AsFloat()
		} else {
			a.TextHeight, err = p.AsFloat()
		}
	case 70:
		if !xrec {
			a.Flags, err = p.AsShort()
			break
		}
		// AcDbXrecord 下的 70 按出现顺序区分含义
		switch s.xrecord70 {
		case 0:
			a.MTextFlag, err = decodeEnum[MTextFlag](p, "MTextFlag")
		case 1:
			a.IsReallyLocked, err = p.AsBool()
		case 2:
			a.SecondaryAttributeCount, err = p.AsShort()
		default:
			return true, &core.UnexpectedPairError{Pair: p, Reason: "too many 70 codes in " + xrecordMarker}
		}
		s.xrecord70++
	case 280:
		switch {
		case xrec:
			a.KeepDuplicateRecords, err = p.AsBool()
		case !s.versionSet:
			a.Version, err = decodeEnum[ObjectVersion](p, "ObjectVersion")
			s.versionSet = true
		default:
			a.IsLockedInBlock, err = p.AsBool()
		}
	case 340:
		var h core.Handle
		if h, err = p.AsHandle(); err == nil {
			a.SecondaryAttributes = append(a.SecondaryAttributes, h)
		}
	case -1:
		a.MText, err = p.AsHandle()
	default:
		return false, nil
	}
	return true, err
}

// setCoordinate 按 base, base+10, base+20 设置 X/Y/Z
func setCoordinate(pt *core.Point, base int, p core.CodePair) error {
	f, err := p.AsFloat()
	if err != nil {
		return err
	}
	switch p.Code {
	case base:
		pt.X = f
	case base + 10:
		pt.Y = f
	default:
		pt.Z = f
	}
	return nil
}
