package entities

// Collect 把 POLYLINE 之后的 VERTEX、带属性的 INSERT 之后的 ATTRIB 收进所属实体，
// 结尾的 SEQEND 一并吞掉
func Collect(list []*Entity) []*Entity {
	if len(list) == 0 {
		return nil
	}
	out := make([]*Entity, 0, len(list))
	for i := 0; i < len(list); i++ {
		e := list[i]
		switch s := e.Specific.(type) {
		case *Polyline:
			for i+1 < len(list) {
				v, ok := list[i+1].Specific.(*Vertex)
				if !ok {
					break
				}
				s.Vertices = append(s.Vertices, *v)
				i++
			}
			i = skipSeqend(list, i)
		case *Insert:
			if !s.HasAttributes {
				break
			}
			for i+1 < len(list) {
				a, ok := list[i+1].Specific.(*Attribute)
				if !ok {
					break
				}
				s.Attributes = append(s.Attributes, *a)
				i++
			}
			i = skipSeqend(list, i)
		}
		out = append(out, e)
	}
	return out
}

func skipSeqend(list []*Entity, i int) int {
	if i+1 < len(list) {
		if _, ok := list[i+1].Specific.(*Seqend); ok {
			return i + 1
		}
	}
	return i
}
