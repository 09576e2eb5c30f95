package core

import (
	"io"
)

// Source 逐个拉取组码对，读完返回 io.EOF
type Source interface {
	Next() (CodePair, error)
}

// Sink 逐个接收组码对
type Sink interface {
	WritePair(p CodePair) error
}

// PutBack 给 Source 加一个回退槽
type PutBack struct {
	src  Source
	held *CodePair
}

func NewPutBack(src Source) *PutBack {
	if pb, ok := src.(*PutBack); ok {
		return pb
	}
	return &PutBack{src: src}
}

func (p *PutBack) Next() (CodePair, error) {
	if p.held != nil {
		pair := *p.held
		p.held = nil
		return pair, nil
	}
	return p.src.Next()
}

// PutBack 退回最近读到的一个组码对，只能退一个
func (p *PutBack) PutBack(pair CodePair) {
	if p.held != nil {
		panic("dxf: put back slot already occupied")
	}
	p.held = &pair
}

// NextInEntity 与 Next 相同，但把 io.EOF 转为 ErrUnexpectedEOF
func (p *PutBack) NextInEntity() (CodePair, error) {
	pair, err := p.Next()
	if err == io.EOF {
		return CodePair{}, ErrUnexpectedEOF
	}
	return pair, err
}

// Pairs 内存中的组码序列，既可写入也可作为 Source 读出
type Pairs []CodePair

func (ps *Pairs) WritePair(p CodePair) error {
	*ps = append(*ps, p)
	return nil
}

// Source 返回从头读取的游标
func (ps Pairs) Source() Source {
	return &pairsSource{pairs: ps}
}

type pairsSource struct {
	pairs Pairs
	pos   int
}

func (s *pairsSource) Next() (CodePair, error) {
	if s.pos >= len(s.pairs) {
		return CodePair{}, io.EOF
	}
	p := s.pairs[s.pos]
	s.pos++
	return p, nil
}
