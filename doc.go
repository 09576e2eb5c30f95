package dxf

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/zooyer/dxf-codec/core"
	"github.com/zooyer/dxf-codec/entities"
)

type Block struct {
	Name      string
	Layer     string
	BasePoint core.Point
	Entities  []*entities.Entity
}

type Document struct {
	Version      core.AcadVersion
	CodePage     string // 为空时按 UTF-8 读写
	WriteHandles bool   // 保存时是否写出实体句柄
	Blocks       map[string]*Block
	Entities     []*entities.Entity

	log *zap.Logger
}

type Option func(*Document)

func WithLogger(log *zap.Logger) Option {
	return func(d *Document) {
		if log != nil {
			d.log = log
		}
	}
}

// WithCodePage 指定 IANA 代码页，例如 windows-1252
func WithCodePage(name string) Option {
	return func(d *Document) {
		d.CodePage = name
	}
}

func NewDocument(version core.AcadVersion, opts ...Option) *Document {
	d := &Document{
		Version: version,
		Blocks:  make(map[string]*Block),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func Open(filename string, opts ...Option) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}
	defer multierr.AppendInvoke(&err, multierr.Close(file))

	return Load(file, opts...)
}

// Load 读取 HEADER 中的 $ACADVER、BLOCKS 与 ENTITIES 段，其它段跳过
func Load(reader io.Reader, opts ...Option) (*Document, error) {
	doc := NewDocument(core.R12, opts...)

	scanner, err := core.NewScannerWithCodePage(reader, doc.CodePage)
	if err != nil {
		return nil, err
	}
	src := core.NewPutBack(scanner)

	for {
		p, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", scanner.Line(), err)
		}
		if !p.IsMarker() {
			continue
		}
		if s, _ := p.AsString(); s == "EOF" {
			break
		} else if s != "SECTION" {
			continue
		}

		name, err := src.NextInEntity()
		if err != nil {
			return nil, err
		}
		section, _ := name.AsString()
		doc.log.Debug("Reading section", zap.String("name", section))

		switch strings.ToUpper(section) {
		case "HEADER":
			err = doc.parseHeader(src)
		case "BLOCKS":
			err = doc.parseBlocks(src)
		case "ENTITIES":
			err = doc.parseEntities(src)
		default:
			err = skipSection(src)
		}
		if err != nil {
			return nil, fmt.Errorf("section %s, line %d: %w", section, scanner.Line(), err)
		}
	}

	return doc, nil
}

func (d *Document) parseHeader(src *core.PutBack) error {
	for {
		p, err := src.NextInEntity()
		if err != nil {
			return err
		}
		if p.IsMarker() {
			if s, _ := p.AsString(); s == "ENDSEC" {
				return nil
			}
			continue
		}
		if p.Code != 9 {
			continue
		}
		if s, _ := p.AsString(); s != "$ACADVER" {
			continue
		}
		if p, err = src.NextInEntity(); err != nil {
			return err
		}
		s, err := p.AsString()
		if err != nil {
			return err
		}
		if d.Version, err = core.ParseVersion(s); err != nil {
			return err
		}
	}
}

func (d *Document) parseEntities(src *core.PutBack) (err error) {
	if d.Entities, err = entities.ReadAll(src, entities.WithLogger(d.log)); err != nil {
		return
	}
	d.log.Debug("Entities read", zap.Int("count", len(d.Entities)))
	return expectMarker(src, "ENDSEC")
}

func (d *Document) parseBlocks(src *core.PutBack) error {
	for {
		p, err := src.NextInEntity()
		if err != nil {
			return err
		}
		s, _ := p.AsString()
		switch {
		case p.IsMarker() && s == "ENDSEC":
			return nil
		case p.IsMarker() && s == "BLOCK":
		default:
			return &core.UnexpectedPairError{Pair: p, Reason: "expected 0/BLOCK or 0/ENDSEC"}
		}

		block, err := readBlockHeader(src)
		if err != nil {
			return err
		}
		if block.Entities, err = entities.ReadAll(src, entities.WithLogger(d.log)); err != nil {
			return err
		}
		if err = expectMarker(src, "ENDBLK"); err != nil {
			return err
		}
		// ENDBLK 自身的组码
		if err = skipToMarker(src); err != nil {
			return err
		}
		d.Blocks[strings.ToUpper(block.Name)] = block
	}
}

func readBlockHeader(src *core.PutBack) (*Block, error) {
	block := &Block{Layer: "0"}
	for {
		p, err := src.NextInEntity()
		if err != nil {
			return nil, err
		}
		if p.IsMarker() {
			src.PutBack(p)
			return block, nil
		}
		switch p.Code {
		case 2:
			block.Name, err = p.AsString()
		case 8:
			block.Layer, err = p.AsString()
		case 10:
			block.BasePoint.X, err = p.AsFloat()
		case 20:
			block.BasePoint.Y, err = p.AsFloat()
		case 30:
			block.BasePoint.Z, err = p.AsFloat()
		}
		if err != nil {
			return nil, err
		}
	}
}

func expectMarker(src *core.PutBack, name string) error {
	p, err := src.NextInEntity()
	if err != nil {
		return err
	}
	if s, _ := p.AsString(); !p.IsMarker() || s != name {
		return &core.UnexpectedPairError{Pair: p, Reason: "expected 0/" + name}
	}
	return nil
}

func skipToMarker(src *core.PutBack) error {
	for {
		p, err := src.NextInEntity()
		if err != nil {
			return err
		}
		if p.IsMarker() {
			src.PutBack(p)
			return nil
		}
	}
}

func skipSection(src *core.PutBack) error {
	for {
		p, err := src.NextInEntity()
		if err != nil {
			return err
		}
		if s, _ := p.AsString(); p.IsMarker() && s == "ENDSEC" {
			return nil
		}
	}
}

// Save 写出 HEADER、BLOCKS、ENTITIES 三个段
func (d *Document) Save(w io.Writer) error {
	out, err := core.NewWriterWithCodePage(w, d.CodePage)
	if err != nil {
		return err
	}
	writer := entities.NewWriter(out, d.Version, entities.WithLogger(d.log), entities.WithHandles(d.WriteHandles))

	var pairs = []core.CodePair{
		core.NewString(0, "SECTION"),
		core.NewString(2, "HEADER"),
		core.NewString(9, "$ACADVER"),
		core.NewString(1, d.Version.Code()),
		core.NewString(0, "ENDSEC"),
	}
	if err = writePairs(out, pairs...); err != nil {
		return err
	}

	if len(d.Blocks) > 0 {
		if err = writePairs(out, core.NewString(0, "SECTION"), core.NewString(2, "BLOCKS")); err != nil {
			return err
		}
		for _, block := range d.sortedBlocks() {
			if err = d.writeBlock(out, writer, block); err != nil {
				return err
			}
		}
		if err = writePairs(out, core.NewString(0, "ENDSEC")); err != nil {
			return err
		}
	}

	if err = writePairs(out, core.NewString(0, "SECTION"), core.NewString(2, "ENTITIES")); err != nil {
		return err
	}
	if err = writer.WriteAll(d.Entities); err != nil {
		return err
	}
	if err = writePairs(out, core.NewString(0, "ENDSEC"), core.NewString(0, "EOF")); err != nil {
		return err
	}

	return out.Flush()
}

func (d *Document) SaveFile(filename string) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return
	}
	defer multierr.AppendInvoke(&err, multierr.Close(file))

	return d.Save(file)
}

func (d *Document) sortedBlocks() []*Block {
	blocks := make([]*Block, 0, len(d.Blocks))
	for _, b := range d.Blocks {
		blocks = append(blocks, b)
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Name < blocks[j].Name })
	return blocks
}

func (d *Document) writeBlock(out core.Sink, writer *entities.Writer, b *Block) error {
	pairs := []core.CodePair{core.NewString(0, "BLOCK")}
	if d.Version >= core.R13 {
		pairs = append(pairs, core.NewString(100, "AcDbEntity"))
	}
	pairs = append(pairs, core.NewString(8, b.Layer))
	if d.Version >= core.R13 {
		pairs = append(pairs, core.NewString(100, "AcDbBlockBegin"))
	}
	pairs = append(pairs,
		core.NewString(2, b.Name),
		core.NewShort(70, 0),
		core.NewFloat(10, b.BasePoint.X),
		core.NewFloat(20, b.BasePoint.Y),
		core.NewFloat(30, b.BasePoint.Z),
		core.NewString(3, b.Name),
	)
	if err := writePairs(out, pairs...); err != nil {
		return err
	}
	if err := writer.WriteAll(b.Entities); err != nil {
		return err
	}

	pairs = []core.CodePair{core.NewString(0, "ENDBLK")}
	if d.Version >= core.R13 {
		pairs = append(pairs, core.NewString(100, "AcDbEntity"))
	}
	pairs = append(pairs, core.NewString(8, b.Layer))
	if d.Version >= core.R13 {
		pairs = append(pairs, core.NewString(100, "AcDbBlockEnd"))
	}
	return writePairs(out, pairs...)
}

func writePairs(out core.Sink, pairs ...core.CodePair) error {
	for _, p := range pairs {
		if err := out.WritePair(p); err != nil {
			return err
		}
	}
	return nil
}
