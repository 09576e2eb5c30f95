package main

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"

	cli "github.com/urfave/cli/v3"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zooyer/golib/xos"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	dxf "github.com/zooyer/dxf-codec"
	"github.com/zooyer/dxf-codec/core"
	"github.com/zooyer/dxf-codec/entities"
	"github.com/zooyer/dxf-codec/utils"
)

type entityDump struct {
	Type       string              `yaml:"type" msgpack:"type"`
	Layer      string              `yaml:"layer" msgpack:"layer"`
	Handle     string              `yaml:"handle,omitempty" msgpack:"handle,omitempty"`
	Attributes map[string]string   `yaml:"attributes,omitempty" msgpack:"attributes,omitempty"`
	Data       entities.EntityType `yaml:"data" msgpack:"data"`
}

type blockDump struct {
	Name      string       `yaml:"name" msgpack:"name"`
	Layer     string       `yaml:"layer" msgpack:"layer"`
	BasePoint core.Point   `yaml:"base_point" msgpack:"base_point"`
	Entities  []entityDump `yaml:"entities" msgpack:"entities"`
}

type documentDump struct {
	Version  string       `yaml:"version" msgpack:"version"`
	Blocks   []blockDump  `yaml:"blocks,omitempty" msgpack:"blocks,omitempty"`
	Entities []entityDump `yaml:"entities" msgpack:"entities"`
}

func dumpEntities(list []*entities.Entity) []entityDump {
	out := make([]entityDump, 0, len(list))
	for _, e := range list {
		d := entityDump{Type: e.Type(), Layer: e.Layer(), Data: e.Specific}
		if e.Common.Handle != 0 {
			d.Handle = e.Common.Handle.String()
		}
		if ins, ok := e.Specific.(*entities.Insert); ok && len(ins.Attributes) > 0 {
			d.Attributes = utils.GetAttrs(ins)
		}
		out = append(out, d)
	}
	return out
}

func newDocumentDump(doc *dxf.Document) documentDump {
	d := documentDump{Version: doc.Version.String(), Entities: dumpEntities(doc.Entities)}
	for _, name := range slices.Sorted(maps.Keys(doc.Blocks)) {
		b := doc.Blocks[name]
		d.Blocks = append(d.Blocks, blockDump{
			Name:      b.Name,
			Layer:     b.Layer,
			BasePoint: b.BasePoint,
			Entities:  dumpEntities(b.Entities),
		})
	}
	return d
}

// textLines 每个实体一行：类型、图层、句柄
func textLines(d documentDump) []string {
	lines := []string{fmt.Sprintf("version %s\n", d.Version)}
	for _, b := range d.Blocks {
		lines = append(lines, fmt.Sprintf("block %s (%d entities)\n", b.Name, len(b.Entities)))
	}
	for i, e := range d.Entities {
		lines = append(lines, fmt.Sprintf("%d\t%s\t%s\t%s\n", i+1, e.Type, e.Layer, e.Handle))
		for _, tag := range slices.Sorted(maps.Keys(e.Attributes)) {
			lines = append(lines, fmt.Sprintf("\t%s=%s\n", tag, e.Attributes[tag]))
		}
	}
	return lines
}

func runDump(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return fmt.Errorf("no input file specified")
	}
	dst := cmd.Args().Get(1)

	format := env.Cfg.Dump.Format
	if f := cmd.String("format"); len(f) > 0 {
		format = f
	}

	doc, err := dxf.Open(src, dxf.WithLogger(env.Log), dxf.WithCodePage(env.Cfg.Codec.CodePage))
	if err != nil {
		return fmt.Errorf("unable to read '%s': %w", src, err)
	}
	report := newDocumentDump(doc)

	env.Log.Info("Dumping drawing",
		zap.String("file", src),
		zap.String("format", format),
		zap.Int("entities", len(doc.Entities)),
		zap.Int("blocks", len(doc.Blocks)),
	)

	var data []byte
	switch format {
	case "yaml":
		data, err = yaml.Marshal(report)
	case "msgpack":
		data, err = msgpack.Marshal(report)
	case "text":
		if len(dst) == 0 {
			for _, line := range textLines(report) {
				fmt.Print(line)
			}
			return nil
		}
		if err = os.WriteFile(dst, nil, 0644); err != nil {
			return err
		}
		for _, line := range textLines(report) {
			if err = xos.AppendFile(dst, []byte(line), 0644); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown dump format %q", format)
	}
	if err != nil {
		return fmt.Errorf("unable to encode dump: %w", err)
	}

	if len(dst) == 0 {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(dst, data, 0644)
}

func runConvert(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)

	if cmd.Args().Len() != 2 {
		return fmt.Errorf("expected SOURCE and DESTINATION")
	}
	src, dst := cmd.Args().Get(0), cmd.Args().Get(1)

	version, err := env.Cfg.Codec.Version()
	if err != nil {
		return err
	}
	if to := cmd.String("to"); len(to) > 0 {
		if version, err = core.ParseVersion(to); err != nil {
			return err
		}
	}

	assignments, err := parseAssignments(cmd.StringSlice("set"))
	if err != nil {
		return err
	}

	doc, err := dxf.Open(src, dxf.WithLogger(env.Log), dxf.WithCodePage(env.Cfg.Codec.CodePage))
	if err != nil {
		return fmt.Errorf("unable to read '%s': %w", src, err)
	}
	if len(assignments) > 0 {
		n := applyAssignments(doc, cmd.String("block"), assignments)
		env.Log.Info("Attributes updated", zap.Int("references", n), zap.Strings("set", cmd.StringSlice("set")))
	}
	env.Log.Info("Converting drawing",
		zap.String("from", doc.Version.String()),
		zap.String("to", version.String()),
		zap.String("destination", dst),
	)

	doc.Version = version
	doc.WriteHandles = env.Cfg.Codec.WriteHandles
	if err = doc.SaveFile(dst); err != nil {
		return fmt.Errorf("unable to write '%s': %w", dst, err)
	}
	return nil
}
