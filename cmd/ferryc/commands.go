package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/kungfusheep/ferry/gen"
	"github.com/kungfusheep/ferry/internal/config"
	"github.com/kungfusheep/ferry/schema"
)

// settings holds the flags shared by generate and check, and merges them
// over the config file.
type settings struct {
	fs         *flag.FlagSet
	configPath string
	pkg        string
	types      bool
}

func (s *settings) define(fs *flag.FlagSet) {
	s.fs = fs
	fs.StringVar(&s.configPath, "config", "", "YAML or JSON config file")
	fs.StringVar(&s.pkg, "pkg", "records", "package name of the generated file")
	fs.BoolVar(&s.types, "types", true, "emit struct types for every record")
}

// load reads the config file and lets explicitly set flags win.
func (s *settings) load() (config.Config, error) {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return config.Config{}, err
	}
	s.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "pkg":
			cfg.Package = s.pkg
		case "types":
			cfg.Types = s.types
		}
	})
	return cfg, nil
}

func (s *settings) schemas(cfg config.Config, args []string) []string {
	if len(args) > 0 {
		return args
	}
	return cfg.Schemas
}

// compile parses paths into a fresh Compiler and returns the generated
// source.
func compile(cfg config.Config, log *zap.Logger, paths []string) ([]byte, *gen.Compiler, error) {
	c := gen.New(gen.Options{
		Package:   cfg.Package,
		SkipTypes: !cfg.Types,
		Logger:    log,
	})
	if err := parseSchemas(context.Background(), log, paths, c); err != nil {
		return nil, nil, err
	}
	src, err := c.Finish()
	if err != nil {
		return nil, nil, err
	}
	return src, c, nil
}

// GenerateCmd compiles schemas into a Go source file.
type GenerateCmd struct {
	settings
	output string

	stdout io.Writer
	stderr io.Writer
}

func (g *GenerateCmd) Name() string { return "generate" }

func (g *GenerateCmd) DefineFlags(fs *flag.FlagSet) {
	g.settings.define(fs)
	fs.StringVar(&g.output, "o", "", "output file (default stdout)")
}

func (g *GenerateCmd) Execute(args []string) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	g.fs.Visit(func(f *flag.Flag) {
		if f.Name == "o" {
			cfg.Output = g.output
		}
	})

	log, err := cfg.Log.Logger(g.stderr)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	src, c, err := compile(cfg, log, g.schemas(cfg, args))
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		_, err = g.stdout.Write(src)
		return err
	}
	if err := os.WriteFile(cfg.Output, src, 0o644); err != nil {
		return errors.Wrap(err, "write output")
	}
	log.Info("output written",
		zap.String("file", cfg.Output),
		zap.Int("records", len(c.Records())),
		zap.Int("bytes", len(src)))
	return nil
}

// CheckCmd parses and validates schemas without producing output.
type CheckCmd struct {
	settings

	stdout io.Writer
	stderr io.Writer
}

func (c *CheckCmd) Name() string { return "check" }

func (c *CheckCmd) DefineFlags(fs *flag.FlagSet) {
	c.settings.define(fs)
}

func (c *CheckCmd) Execute(args []string) error {
	cfg, err := c.load()
	if err != nil {
		return err
	}
	log, err := cfg.Log.Logger(c.stderr)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	_, comp, err := compile(cfg, log, c.schemas(cfg, args))
	if err != nil {
		return err
	}
	names := lo.Map(comp.Records(), func(r *schema.Record, _ int) string { return r.Name })
	_, err = fmt.Fprintf(c.stdout, "ok: %d records (%s)\n", len(names), strings.Join(names, ", "))
	return err
}

// SchemaCmd prints the records the parser sees.
type SchemaCmd struct {
	stdout io.Writer
}

func (s *SchemaCmd) Name() string { return "schema" }

func (s *SchemaCmd) DefineFlags(fs *flag.FlagSet) {}

func (s *SchemaCmd) Execute(args []string) error {
	var col schema.Collector
	if err := parseSchemas(context.Background(), zap.NewNop(), args, &col); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(s.stdout, 0, 4, 2, ' ', 0)
	for i, r := range col.Records {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s (%s:%d)\n", r.Name, r.File, r.Line)
		for _, f := range r.Fields {
			kind := f.Kind.String()
			if f.Sized() {
				kind += " [" + f.SizeField + "]"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", f.Name, f.Type, kind)
		}
	}
	return tw.Flush()
}
