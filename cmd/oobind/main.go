package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/xyproto/env/v2"

	"github.com/reoring/oobind"
	"github.com/reoring/oobind/config"
	"github.com/reoring/oobind/convert"
	"github.com/reoring/oobind/examples/foo"
	"github.com/reoring/oobind/i18n"
	"github.com/reoring/oobind/internal/logging"
	"github.com/reoring/oobind/irjson"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	setup()
	var err error
	switch os.Args[1] {
	case "validate":
		err = validateCmd(os.Args[2:], os.Stdout)
	case "dump":
		err = dumpCmd(os.Args[2:], os.Stdout)
	case "convert":
		err = convertCmd(os.Args[2:], os.Stdout)
	case "dialects":
		err = dialectsCmd(os.Stdout)
	default:
		usage()
		os.Exit(2)
	}
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		fatalf("%s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "oobind CLI\n\nUsage:\n  oobind validate [-config lib.yaml]\n  oobind dump [-config lib.yaml] [-o out.json]\n  oobind convert -dialect cpp -type name [-dir native|target] [-expr x]\n  oobind dialects\n\nEnvironment:\n  OOBIND_CONFIG      default for -config\n  OOBIND_VERBOSE     log at debug level\n  OOBIND_LOG_FORMAT  text or json\n  OOBIND_LANG        language of error messages (en, ja)")
}

// setup applies the environment: message language and logger.
func setup() {
	i18n.SetLanguage(env.Str("OOBIND_LANG", "en"))
	cfg := logging.DefaultConfig()
	cfg.Format = env.Str("OOBIND_LOG_FORMAT", "text")
	if env.Bool("OOBIND_VERBOSE") {
		cfg.Level = slog.LevelDebug
		cfg.AddSource = true
	}
	if err := logging.Init(cfg); err != nil {
		fatalf("logging: %v", err)
	}
}

// load builds and validates the foo library, with metadata and naming
// overrides from path when it is set.
func load(path string) (*oobind.ValidatedLibrary, error) {
	var (
		lib *oobind.Library
		err error
	)
	if path == "" {
		slog.Debug("no config, using defaults")
		lib, err = foo.Default()
	} else {
		lib, err = loadWithConfig(path)
	}
	if err != nil {
		return nil, err
	}
	v, err := lib.Validate()
	if err != nil {
		return nil, err
	}
	slog.Debug("library validated", "name", v.Settings().Name.String(), "statements", len(v.Statements()))
	return v, nil
}

func loadWithConfig(path string) (*oobind.Library, error) {
	f, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("config loaded", "path", path, "name", f.Name)
	settings, err := f.Settings()
	if err != nil {
		return nil, err
	}
	version, err := f.LibraryVersion()
	if err != nil {
		return nil, err
	}
	return foo.Build(settings, version, f.LibraryInfo())
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

func validateCmd(args []string, w io.Writer) error {
	fs := newFlagSet("validate")
	var cfg string
	fs.StringVar(&cfg, "config", env.Str("OOBIND_CONFIG"), "library configuration (YAML)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	v, err := load(cfg)
	if err != nil {
		return err
	}
	counts := map[string]int{}
	for _, s := range v.Statements() {
		counts[s.StatementKind().String()]++
	}
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	fmt.Fprintf(w, "%s %s: ok\n", v.Settings().Name, v.Version())
	for _, k := range kinds {
		fmt.Fprintf(w, "  %-20s %d\n", k, counts[k])
	}
	return nil
}

func dumpCmd(args []string, w io.Writer) error {
	fs := newFlagSet("dump")
	var cfg, out string
	fs.StringVar(&cfg, "config", env.Str("OOBIND_CONFIG"), "library configuration (YAML)")
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	v, err := load(cfg)
	if err != nil {
		return err
	}
	if out == "" {
		return irjson.Write(w, v)
	}
	data, err := irjson.Marshal(v)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
		return err
	}
	slog.Info("wrote library description", "path", out, "bytes", len(data)+1)
	return nil
}

func convertCmd(args []string, w io.Writer) error {
	fs := newFlagSet("convert")
	var cfg, dialect, typeName, dir, expr string
	fs.StringVar(&cfg, "config", env.Str("OOBIND_CONFIG"), "library configuration (YAML)")
	fs.StringVar(&dialect, "dialect", "cpp", "target dialect ("+strings.Join(convert.Names(), ", ")+")")
	fs.StringVar(&typeName, "type", "", "type name, e.g. u32, string or a statement name")
	fs.StringVar(&dir, "dir", "native", "conversion direction: native or target")
	fs.StringVar(&expr, "expr", "value", "expression to convert")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if typeName == "" {
		fs.Usage()
		return flag.ErrHelp
	}
	d, ok := convert.Lookup(dialect)
	if !ok {
		return fmt.Errorf("unknown dialect %q", dialect)
	}
	var direction oobind.Direction
	switch dir {
	case "native":
		direction = oobind.TowardNative
	case "target":
		direction = oobind.TowardTarget
	default:
		return fmt.Errorf("unknown direction %q", dir)
	}
	v, err := load(cfg)
	if err != nil {
		return err
	}
	t, ok := v.FindType(typeName)
	if !ok {
		return fmt.Errorf("unknown type %q", typeName)
	}
	slog.Debug("converting", "type", t.TypeName(), "pass_by", t.PassBy().String(), "direction", direction.String())
	fmt.Fprintln(w, oobind.Convert(t, d, direction, expr))
	return nil
}

func dialectsCmd(w io.Writer) error {
	for _, n := range convert.Names() {
		fmt.Fprintln(w, n)
	}
	return nil
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
