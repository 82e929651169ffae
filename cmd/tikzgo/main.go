package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/inamate/tikzgo/internal/config"
	"github.com/inamate/tikzgo/internal/document"
	"github.com/inamate/tikzgo/internal/picture"
	"github.com/inamate/tikzgo/internal/render"
)

func main() {
	var (
		in      = flag.String("in", "", "JSON picture document to build")
		example = flag.String("example", "", "built-in picture to build ("+strings.Join(exampleNames(), ", ")+")")
		out     = flag.String("out", "", "output .tex file (default: $TIKZ_OUTPUT_FILE)")
		compile = flag.Bool("compile", false, "compile the picture to PDF")
		show    = flag.Bool("show", false, "compile and open the PDF")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if (*in == "") == (*example == "") {
		fmt.Fprintln(os.Stderr, "exactly one of -in or -example is required")
		flag.Usage()
		os.Exit(2)
	}
	if *out == "" {
		*out = cfg.OutputFile
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *in, *example, *out, *compile || *show, *show); err != nil {
		slog.Error("tikzgo failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, in, example, out string, compile, show bool) error {
	session := picture.NewSession()
	slog.Debug("session started", "session", session.ID())

	var (
		pic  *picture.Picture
		name string
		err  error
	)
	if in != "" {
		pic, name, err = fromFile(in, session)
	} else {
		name = example
		pic, err = buildExample(example, session)
	}
	if err != nil {
		return err
	}

	if err := pic.Write(out); err != nil {
		return err
	}
	slog.Info("picture written", "file", out, "id", pic.ID(), "items", pic.Len())

	if !compile {
		return nil
	}
	c := render.NewCompiler(cfg)
	pdf, err := c.Compile(ctx, name, pic.Code())
	if err != nil {
		return err
	}
	fmt.Println(pdf)

	if show {
		return c.Show(ctx, pdf)
	}
	return nil
}

func fromFile(path string, session *picture.Session) (*picture.Picture, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read document: %w", err)
	}
	doc, err := document.Parse(data)
	if err != nil {
		return nil, "", err
	}
	pic, err := document.Build(doc, session)
	if err != nil {
		return nil, "", err
	}
	name := doc.Name
	if name == "" {
		name = "tikz_picture"
	}
	return pic, name, nil
}

func exampleNames() []string {
	names := make([]string, 0, len(examples))
	for name := range examples {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
