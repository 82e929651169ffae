// Package render turns TikZ code into a PDF by running an external LaTeX
// toolchain, and opens the result in a viewer.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/inamate/tikzgo/internal/config"
	"github.com/inamate/tikzgo/internal/typeid"
)

// ErrManualIntervention is returned when the compiler failed and its log
// holds no recognizable error message.
var ErrManualIntervention = errors.New("compilation failed, manual intervention required")

const (
	fragmentName = "tikz_code.tex"
	wrapperName  = "tex_file.tex"
)

// wrapper is the document the fragment is compiled in.
const wrapper = `\documentclass{standalone}
\usepackage{tikz}
\usepackage[dvipsnames]{xcolor}
\usepackage{tikz-3dplot}
\usetikzlibrary{arrows.meta, calc, decorations.markings, intersections, positioning, shapes}
\begin{document}
\input{%s}
\end{document}
`

// CompileError carries the message extracted from the compiler log.
type CompileError struct {
	Message string
	Log     string
}

func (e *CompileError) Error() string {
	return "latex error: " + e.Message
}

// Compiler runs a LaTeX toolchain such as latexmk.
type Compiler struct {
	Path      string
	Args      []string
	Quiet     bool
	Timeout   time.Duration
	OutputDir string
	Viewer    string
}

// NewCompiler returns a compiler configured from cfg.
func NewCompiler(cfg *config.Config) *Compiler {
	return &Compiler{
		Path:      cfg.CompilerPath,
		Args:      cfg.CompilerArgs,
		Quiet:     cfg.Quiet,
		Timeout:   cfg.CompileTimeout,
		OutputDir: cfg.OutputDir,
		Viewer:    cfg.ViewerPath,
	}
}

// Compile typesets code inside a standalone wrapper document and moves
// the PDF to OutputDir/name.pdf, returning its absolute path.
func (c *Compiler) Compile(ctx context.Context, name, code string) (string, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	buildID := typeid.NewBuildID()
	buildDir, err := os.MkdirTemp("", buildID+"-*")
	if err != nil {
		return "", fmt.Errorf("create build dir: %w", err)
	}
	defer os.RemoveAll(buildDir)

	fragment := filepath.Join(buildDir, fragmentName)
	if err := os.WriteFile(fragment, []byte(code), 0o644); err != nil {
		return "", fmt.Errorf("write fragment: %w", err)
	}
	texFile := filepath.Join(buildDir, wrapperName)
	if err := os.WriteFile(texFile, []byte(fmt.Sprintf(wrapper, filepath.ToSlash(fragment))), 0o644); err != nil {
		return "", fmt.Errorf("write wrapper: %w", err)
	}

	slog.Info("compile started", "build", buildID, "compiler", c.Path)
	start := time.Now()
	if err := c.run(ctx, buildDir, texFile); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("compile %s: %w", name, ctx.Err())
		}
		return "", fmt.Errorf("compile %s: %w", name, diagnose(buildDir, err))
	}

	pdf := filepath.Join(buildDir, strings.TrimSuffix(wrapperName, ".tex")+".pdf")
	if _, err := os.Stat(pdf); err != nil {
		return "", fmt.Errorf("compile %s: no pdf produced: %w", name, diagnose(buildDir, err))
	}

	if err := os.MkdirAll(c.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	target, err := filepath.Abs(filepath.Join(c.OutputDir, name+".pdf"))
	if err != nil {
		return "", fmt.Errorf("resolve output path: %w", err)
	}
	if err := moveFile(pdf, target); err != nil {
		return "", fmt.Errorf("move pdf: %w", err)
	}

	slog.Info("compile complete", "build", buildID, "pdf", target, "elapsed", time.Since(start))
	return target, nil
}

func (c *Compiler) run(ctx context.Context, dir, texFile string) error {
	args := append([]string{}, c.Args...)
	if c.Quiet {
		args = append(args, "-quiet")
	}
	args = append(args, "-output-directory="+filepath.ToSlash(dir), filepath.ToSlash(texFile))

	cmd := exec.CommandContext(ctx, c.Path, args...)
	cmd.Dir = dir
	cmd.WaitDelay = time.Second

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%v: %s", err, stderr.String())
	}
	return nil
}

// diagnose turns a failed run into a CompileError when the log names the
// problem, or ErrManualIntervention otherwise.
func diagnose(buildDir string, runErr error) error {
	logFile := filepath.Join(buildDir, strings.TrimSuffix(wrapperName, ".tex")+".log")
	data, err := os.ReadFile(logFile)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrManualIntervention, runErr)
	}
	msg, ok := ExtractError(string(data))
	if !ok {
		return fmt.Errorf("%w: %v", ErrManualIntervention, runErr)
	}
	return &CompileError{Message: msg, Log: string(data)}
}

// ExtractError returns the first error message in a TeX log: the text
// from a line starting with "! " up to, not including, the next line
// starting with "? ", or to the end of the log.
func ExtractError(log string) (string, bool) {
	lines := strings.Split(log, "\n")
	for i, line := range lines {
		if !strings.HasPrefix(line, "! ") {
			continue
		}
		msg := []string{strings.TrimPrefix(line, "! ")}
		for _, next := range lines[i+1:] {
			if strings.HasPrefix(next, "? ") {
				break
			}
			msg = append(msg, next)
		}
		return strings.TrimSpace(strings.Join(msg, "\n")), true
	}
	return "", false
}

// Show opens pdf in the configured viewer without waiting for it to exit.
func (c *Compiler) Show(ctx context.Context, pdf string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cmd := exec.Command(c.Viewer, pdf)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start viewer: %w", err)
	}
	slog.Info("viewer opened", "viewer", c.Viewer, "pdf", pdf)
	return cmd.Process.Release()
}

func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	// Rename fails across filesystems; fall back to a copy.
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
