package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	mdtex "github.com/alnah/go-mdtex"
	"github.com/alnah/go-mdtex/internal/config"
	"github.com/alnah/go-mdtex/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteHTML        = errors.New("failed to write HTML file")
)

// pageTemplate wraps the rendered fragment in a complete HTML5 document.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Document</title>
</head>
<body>
%s
</body>
</html>`

// Renderer is the interface the CLI needs from the conversion service.
type Renderer interface {
	Render(ctx context.Context, input mdtex.Input) (*mdtex.Result, error)
}

// buildService assembles the conversion service from config and flag
// overrides.
func buildService(flags *cliFlags) (*mdtex.Service, error) {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(nil))
			}
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyDefaults()

	root := cfg.Project.Root
	if flags.root != "" {
		root = flags.root
	}
	assets := cfg.Project.Assets
	if flags.assets != "" {
		assets = flags.assets
	}
	if flags.root != "" && flags.assets == "" {
		assets = filepath.Join(root, "assets")
	}

	opts := []mdtex.Option{
		mdtex.WithPaths(mdtex.Paths{Root: root, Assets: assets}),
		mdtex.WithExecLanguage(cfg.Exec.Language, cfg.Exec.Extension),
	}
	if flags.quiet {
		opts = append(opts, mdtex.WithWarnHandler(func(string, ...any) {}))
	}
	return mdtex.New(opts...), nil
}

// run reads the input document, renders it, and writes the HTML page.
func run(args []string, flags *cliFlags, service Renderer) error {
	if len(args) < 1 {
		return fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput())
	}
	inputPath := args[0]

	if err := validateMarkdownExtension(inputPath); err != nil {
		return err
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	result, err := service.Render(context.Background(), mdtex.Input{Source: string(content)})
	if err != nil {
		if errors.Is(err, mdtex.ErrScriptWrite) {
			return fmt.Errorf("%w%s", err, hints.ForScriptWrite())
		}
		return err
	}

	page := fmt.Sprintf(pageTemplate, result.HTML)
	if flags.output == "" {
		fmt.Println(page)
	} else {
		if err := os.WriteFile(flags.output, []byte(page), 0o600); err != nil { // #nosec G306 -- rendered page, not a secret
			return fmt.Errorf("%w: %v", ErrWriteHTML, err)
		}
		if !flags.quiet {
			fmt.Printf("Created %s\n", flags.output)
		}
	}

	if !flags.quiet {
		for _, s := range result.Scripts {
			fmt.Fprintf(os.Stderr, "materialized %s (awaiting execution)\n", s.Path)
		}
	}
	return nil
}

// validateMarkdownExtension checks that the file has a .md or .markdown
// extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}
