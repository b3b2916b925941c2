// Command frozengen builds a real frozen.Map from a literal table, reads
// back which representation was chosen, and emits a Go source file that
// constructs the same map with frozen.NewMap. It does not reimplement any
// representation.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/orca-zhang/frozen"
)

var genTemplate = template.Must(template.New("frozengen").Parse(`// Code generated by frozengen. DO NOT EDIT.
// generation-id: {{.GenerationID}}
// representation: {{.Representation}}

package {{.Package}}

import "github.com/orca-zhang/frozen"

var {{.Var}} = mustBuild{{.Var}}()

func mustBuild{{.Var}}() *frozen.Map[string, string] {
	m, err := frozen.NewMap([]frozen.Pair[string, string]{
{{- range .Pairs}}
		{Key: {{printf "%q" .Key}}, Value: {{printf "%q" .Value}}},
{{- end}}
	})
	if err != nil {
		panic(err)
	}
	return m
}
`))

type genData struct {
	Package        string
	Var            string
	GenerationID   string
	Representation string
	Pairs          []frozen.Pair[string, string]
}

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "cmd", "frozengen")

	app := &cli.App{
		Name:        "frozengen",
		Description: "Generate a Go source file constructing a frozen.Map from a literal key=value table",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "in",
				Usage:    "path to a key=value, one-per-line literal table",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "out",
				Usage:    "path to write the generated .go file",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "pkg",
				Usage: "package name for the generated file",
				Value: "main",
			},
			&cli.StringFlag{
				Name:  "var",
				Usage: "exported variable name for the generated map",
				Value: "Table",
			},
		},
		Action: func(c *cli.Context) error {
			return run(logger, c.String("in"), c.String("out"), c.String("pkg"), c.String("var"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
}

func run(logger log.Logger, input, output, pkgName, varName string) error {
	pairs, err := readPairs(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}
	level.Info(logger).Log("msg", "read literal table", "entries", len(pairs))

	m, err := frozen.NewMap(pairs)
	if err != nil {
		return fmt.Errorf("analyzing table: %w", err)
	}
	stats := m.Stats()
	level.Info(logger).Log("msg", "chose representation", "representation", stats.Representation)

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer f.Close()

	data := genData{
		Package:        pkgName,
		Var:            varName,
		GenerationID:   uuid.NewString(),
		Representation: stats.Representation,
		Pairs:          pairs,
	}
	if err := genTemplate.Execute(f, data); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	level.Info(logger).Log("msg", "wrote generated file", "path", output)
	return nil
}

func readPairs(path string) ([]frozen.Pair[string, string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pairs []frozen.Pair[string, string]
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("malformed line %q, expected key=value", line)
		}
		pairs = append(pairs, frozen.Pair[string, string]{Key: k, Value: v})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}
