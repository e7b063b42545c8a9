package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-featuregrid/pkg/assets"
	"github.com/goliatone/go-featuregrid/pkg/feature"
	"github.com/goliatone/go-featuregrid/pkg/orchestrator"
)

func main() {
	renderer := flag.String("renderer", "", "renderer to use (vanilla, nodes)")
	output := flag.String("output", "", "output file (stdout if empty)")
	features := flag.String("features", "", "JSON or YAML features document (built-in list if empty)")
	icons := flag.String("icons", "", "directory holding icon SVGs (embedded illustrations if empty)")
	check := flag.Bool("check", false, "resolve every icon and exit without rendering")
	interactive := flag.Bool("interactive", false, "prompt for the renderer")
	flag.Parse()

	ctx := context.Background()

	options, err := buildOptions(*features, *icons)
	if err != nil {
		log.Fatalf("Failed to configure: %v", err)
	}
	gen := orchestrator.New(options...)

	if *check {
		if err := runCheck(ctx, gen); err != nil {
			log.Fatalf("Check failed: %v", err)
		}
		fmt.Printf("%d feature(s) OK\n", gen.Table().Len())
		return
	}

	name := strings.TrimSpace(*renderer)
	if *interactive && name == "" {
		name, err = chooseRenderer(ctx, newSurveyPrompter(), gen.Renderers())
		if err != nil {
			log.Fatalf("Failed to choose renderer: %v", err)
		}
	}

	outputHTML, err := gen.Generate(ctx, orchestrator.Request{Renderer: name})
	if err != nil {
		log.Fatalf("Failed to generate features section: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, outputHTML, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Features section written to %s\n", *output)
	} else {
		fmt.Println(string(outputHTML))
	}
}

func buildOptions(featuresPath, iconsDir string) ([]orchestrator.Option, error) {
	var options []orchestrator.Option

	if path := strings.TrimSpace(featuresPath); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read features: %w", err)
		}
		table, err := feature.Load(data, path)
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithTable(table))
	}

	if dir := strings.TrimSpace(iconsDir); dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("icons directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("icons directory: %s is not a directory", dir)
		}
		options = append(options, orchestrator.WithResolver(assets.Cached(assets.NewDirResolver(dir))))
	}

	return options, nil
}

func runCheck(ctx context.Context, gen *orchestrator.Orchestrator) error {
	_, err := gen.Build(ctx)
	var resolveErr *assets.ResolveError
	if errors.As(err, &resolveErr) {
		for _, failure := range resolveErr.Failures {
			fmt.Fprintf(os.Stderr, "feature #%d: icon %q: %v\n", failure.Index, failure.Ref, failure.Err)
		}
	}
	return err
}
