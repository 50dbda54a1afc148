package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kwatari/article-quadrant/internal/application"
	"github.com/kwatari/article-quadrant/internal/model"
)

var (
	Version   string = "dev"
	Commit    string = "unknown"
	BuildTime string = "unknown"
)

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
		sourceURL   = flag.String("url", "", "Article URL to analyze")
		sourceFile  = flag.String("file", "", "Local file to analyze")
		sourceText  = flag.String("text", "", "Direct text to analyze")
		title       = flag.String("title", "", "Quadrant chart title")
		outFile     = flag.String("out", "", "Write SVG to file instead of stdout")
		width       = flag.Int("width", 500, "Canvas width in pixels (300-1000)")
		height      = flag.Int("height", 500, "Canvas height in pixels (300-1000)")
		colorScheme = flag.String("scheme", "professional", "Color scheme: professional, vibrant or monochrome")
	)
	flag.Parse()

	if *showHelp {
		fmt.Printf("Article Quadrant Analyzer CLI\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nEnvironment Variables:\n")
		fmt.Printf("  GEMINI_API_KEY        Gemini API key (required)\n")
		fmt.Printf("  CACHE_TYPE            Cache type: memory or cloud-storage (default: memory)\n")
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("Article Quadrant Analyzer CLI\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Commit: %s\n", Commit)
		fmt.Printf("Build Time: %s\n", BuildTime)
		os.Exit(0)
	}

	source, err := resolveSource(*sourceURL, *sourceFile, *sourceText)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app, err := application.New()
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer app.Close()

	opts := model.DefaultVisualizationOptions()
	opts.Width = *width
	opts.Height = *height
	opts.ColorScheme = *colorScheme

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cfg := model.DefaultQuadrantConfig()
	cfg.Title = *title

	result, err := app.PipelineService.Run(ctx, source, cfg, opts, model.DefaultAnalysisOptions())
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	if *outFile != "" {
		if err := os.WriteFile(*outFile, []byte(result.Quadrant.SVGContent), 0644); err != nil {
			log.Fatalf("Failed to write SVG: %v", err)
		}
		fmt.Fprintf(os.Stderr, "SVG written to %s\n", *outFile)
	} else {
		fmt.Println(result.Quadrant.SVGContent)
	}

	// Summary goes to stderr so piped SVG output stays clean
	fmt.Fprintf(os.Stderr, "Analysis %s: %d insights", result.AnalysisID, result.Quadrant.Summary.TotalInsights)
	if result.Quadrant.Summary.DominantQuadrant != "" {
		fmt.Fprintf(os.Stderr, ", dominant quadrant %s", result.Quadrant.Summary.DominantQuadrant)
	}
	fmt.Fprintln(os.Stderr)
	for _, finding := range result.Quadrant.Summary.KeyFindings {
		fmt.Fprintf(os.Stderr, "  - %s\n", finding)
	}
}

func resolveSource(url, file, text string) (model.Source, error) {
	set := 0
	for _, v := range []string{url, file, text} {
		if v != "" {
			set++
		}
	}
	if set == 0 {
		return model.Source{}, fmt.Errorf("one of -url, -file or -text is required")
	}
	if set > 1 {
		return model.Source{}, fmt.Errorf("only one of -url, -file or -text may be given")
	}

	switch {
	case url != "":
		return model.Source{Type: model.SourceTypeURL, Content: url}, nil
	case file != "":
		return model.Source{Type: model.SourceTypeFilePath, Content: file}, nil
	default:
		return model.Source{Type: model.SourceTypeDirectText, Content: text}, nil
	}
}
