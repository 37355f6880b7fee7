package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/suparena/typefactory"
	"github.com/suparena/typefactory/manifest"
)

var (
	versionFlag  = flag.Bool("version", false, "Show version information")
	vFlag        = flag.Bool("v", false, "Show version information (short)")
	manifestFlag = flag.String("manifest", "", "Path to the registration manifest (defaults to $TYPEFACTORY_MANIFEST)")
)

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := typefactory.GetVersionInfo()
		fmt.Printf("TypeFactory manifestcheck version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	// .env is optional; ignore the error when no file is present
	_ = godotenv.Load()

	path := *manifestFlag
	if path == "" {
		path = os.Getenv("TYPEFACTORY_MANIFEST")
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "manifestcheck: no manifest given (use -manifest or set TYPEFACTORY_MANIFEST)")
		os.Exit(2)
	}

	m, err := manifest.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "manifestcheck: %v\n", err)
		os.Exit(1)
	}
	if err := m.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "manifestcheck: %s: %v\n", path, err)
		os.Exit(1)
	}

	if m.Metadata.Source != "" {
		fmt.Printf("Manifest source: %s\n", m.Metadata.Source)
	}
	if m.Metadata.GeneratedAt != "" {
		generated, _ := m.Metadata.GeneratedTime()
		fmt.Printf("Generated at: %s\n", generated.String())
	}
	for _, name := range m.InterfaceNames() {
		fmt.Printf("%s:\n", name)
		for _, id := range m.Types(name) {
			fmt.Printf("  - %s\n", id)
		}
	}
}
