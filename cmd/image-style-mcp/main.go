package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/ironsheep/image-style-mcp/internal/server"
	"github.com/ironsheep/image-style-mcp/internal/style"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-style-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := server.ConfigFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if cfg.Debug {
		log.Printf("Image Style MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		style.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if len(os.Args) > 1 && os.Args[1] == "apply" {
		os.Exit(runApply(cfg, os.Args[2:]))
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// runApply styles one file: apply <style> <input> <output>.
func runApply(cfg server.Config, args []string) int {
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: image-style-mcp apply <style> <input> <output>")
		return 2
	}
	name, in, out := args[0], args[1], args[2]

	data, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", in, err)
		return 1
	}

	res := style.New(
		style.WithSeed(cfg.Seed),
		style.WithMaxDimension(cfg.MaxDimension),
		style.WithMaxPixels(cfg.MaxPixels),
	).Apply(data, name)
	if !res.Success {
		fmt.Fprintln(os.Stderr, res.Message)
		return 1
	}
	if err := os.WriteFile(out, res.Payload, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", out, err)
		return 1
	}
	fmt.Printf("%s (%dx%d) -> %s\n", res.Message, res.Width, res.Height, out)
	return 0
}

func printHelp() {
	fmt.Println("image-style-mcp - MCP server for artistic image styles")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  image-style-mcp [options]                         Run the MCP server on stdin/stdout")
	fmt.Println("  image-style-mcp apply <style> <input> <output>    Style one image file")
	fmt.Println()
	fmt.Println("Styles:")
	for _, s := range style.Styles() {
		fmt.Printf("  %-10s %s\n", s.Name, s.Description)
	}
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  IMAGE_STYLE_LOG_LEVEL=debug       Enable debug logging")
	fmt.Println("  IMAGE_STYLE_SEED=<n>              Dithering seed (decimal or 0x hex)")
	fmt.Println("  IMAGE_STYLE_MAX_DIMENSION=<px>    Downsize inputs larger than this")
	fmt.Println("  IMAGE_STYLE_MAX_PIXELS=<n>        Reject inputs with more pixels than this")
	fmt.Println()
	fmt.Println("In server mode it communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
