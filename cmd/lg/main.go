// Command lg is the unified CLI for LoreGuard debugging and maintenance.
//
// Usage:
//
//	lg                      Show help
//	lg artifacts            Filtered artifact listing
//	lg sources              Source status table
//	lg jobs                 Job queue summary
//	lg trigger <source-id>  Trigger a crawl
//	lg events               Client log viewer
package main

import (
	"fmt"
	"os"
)

const usage = `lg — LoreGuard debug & maintenance CLI

Usage:
  lg <command> [flags]

Commands:
  artifacts   Filtered artifact listing (same query surface as the TUI)
  sources     Source status table with health
  jobs        Job queue summary
  trigger     Trigger a crawl for one source
  events      Client log viewer

Environment:
  LOREGUARD_API_URL   Backend base URL (default http://localhost:8000)
  LOREGUARD_API_KEY   Bearer token, if the backend requires one

Run 'lg <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]
	// Strip the program name + subcommand so flag sets see only their flags
	os.Args = os.Args[1:]

	switch cmd {
	case "artifacts":
		runArtifacts()
	case "sources":
		runSources()
	case "jobs":
		runJobs()
	case "trigger":
		runTrigger()
	case "events":
		runEvents()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}
