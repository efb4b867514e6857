package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/HAF-A57/LoreGuard-sub000/internal/logging"
)

func runEvents() {
	fs := flag.NewFlagSet("events", flag.ExitOnError)
	tail := fs.Int("tail", 50, "Number of recent lines to show")
	follow := fs.Bool("f", false, "Follow mode (like tail -f)")
	level := fs.String("level", "", "Filter: only lines containing this level (INFO, WARN, ERRO, DEBU)")
	grep := fs.String("grep", "", "Filter: only lines containing this substring")
	fs.Parse(os.Args[1:])

	path := logging.Path()
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "no log file at %s (run the dashboard first)\n", path)
		os.Exit(1)
	}
	defer f.Close()

	keep := func(line string) bool {
		if *level != "" && !strings.Contains(line, strings.ToUpper(*level)) {
			return false
		}
		if *grep != "" && !strings.Contains(line, *grep) {
			return false
		}
		return true
	}

	// Ring buffer for the tail
	lines := make([]string, 0, *tail)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !keep(line) {
			continue
		}
		if len(lines) == *tail {
			copy(lines, lines[1:])
			lines = lines[:len(lines)-1]
		}
		lines = append(lines, line)
	}
	for _, line := range lines {
		fmt.Println(line)
	}

	if !*follow {
		return
	}

	// Poll for appended lines; the dashboard writes infrequently so a
	// short sleep beats fsnotify here.
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			time.Sleep(500 * time.Millisecond)
			continue
		}
		if err != nil {
			fatal(err)
		}
		line = strings.TrimRight(line, "\n")
		if keep(line) {
			fmt.Println(line)
		}
	}
}
