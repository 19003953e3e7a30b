package main

import (
	"fmt"
	"os"

	"github.com/meguminbot/chartinfo/internal/detect"
)

// Debugging aid: shows every classifier rule that matches a file, not just
// the one precedence picks.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: chart-probe <file.json>...")
		os.Exit(1)
	}

	status := 0
	for _, path := range os.Args[1:] {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			status = 1
			continue
		}
		probe(path, data)
	}
	os.Exit(status)
}

func probe(path string, data []byte) {
	fmt.Printf("%s: %s\n", path, detect.Classify(data))

	matches := detect.Trace(data)
	if matches == nil {
		fmt.Println("  (invalid JSON)")
		return
	}
	for _, m := range matches {
		mark := " "
		if m.Matched {
			mark = "x"
		}
		line := fmt.Sprintf("  [%s] %-20s %s", mark, m.Rule, m.Kind)
		if m.Variant.String() != "" {
			line += " " + m.Variant.String()
		}
		fmt.Println(line)
	}
}
