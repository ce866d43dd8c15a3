// Command zonejson parses a DNS zonefile into JSON.
//
// Usage:
//
//	zonejson [-lenient] [-pretty] [-out file] [zonefile]
//
// With no file argument the zonefile text is read from stdin.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jroosing/zonejson/internal/zonefile"
)

func main() {
	var (
		lenient = flag.Bool("lenient", false, "Skip unparseable lines instead of failing")
		pretty  = flag.Bool("pretty", false, "Indent the JSON output")
		out     = flag.String("out", "", "Write output to file instead of stdout")
	)
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Usage: zonejson [-lenient] [-pretty] [-out file] [zonefile]\n")
		os.Exit(2)
	}

	text, err := readInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read input: %v\n", err)
		os.Exit(1)
	}

	parse := zonefile.Parse
	if *lenient {
		parse = zonefile.ParseLenient
	}
	zf, err := parse(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse failed: %v\n", err)
		os.Exit(1)
	}

	var data []byte
	if *pretty {
		data, err = json.MarshalIndent(zf, "", "  ")
	} else {
		data, err = json.Marshal(zf)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode output: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if *out != "" {
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write output: %v\n", err)
			os.Exit(1)
		}
		return
	}
	os.Stdout.Write(data)
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}
