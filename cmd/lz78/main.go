// Command lz78 compresses and decompresses files with LZ78.
//
// Usage:
//
//	lz78 [-d] [-frame] [-o output] [input]
//	lz78 -t [input]
//
// With no input file, lz78 reads standard input. Compressed output goes to
// <input>.lz78 by default, decompressed output to <input> without the .lz78
// suffix (or <input>.out); with standard input, output goes to standard
// output.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/andybalholm/lz78"
	"github.com/andybalholm/lz78/frame"
)

const suffix = ".lz78"

func main() {
	decompress := flag.Bool("d", false, "Decompress instead of compress")
	framed := flag.Bool("frame", false, "Use the checksummed frame container")
	list := flag.Bool("t", false, "List the transactions of a raw compressed input")
	output := flag.String("o", "", "Output file path (\"-\" for standard output)")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("lz78: ")

	if flag.NArg() > 1 {
		log.Fatalf("too many arguments: %q", flag.Args())
	}
	inputPath := flag.Arg(0)

	input, err := readInput(inputPath)
	if err != nil {
		log.Fatalf("cannot read input: %v", err)
	}

	if *list {
		if err := listTransactions(os.Stdout, input); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	var result []byte
	if *decompress {
		result, err = decode(input, *framed)
	} else {
		result, err = encode(input, *framed)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}

	outputPath := *output
	if outputPath == "" {
		outputPath = defaultOutput(inputPath, *decompress)
	}
	if err := writeOutput(outputPath, result); err != nil {
		log.Fatalf("cannot write output: %v", err)
	}

	if outputPath != "-" {
		fmt.Fprintf(os.Stderr, "Input:   %s (%d bytes)\n", displayName(inputPath), len(input))
		fmt.Fprintf(os.Stderr, "Output:  %s (%d bytes)\n", outputPath, len(result))
		if !*decompress && len(result) > 0 {
			fmt.Fprintf(os.Stderr, "Ratio:   %.2fx\n", float64(len(input))/float64(len(result)))
		}
	}
}

func encode(data []byte, framed bool) ([]byte, error) {
	if !framed {
		out, err := lz78.Encode(data)
		if err != nil {
			return nil, fmt.Errorf("compression failed: %w", err)
		}
		return out, nil
	}

	var buf bytes.Buffer
	w := frame.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compression failed: %w", err)
	}
	return buf.Bytes(), nil
}

func decode(data []byte, framed bool) ([]byte, error) {
	var r io.Reader
	if framed {
		r = frame.NewReader(bytes.NewReader(data))
	} else {
		r = lz78.NewReader(bytes.NewReader(data))
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}
	return out, nil
}

// listTransactions writes the transaction listing of a raw stream to w.
func listTransactions(w io.Writer, data []byte) error {
	ts, err := lz78.Scan(nil, data)
	if err != nil {
		return fmt.Errorf("listing failed: %w", err)
	}
	text := lz78.TextEncoder{}.Encode(nil, ts)
	if _, err := w.Write(append(text, '\n')); err != nil {
		return fmt.Errorf("cannot write listing: %w", err)
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func defaultOutput(input string, decompress bool) string {
	if input == "" || input == "-" {
		return "-"
	}
	if !decompress {
		return input + suffix
	}
	if strings.HasSuffix(input, suffix) {
		return strings.TrimSuffix(input, suffix)
	}
	return input + ".out"
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "<stdin>"
	}
	return path
}
