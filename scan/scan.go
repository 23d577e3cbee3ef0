// Package scan reads puzzle inputs: whole files as lines, one parsed item
// per line, or blank-line-separated blocks, from any io.Reader or directly
// from a file path. Parse failures are loud and name the offending line.
package scan

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Lines collects every line of r, newline-stripped, in input order.
func Lines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: read lines: %w", err)
	}

	return out, nil
}

// Items parses one T per line with the supplied parser. The first failing
// line aborts with an error naming its 1-based number.
func Items[T any](r io.Reader, parse func(string) (T, error)) ([]T, error) {
	var out []T
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		v, err := parse(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("scan: line %d: %w", n, err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: read items: %w", err)
	}

	return out, nil
}

// Ints parses one integer per line.
func Ints(r io.Reader) ([]int, error) {
	return Items(r, strconv.Atoi)
}

// Blocks groups lines into blocks separated by blank lines. Every blank
// line terminates the current block, so consecutive blanks produce an empty
// block between them; end of input flushes a final non-empty block only.
func Blocks(r io.Reader) ([][]string, error) {
	var blocks [][]string
	cur := []string{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			blocks = append(blocks, cur)
			cur = []string{}
			continue
		}
		cur = append(cur, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: read blocks: %w", err)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}

	return blocks, nil
}

// FileLines reads path and returns its lines.
func FileLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	defer f.Close()

	return Lines(f)
}

// FileItems reads path and parses one T per line.
func FileItems[T any](path string, parse func(string) (T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	defer f.Close()

	return Items(f, parse)
}

// FileInts reads path and parses one integer per line.
func FileInts(path string) ([]int, error) {
	return FileItems(path, strconv.Atoi)
}

// FileBlocks reads path and returns its blank-line-separated blocks.
func FileBlocks(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	defer f.Close()

	return Blocks(f)
}
