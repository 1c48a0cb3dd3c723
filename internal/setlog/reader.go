// Package setlog reads completed-set logs and forwards them to the server's
// set-completion endpoint, tracking what was already sent so re-runs are safe.
package setlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Entry is one completed set parsed from a log file. Line is the 1-based
// position in the source file.
type Entry struct {
	Exercise string
	Weight   float64
	Reps     int
	Line     int
}

// ReadFile parses a set log from disk.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening set log: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a set log: one `exercise;weight_kg;reps` record per line.
// Blank lines and lines starting with # are skipped.
func Read(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ";")
		if len(parts) != 3 {
			return nil, fmt.Errorf("line %d: want exercise;weight_kg;reps, got %q", lineNo, line)
		}

		exercise := strings.TrimSpace(parts[0])
		if exercise == "" {
			return nil, fmt.Errorf("line %d: empty exercise name", lineNo)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || weight <= 0 {
			return nil, fmt.Errorf("line %d: invalid weight %q", lineNo, parts[1])
		}
		reps, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil || reps <= 0 {
			return nil, fmt.Errorf("line %d: invalid reps %q", lineNo, parts[2])
		}

		entries = append(entries, Entry{
			Exercise: exercise,
			Weight:   weight,
			Reps:     reps,
			Line:     lineNo,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading set log: %w", err)
	}
	return entries, nil
}

// Fingerprint derives a stable identity for one entry within its source file,
// so the same line is never sent twice.
func Fingerprint(path string, e Entry) string {
	return hashString(fmt.Sprintf("%s:%d:%s;%v;%d", path, e.Line, e.Exercise, e.Weight, e.Reps))
}
