package swc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// reconnectRe matches header annotations of the form
// "# CYCLE_BREAK reconnect i j". Token matching is case-insensitive.
var reconnectRe = regexp.MustCompile(`(?i)^\s*#\s*CYCLE_BREAK\s+reconnect\s+(\d+)\s+(\d+)\b`)

// Parse reads SWC content from r and returns the parsed records,
// reconnection pairs and comment lines.
func Parse(r io.Reader, opts ParseOptions) (*ParseResult, error) {
	result := &ParseResult{
		Records: make(map[int]Record),
	}

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			result.Comments = append(result.Comments, raw)
			if m := reconnectRe.FindStringSubmatch(raw); m != nil {
				i, _ := strconv.Atoi(m[1])
				j, _ := strconv.Atoi(m[2])
				if i > j {
					i, j = j, i
				}
				result.Reconnections = append(result.Reconnections, [2]int{i, j})
			}
			continue
		}

		rec, err := parseRow(line, lineno, opts.Strict)
		if err != nil {
			return nil, err
		}
		if prev, ok := result.Records[rec.N]; ok {
			return nil, &ParseError{
				Line: lineno,
				Msg:  fmt.Sprintf("duplicate node id %d (previously defined at line %d)", rec.N, prev.Line),
			}
		}
		result.Records[rec.N] = rec
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Msg: fmt.Sprintf("read failed: %v", err)}
	}

	if opts.Strict {
		if err := validateReferences(result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// ParseString parses SWC content held in a string using default options.
func ParseString(content string) (*ParseResult, error) {
	return Parse(strings.NewReader(content), DefaultParseOptions())
}

// ParseFile opens and parses an SWC file using default options.
func ParseFile(path string) (*ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("swc: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f, DefaultParseOptions())
}

// parseRow parses one 7-column data row "n T x y z r parent".
func parseRow(line string, lineno int, strict bool) (Record, error) {
	parts := strings.Fields(line)
	if len(parts) < 7 {
		return Record{}, &ParseError{
			Line: lineno,
			Msg:  fmt.Sprintf("expected 7 columns 'n T x y z r parent', got %d", len(parts)),
		}
	}
	if strict && len(parts) > 7 {
		return Record{}, &ParseError{
			Line: lineno,
			Msg:  fmt.Sprintf("expected exactly 7 columns, got %d", len(parts)),
		}
	}

	n, err := coerceInt(parts[0])
	if err != nil {
		return Record{}, &ParseError{Line: lineno, Msg: fmt.Sprintf("bad node id %q: %v", parts[0], err)}
	}
	t, err := coerceInt(parts[1])
	if err != nil {
		return Record{}, &ParseError{Line: lineno, Msg: fmt.Sprintf("bad type code %q: %v", parts[1], err)}
	}
	var coords [4]float64
	for i, p := range parts[2:6] {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Record{}, &ParseError{Line: lineno, Msg: fmt.Sprintf("bad float %q: %v", p, err)}
		}
		coords[i] = v
	}
	parent, err := coerceInt(parts[6])
	if err != nil {
		return Record{}, &ParseError{Line: lineno, Msg: fmt.Sprintf("bad parent id %q: %v", parts[6], err)}
	}

	return Record{
		N:      n,
		T:      t,
		X:      coords[0],
		Y:      coords[1],
		Z:      coords[2],
		R:      coords[3],
		Parent: parent,
		Line:   lineno,
	}, nil
}

// validateReferences checks parent ids and reconnection ids against the
// defined record set. Geometric validation of reconnection pairs happens in
// pkg/morph, which re-checks existence as well.
func validateReferences(result *ParseResult) error {
	for _, rec := range result.Records {
		if rec.Parent == -1 {
			continue
		}
		if _, ok := result.Records[rec.Parent]; !ok {
			return &ParseError{
				Line: rec.Line,
				Msg:  fmt.Sprintf("parent id %d does not exist for node %d", rec.Parent, rec.N),
			}
		}
	}
	for _, pair := range result.Reconnections {
		for _, id := range []int{pair[0], pair[1]} {
			if _, ok := result.Records[id]; !ok {
				return &ParseError{
					Msg: fmt.Sprintf("reconnection pair (%d, %d) refers to undefined node id %d", pair[0], pair[1], id),
				}
			}
		}
	}
	return nil
}

// coerceInt parses an integer, tolerating only the trailing ".0" form
// that some SWC writers emit for integer fields. Other float spellings
// ("3.", "1e2") are rejected.
func coerceInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	if strings.HasSuffix(s, ".0") {
		f, err := strconv.ParseFloat(s, 64)
		if err == nil {
			n := int(f)
			if float64(n) == f {
				return n, nil
			}
		}
	}
	return 0, fmt.Errorf("not an integer")
}
