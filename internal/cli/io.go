package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// cmdOut returns the writer subcommands use for "--out ''"-style stdout
// fallback, distinct from cobra's own OutOrStdout so it stays os.Stdout even
// under test harnesses that redirect cobra's output.
func cmdOut() io.Writer {
	return os.Stdout
}

// writeLines writes one integer per line to path, or to stdout when path is
// empty.
func writeLines(path string, values []int) error {
	w := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("gpart: write %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}

	buf := bufio.NewWriter(w)
	for _, v := range values {
		if _, err := fmt.Fprintln(buf, v); err != nil {
			return err
		}
	}
	return buf.Flush()
}

// readLines reads one integer per line from path, skipping empty lines. Only
// the first integer on a line is read; the rest of the line is ignored.
func readLines(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gpart: read %s: %w", path, err)
	}
	defer f.Close()

	var values []int
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		var v int
		if _, err := fmt.Sscanf(line, "%d", &v); err != nil {
			return nil, fmt.Errorf("gpart: parse %s: %w", path, err)
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return values, nil
}
