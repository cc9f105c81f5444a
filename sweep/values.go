package sweep

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseValues reads parameter values, one per line. Blank lines and
// lines starting with "#" are skipped. Order is preserved; duplicates
// are kept, since each produces an independent (if redundant) submission.
func ParseValues(r io.Reader) ([]string, error) {
	var values []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		values = append(values, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// ReadValuesFile reads parameter values from a file via ParseValues.
func ReadValuesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read values file: %v", err)
	}
	defer f.Close()
	return ParseValues(f)
}
