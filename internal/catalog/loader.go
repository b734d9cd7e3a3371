package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"glsnake/internal/snake"
)

// Parse reads a model file. Each model is one line, "name: joints"; lines
// starting with '#' are comments, and after the colon '#' starts a comment
// running to the end of the line. Malformed lines of any length are logged
// and skipped. The only error returned is a read failure.
func Parse(r io.Reader, log logrus.FieldLogger) (*Catalog, error) {
	if log == nil {
		log = discardLogger()
	}
	c := New()
	br := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read models: %w", err)
		}
		if line = strings.TrimSpace(line); line != "" && line[0] != '#' {
			if m, perr := parseLine(line); perr != nil {
				log.WithFields(logrus.Fields{"line": lineNo}).Warnf("skipping model: %v", perr)
			} else {
				c.Append(m)
			}
		}
		if err == io.EOF {
			return c, nil
		}
	}
}

func parseLine(line string) (Model, error) {
	name, joints, ok := strings.Cut(line, ":")
	if !ok {
		return Model{}, fmt.Errorf("missing ':' in %q", truncate(line, 40))
	}
	name = strings.TrimSpace(name)
	joints, _, _ = strings.Cut(joints, "#")
	if name == "" {
		return Model{}, fmt.Errorf("empty name in %q", truncate(line, 40))
	}
	shape, err := snake.ParseShape(joints)
	if err != nil {
		return Model{}, fmt.Errorf("%s: %w", truncate(name, 40), err)
	}
	return Model{Name: name, Shape: shape}, nil
}

// Load parses the model file at path.
func Load(path string, log logrus.FieldLogger) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open models: %w", err)
	}
	defer f.Close()

	c, err := Parse(f, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
