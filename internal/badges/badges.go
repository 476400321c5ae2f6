// Package badges derives per-day badge counts from a directory of markdown
// notes.
package badges

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"calpick/internal/dateutil"
	"calpick/internal/logs"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

var datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// Counts maps a day to its badge count.
type Counts map[dateutil.Day]int

// For returns the count for day, 0 if none.
func (c Counts) For(day dateutil.Day) int {
	return c[day]
}

// Scan walks every dir recursively and counts dated notes and dated list
// items. Missing directories are skipped.
func Scan(dirs []string) (Counts, error) {
	counts := Counts{}
	for _, dir := range dirs {
		if err := walk(dir, counts); err != nil {
			return nil, fmt.Errorf("scan %s: %w", dir, err)
		}
	}
	return counts, nil
}

func walk(dir string, counts Counts) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		absPath := filepath.Join(dir, name)

		if entry.IsDir() {
			if shouldSkipDir(name) {
				continue
			}
			if err := walk(absPath, counts); err != nil {
				return err
			}
			continue
		}

		if !strings.HasSuffix(strings.ToLower(name), ".md") {
			continue
		}
		if err := CountFile(absPath, counts); err != nil {
			logs.Logger.Printf("Skipping %s: %v", absPath, err)
		}
	}
	return nil
}

// CountFile adds one to the note's own date (from `date:` frontmatter, else
// from a YYYY-MM-DD in the filename) and one for every top-level list item
// under a heading that is itself a date.
func CountFile(path string, counts Counts) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	fmDate, body := splitFrontmatter(content)
	switch {
	case !fmDate.IsZero():
		counts[fmDate]++
	default:
		if match := datePattern.FindString(filepath.Base(path)); match != "" {
			if day, err := dateutil.Parse(match); err == nil {
				counts[day]++
			}
		}
	}

	countHeadingItems(body, counts)
	return nil
}

func countHeadingItems(body []byte, counts Counts) {
	doc := goldmark.DefaultParser().Parse(text.NewReader(body))

	var current *dateutil.Day

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			current = nil
			if day, err := dateutil.Parse(string(node.Text(body))); err == nil {
				current = &day
			}
			return ast.WalkSkipChildren, nil

		case *ast.ListItem:
			if current != nil && isTopLevel(node) {
				counts[*current]++
			}
		}

		return ast.WalkContinue, nil
	})
}

func isTopLevel(item *ast.ListItem) bool {
	list := item.Parent()
	return list != nil && list.Parent() != nil && list.Parent().Kind() == ast.KindDocument
}

type frontmatter struct {
	Date string `yaml:"date"`
}

// splitFrontmatter returns the frontmatter date (zero if absent or invalid)
// and the content with any frontmatter removed.
func splitFrontmatter(content []byte) (dateutil.Day, []byte) {
	lines := bytes.Split(content, []byte("\n"))
	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return dateutil.Day{}, content
	}

	var fmEnd int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			fmEnd = i
			break
		}
	}
	if fmEnd == 0 {
		return dateutil.Day{}, content
	}

	body := bytes.Join(lines[fmEnd+1:], []byte("\n"))

	var fm frontmatter
	if err := yaml.Unmarshal(bytes.Join(lines[1:fmEnd], []byte("\n")), &fm); err != nil || fm.Date == "" {
		return dateutil.Day{}, body
	}
	day, err := dateutil.Parse(fm.Date)
	if err != nil {
		return dateutil.Day{}, body
	}
	return day, body
}

func shouldSkipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	switch name {
	case "node_modules", "vendor", "__pycache__", "target", "build", "dist":
		return true
	}
	return false
}
