package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/kvec/model"
)

// Format describes the record layout of a dataset file.
type Format struct {
	// Dim is the number of vector components per record.
	Dim int
	// Labeled records carry an integer category after the name.
	Labeled bool
}

// KMeansFormat is `<name> <f1> ... <fd>`.
func KMeansFormat(dim int) Format { return Format{Dim: dim} }

// KNNFormat is `<name> <label> <f1> ... <fd>`.
func KNNFormat(dim int) Format { return Format{Dim: dim, Labeled: true} }

// Fields returns the number of whitespace-separated tokens per record.
func (f Format) Fields() int {
	n := 1 + f.Dim
	if f.Labeled {
		n++
	}
	return n
}

func (f Format) String() string {
	if f.Labeled {
		return fmt.Sprintf("labeled(dim=%d)", f.Dim)
	}
	return fmt.Sprintf("unlabeled(dim=%d)", f.Dim)
}

// Parse reads every record from r. Blank lines are skipped. The first
// malformed record aborts the parse with a *FormatError; nothing is returned
// partially. Unlabeled records get model.Unlabeled as their category.
func Parse(r io.Reader, f Format) (model.Dataset, error) {
	if f.Dim < 1 {
		return model.Dataset{}, &FormatError{Reason: fmt.Sprintf("dimension %d must be at least 1", f.Dim)}
	}

	sc := bufio.NewScanner(r)
	var items []model.Item
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		it, reason := parseRecord(fields, f)
		if reason != "" {
			return model.Dataset{}, &FormatError{Line: line, Reason: reason}
		}
		items = append(items, it)
	}
	if err := sc.Err(); err != nil {
		return model.Dataset{}, &FormatError{Line: line + 1, Reason: err.Error()}
	}
	if len(items) == 0 {
		return model.Dataset{}, &FormatError{Reason: "no records"}
	}
	return model.Dataset{Items: items}, nil
}

func parseRecord(fields []string, f Format) (model.Item, string) {
	if len(fields) != f.Fields() {
		return model.Item{}, fmt.Sprintf("expected %d fields, got %d", f.Fields(), len(fields))
	}

	it := model.Item{
		Name:     fields[0],
		Category: model.Unlabeled,
	}
	rest := fields[1:]
	if f.Labeled {
		label, err := strconv.Atoi(rest[0])
		if err != nil {
			return model.Item{}, fmt.Sprintf("label %q is not an integer", rest[0])
		}
		if label < 0 {
			return model.Item{}, fmt.Sprintf("label %d is negative", label)
		}
		it.Category = label
		rest = rest[1:]
	}

	it.Vector = make(model.Vector, f.Dim)
	for i, tok := range rest {
		x, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return model.Item{}, fmt.Sprintf("component %d %q is not a number", i+1, tok)
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return model.Item{}, fmt.Sprintf("component %d %q is not finite", i+1, tok)
		}
		it.Vector[i] = x
	}
	return it, ""
}
