package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hupe1980/kvec/kmeans"
	"github.com/hupe1980/kvec/knn"
	"github.com/hupe1980/kvec/model"
)

// Printer writes human-readable reports. Write errors are sticky: after the
// first failure all further output is dropped and Err reports it.
type Printer struct {
	w      io.Writer
	styles Styles
	err    error
}

// NewPrinter creates a Printer whose colors follow the capabilities of w.
func NewPrinter(w io.Writer) *Printer {
	return NewPrinterWithStyles(w, NewStyles(lipgloss.NewRenderer(w)))
}

// NewPrinterWithStyles creates a Printer with explicit styles.
func NewPrinterWithStyles(w io.Writer, s Styles) *Printer {
	return &Printer{w: w, styles: s}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error { return p.err }

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Heading prints a section title followed by a newline.
func (p *Printer) Heading(title string) {
	p.printf("%s\n", p.styles.Heading.Render(title))
}

// Vector returns `v(name)=[  x.xx  y.yy]^t`.
func Vector(name string, v model.Vector) string {
	var b strings.Builder
	fmt.Fprintf(&b, "v(%s)=[", name)
	for _, x := range v {
		fmt.Fprintf(&b, "%6.2f", x)
	}
	b.WriteString("]^t")
	return b.String()
}

// Centroid returns `[ x.xx y.yy]^t`, each component in a 5-wide field.
func Centroid(v model.Vector) string {
	var b strings.Builder
	b.WriteString("[")
	for _, x := range v {
		fmt.Fprintf(&b, "%5.2f", x)
	}
	b.WriteString("]^t")
	return b.String()
}

// Dataset prints every item as a vector. Labeled items are followed by the
// name of their category.
func (p *Printer) Dataset(title string, ds model.Dataset, categories model.Categories) {
	p.Heading(title)
	for _, it := range ds.Items {
		if it.Labeled() && categories != nil {
			p.printf("%s %s\n", Vector(it.Name, it.Vector), categories.Name(it.Category))
			continue
		}
		p.printf("%s\n", Vector(it.Name, it.Vector))
	}
	p.printf("\n")
}

// Initialization prints the items chosen as initial centroids and the centroids.
func (p *Printer) Initialization(ds model.Dataset, res *kmeans.Result) {
	p.Heading("step 1. centroid initialization")
	names := make([]string, len(res.Initial))
	for i, idx := range res.Initial {
		names[i] = itemName(ds, idx)
	}
	p.printf("%s %s\n", p.styles.Label.Render("selected items:"), strings.Join(names, " "))
	p.printf("%s\n", p.styles.Label.Render("initial centroids"))
	p.centroids(res.InitialCentroids)
}

// Iteration prints the assignment and the recomputed centroids of one iteration.
func (p *Printer) Iteration(ds model.Dataset, it kmeans.Iteration) {
	p.printf("%s\n", p.styles.Muted.Render(fmt.Sprintf("iteration %d", it.Index)))
	p.Heading("step 2. cluster assignment")
	p.Clusters(ds, it.Clusters)
	p.Heading("step 3. centroid update")
	p.centroids(it.Centroids)
	if it.Converged {
		p.printf("%s\n", p.styles.Success.Render("centroids did not change; finished"))
	}
	p.printf("\n")
}

// Clusters prints cluster membership by item name.
func (p *Printer) Clusters(ds model.Dataset, clusters []kmeans.Cluster) {
	for c, members := range clusters {
		names := make([]string, len(members))
		for i, idx := range members {
			names[i] = itemName(ds, idx)
		}
		p.printf("cluster %d: %s\n", c+1, strings.Join(names, " "))
	}
}

func (p *Printer) centroids(centroids []model.Vector) {
	for c, v := range centroids {
		p.printf("cluster %d centroid: %s\n", c+1, Centroid(v))
	}
}

// Evaluation prints the clustering quality metrics.
func (p *Printer) Evaluation(eval *kmeans.Evaluation) {
	p.Heading("clustering evaluation")
	p.printf("%s %s\n", p.styles.Label.Render("intra-cluster variance:"), p.styles.Value.Render(fmt.Sprint(eval.Intra)))
	p.printf("%s %s\n", p.styles.Label.Render("inter-cluster variance:"), p.styles.Value.Render(fmt.Sprint(eval.Inter)))
	p.printf("%s %s\n", p.styles.Label.Render("score:"), p.styles.Value.Render(fmt.Sprint(eval.Score)))
}

// Classification prints one verdict per query followed by the success tally.
//
//	d101 (top 3) d1(category1) d6(category1) d3(category1) => category1
func (p *Printer) Classification(training model.Dataset, categories model.Categories, k int, r *knn.Report) {
	p.Heading("classification")
	for _, out := range r.Outcomes {
		parts := make([]string, len(out.Prediction.Neighbors))
		for i, idx := range out.Prediction.Neighbors {
			parts[i] = fmt.Sprintf("%s(%s)", itemName(training, idx), categories.Name(training.Items[idx].Category))
		}
		p.printf("%s (top %d) %s => %s", out.Name, k, strings.Join(parts, " "), p.styles.Value.Render(categories.Name(out.Prediction.Category)))
		if out.Actual >= 0 {
			if out.Correct {
				p.printf(" %s", p.styles.Success.Render("success"))
			} else {
				p.printf(" %s", p.styles.Failure.Render("failure"))
			}
		}
		p.printf("\n")
	}
	if r.Labeled > 0 {
		p.printf("%s %d/%d\n", p.styles.Label.Render("success rate:"), r.Correct, r.Labeled)
	}
}

func itemName(ds model.Dataset, idx int) string {
	if idx < 0 || idx >= ds.Len() {
		return fmt.Sprintf("#%d", idx)
	}
	return ds.Items[idx].Name
}
