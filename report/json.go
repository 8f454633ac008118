package report

import (
	"io"

	"github.com/hupe1980/kvec/codec"
	"github.com/hupe1980/kvec/kmeans"
	"github.com/hupe1980/kvec/knn"
	"github.com/hupe1980/kvec/model"
)

// ClusterDocument is one cluster of a ClusteringDocument.
type ClusterDocument struct {
	Centroid model.Vector `json:"centroid"`
	Members  []string     `json:"members"`
}

// ClusteringDocument is the JSON form of a k-means run.
type ClusteringDocument struct {
	RunID      string             `json:"run_id,omitempty"`
	K          int                `json:"k"`
	Initial    []string           `json:"initial"`
	Iterations int                `json:"iterations"`
	Clusters   []ClusterDocument  `json:"clusters"`
	Evaluation *kmeans.Evaluation `json:"evaluation,omitempty"`
}

// NewClusteringDocument builds the JSON form of res. eval may be nil.
func NewClusteringDocument(runID string, ds model.Dataset, res *kmeans.Result, eval *kmeans.Evaluation) ClusteringDocument {
	doc := ClusteringDocument{
		RunID:      runID,
		K:          len(res.Centroids),
		Iterations: res.Iterations,
		Evaluation: eval,
	}
	for _, idx := range res.Initial {
		doc.Initial = append(doc.Initial, itemName(ds, idx))
	}
	for c, members := range res.Clusters {
		cd := ClusterDocument{
			Centroid: res.Centroids[c],
			Members:  make([]string, len(members)),
		}
		for i, idx := range members {
			cd.Members[i] = itemName(ds, idx)
		}
		doc.Clusters = append(doc.Clusters, cd)
	}
	return doc
}

// QueryDocument is one query of a ClassificationDocument.
type QueryDocument struct {
	Name      string   `json:"name"`
	Neighbors []string `json:"neighbors"`
	Predicted string   `json:"predicted"`
	Actual    string   `json:"actual,omitempty"`
	Correct   *bool    `json:"correct,omitempty"`
}

// ClassificationDocument is the JSON form of a k-NN evaluation.
type ClassificationDocument struct {
	RunID    string          `json:"run_id,omitempty"`
	K        int             `json:"k"`
	Training []string        `json:"training"`
	Queries  []QueryDocument `json:"queries"`
	Correct  int             `json:"correct"`
	Labeled  int             `json:"labeled"`
}

// NewClassificationDocument builds the JSON form of r.
func NewClassificationDocument(runID string, training model.Dataset, categories model.Categories, k int, r *knn.Report) ClassificationDocument {
	doc := ClassificationDocument{
		RunID:    runID,
		K:        k,
		Training: training.Names(),
		Correct:  r.Correct,
		Labeled:  r.Labeled,
	}
	for _, out := range r.Outcomes {
		qd := QueryDocument{
			Name:      out.Name,
			Predicted: categories.Name(out.Prediction.Category),
		}
		for _, idx := range out.Prediction.Neighbors {
			qd.Neighbors = append(qd.Neighbors, itemName(training, idx))
		}
		if out.Actual >= 0 {
			correct := out.Correct
			qd.Actual = categories.Name(out.Actual)
			qd.Correct = &correct
		}
		doc.Queries = append(doc.Queries, qd)
	}
	return doc
}

// WriteJSON encodes v with c, indented when c supports it, followed by a newline.
// A nil codec selects codec.Default.
func WriteJSON(w io.Writer, c codec.Codec, v any) error {
	if c == nil {
		c = codec.Default
	}

	var (
		data []byte
		err  error
	)
	if ind, ok := c.(codec.Indenter); ok {
		data, err = ind.MarshalIndent(v, "", "  ")
	} else {
		data, err = c.Marshal(v)
	}
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
