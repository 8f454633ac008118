package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"

	"github.com/hupe1980/kvec/blobstore"
	"github.com/hupe1980/kvec/model"
)

// PrefecturesName is the blob name of the prefecture dataset in BuiltinStore.
const PrefecturesName = "prefectures.txt"

//go:embed data/prefectures.txt
var prefecturesTxt []byte

// RegionCategories names the regions used as labels of the prefecture dataset.
var RegionCategories = model.Categories{
	"Tohoku-Hokkaido",
	"Kanto",
	"Chubu",
	"Kinki",
	"Chugoku",
	"Shikoku",
	"Kyushu-Okinawa",
}

// ToyCategories names the categories of the toy k-NN training set.
var ToyCategories = model.Categories{"category1", "category2", "category3"}

// Prefectures returns the 47 prefectural capitals as `<name> <region> <lat> <lon>`.
func Prefectures() model.Dataset {
	ds, err := Parse(bytes.NewReader(prefecturesTxt), KNNFormat(2))
	if err != nil {
		panic("dataset: embedded prefectures are malformed: " + err.Error())
	}
	return ds
}

// BuiltinStore returns a memory store holding the embedded datasets.
func BuiltinStore() *blobstore.MemoryStore {
	store := blobstore.NewMemoryStore()
	_ = store.Put(context.Background(), PrefecturesName, prefecturesTxt)
	return store
}

// WordDocuments returns the 4x12 word-document matrix of four documents.
// Documents 1 and 2 share vocabulary, as do documents 3 and 4.
func WordDocuments() model.Dataset {
	return model.NewDataset([][]float64{
		{3, 7, 6, 3, 0, 0, 0, 0, 0, 0, 0, 0},
		{3, 3, 0, 3, 9, 2, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 3, 6, 5, 9, 0, 0},
		{0, 0, 0, 0, 0, 3, 0, 4, 6, 0, 5, 5},
	})
}

// ToyTraining returns the 18-item, three-category k-NN training set.
func ToyTraining() model.Dataset {
	ds, _ := model.NewLabeledDataset([][]float64{
		{7, 14}, {3, 18}, {7, 19}, {4, 22}, {10, 20}, {12, 17},
		{19, 16}, {19, 20}, {22, 19}, {22, 22}, {19, 23}, {25, 22},
		{27, 2}, {23, 7}, {29, 6}, {25, 10}, {29, 11}, {30, 2},
	}, []int{
		0, 0, 0, 0, 0, 0,
		1, 1, 1, 1, 1, 1,
		2, 2, 2, 2, 2, 2,
	})
	return ds
}

// ToyQueries returns the four unlabeled queries classified against ToyTraining.
// They are named d101 to d104.
func ToyQueries() model.Dataset {
	ds := model.NewDataset([][]float64{{9, 16}, {16, 18}, {22, 15}, {26, 7}})
	for i := range ds.Items {
		ds.Items[i].Name = fmt.Sprintf("d%d", 101+i)
	}
	return ds
}
