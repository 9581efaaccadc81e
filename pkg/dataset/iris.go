package dataset

import (
	_ "embed"
	"strings"
)

// A sample of the UCI Iris dataset: 30 rows, five numeric feature
// columns (Id, SepalLength, SepalWidth, PetalLength, PetalWidth) and a
// Species target with three classes appearing in the order Iris-setosa,
// Iris-versicolor, Iris-virginica.
//
//go:embed data/iris.csv
var irisCSV string

// LoadIris loads the embedded Iris sample. Useful for examples and
// tests that need a small dataset with a categorical target.
func LoadIris() (*Dataset[string], error) {
	return ReadDataset[string](strings.NewReader(irisCSV), "Species")
}
