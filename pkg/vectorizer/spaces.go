package vectorizer

import (
	"math"

	"github.com/quantext/stylo/pkg/utils"
)

// applySpace rewrites relative-frequency rows in place according to the
// selected vector space.
func applySpace(space VectorSpace, rows [][]float64, idf []float64) {
	switch space {
	case SpaceTF:
		// Relative frequencies are the tf space.
	case SpaceTFScaled:
		minMaxScale(rows)
	case SpaceTFStd:
		stdScale(rows)
	case SpaceTFIDF:
		applyIDF(rows, idf)
	case SpaceBinary:
		binarize(rows)
	}
}

// minMaxScale rescales each column to [0,1]. Constant columns become zeros.
func minMaxScale(rows [][]float64) {
	mins, maxs := utils.ColumnMinMax(rows)
	for _, row := range rows {
		for j := range row {
			span := maxs[j] - mins[j]
			if span == 0 {
				row[j] = 0
				continue
			}
			row[j] = (row[j] - mins[j]) / span
		}
	}
}

// stdScale divides each column by its standard deviation without mean
// centering, the scaling the original wrapper applies for tf_std.
// Zero-variance columns become zeros.
func stdScale(rows [][]float64) {
	stds := utils.ColumnStdDev(rows)
	for _, row := range rows {
		for j := range row {
			if stds[j] == 0 {
				row[j] = 0
				continue
			}
			row[j] /= stds[j]
		}
	}
}

// applyIDF multiplies each row by the idf weights and L2-normalizes it.
func applyIDF(rows [][]float64, idf []float64) {
	for _, row := range rows {
		for j := range row {
			row[j] *= idf[j]
		}
		utils.NormalizeL2(row)
	}
}

// binarize maps non-zero entries to 1.
func binarize(rows [][]float64) {
	for _, row := range rows {
		for j := range row {
			if row[j] > 0 {
				row[j] = 1
			}
		}
	}
}

// smoothIDFValue is the smooth inverse document frequency
// log((1+n)/(1+df)) + 1, which keeps terms present in every document at a
// positive weight.
func smoothIDFValue(df, nDocs int) float64 {
	return math.Log(float64(1+nDocs)/float64(1+df)) + 1
}
