// Package stylo provides corpus-based text vectorization for Go.
//
// Stylo turns collections of raw documents into documents-by-terms numeric
// matrices under one of five vector spaces: raw relative frequency (tf),
// min-max-scaled frequency (tf_scaled), standard-deviation-scaled frequency
// (tf_std), TF-IDF (tf_idf), and binary presence (bin). Vocabulary selection
// supports word and character n-grams, case folding, document-frequency
// culling, ignore lists and a most-frequent-items cut.
//
// # Basic Usage
//
// Load a corpus, prepare it, and vectorize:
//
//	client := stylo.NewClient(&stylo.Config{Language: "en"}, nil)
//
//	if err := client.AddDirectory("data/victorian"); err != nil {
//		log.Fatal(err)
//	}
//	if err := client.Preprocess(); err != nil {
//		log.Fatal(err)
//	}
//	if err := client.Tokenize(0, 50000); err != nil {
//		log.Fatal(err)
//	}
//
//	cfg := vectorizer.DefaultConfig()
//	cfg.MaxFeatures = 100
//	cfg.VectorSpace = vectorizer.SpaceTF
//
//	result, err := client.Vectorize(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	rows, cols := result.Matrix.Shape()
//	fmt.Println(rows, cols)
//	fmt.Println(result.Titles)
//	fmt.Println(result.Authors)
//	fmt.Println(result.FeatureNames())
//
// # Corpus Loading
//
// Documents can be added one at a time, loaded from a directory of
// author_title.txt files, or described in a YAML manifest binding paths to
// title and author metadata.
//
// # Vector Spaces
//
//   - tf: relative term frequency, count over document length
//   - tf_scaled: tf min-max scaled per feature column
//   - tf_std: tf divided by the per-feature standard deviation
//   - tf_idf: smooth TF-IDF with L2-normalized rows
//   - bin: 1 when the term occurs, 0 otherwise
//
// # Model Caching
//
// Setting Config.CacheDir enables a Badger-backed cache of fitted models
// keyed by a corpus/config fingerprint, so repeat runs over an unchanged
// corpus skip vocabulary fitting.
//
// # Architecture
//
// The library follows a modular architecture:
//
//   - pkg/corpus: document collections, loading, preprocessing
//   - pkg/tokenizer: word and character analyzers
//   - pkg/vectorizer: vocabulary fitting and matrix construction
//   - pkg/stopwords: built-in and user-supplied ignore lists
//   - pkg/export: Parquet and JSON result writers
//   - pkg/cache: fitted-model persistence
package stylo
