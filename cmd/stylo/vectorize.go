package stylocmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quantext/stylo"
	"github.com/quantext/stylo/pkg/config"
	"github.com/quantext/stylo/pkg/export"
	"github.com/quantext/stylo/pkg/logger"
	"github.com/quantext/stylo/pkg/stopwords"
	"github.com/quantext/stylo/pkg/vectorizer"
)

var vectorizeCmd = &cobra.Command{
	Use:   "vectorize",
	Short: "Vectorize a corpus directory into a feature matrix",
	Long: `Vectorize loads a corpus from a directory of author_title.txt files
(or a YAML manifest), tokenizes it, and writes the resulting
documents-by-features matrix to a Parquet or JSON file.`,
	RunE: runVectorize,
}

var (
	corpusDir      string
	corpusManifest string
	outputPath     string
	outputFormat   string
	noPreprocess   bool
)

func init() {
	rootCmd.AddCommand(vectorizeCmd)

	// Corpus flags
	vectorizeCmd.Flags().StringVar(&corpusDir, "dir", "", "Directory of author_title.txt files")
	vectorizeCmd.Flags().StringVar(&corpusManifest, "manifest", "", "YAML corpus manifest")
	vectorizeCmd.Flags().String("language", "", "Corpus language (ISO 639-1 code)")
	vectorizeCmd.Flags().Int("min-size", 0, "Drop documents shorter than this many tokens")
	vectorizeCmd.Flags().Int("max-size", 0, "Truncate documents to this many tokens (0 = no limit)")
	vectorizeCmd.Flags().BoolVar(&noPreprocess, "no-preprocess", false, "Skip text canonicalization")

	// Vectorizer flags
	vectorizeCmd.Flags().Int("mfi", 0, "Number of most frequent items to keep (0 = all)")
	vectorizeCmd.Flags().String("ngram-type", "", "N-gram type (word, char, char_wb)")
	vectorizeCmd.Flags().Int("ngram-size", 0, "N-gram size")
	vectorizeCmd.Flags().String("vector-space", "", "Vector space (tf, tf_scaled, tf_std, tf_idf, bin)")
	vectorizeCmd.Flags().Float64("min-df", -1, "Minimum document-frequency proportion")
	vectorizeCmd.Flags().Float64("max-df", -1, "Maximum document-frequency proportion")
	vectorizeCmd.Flags().Bool("stop-words", false, "Cull the built-in stop-word list for the corpus language")
	vectorizeCmd.Flags().String("ignore-file", "", "File with additional features to ignore (YAML or plain text)")

	// Output flags
	vectorizeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default <dir>/matrix.<format>)")
	vectorizeCmd.Flags().StringVar(&outputFormat, "format", "", "Output format (parquet, json)")
}

func runVectorize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if corpusDir == "" && corpusManifest == "" {
		return fmt.Errorf("either --dir or --manifest is required")
	}

	log := logger.NewDefaultLogger(logger.ParseLevel(cfg.Log.Level))

	language := cfg.Corpus.Language
	if cmd.Flags().Changed("language") {
		language, _ = cmd.Flags().GetString("language")
	}

	clientCfg := &stylo.Config{
		Language:  language,
		StopWords: cfg.Vectorizer.StopWords,
	}
	if cmd.Flags().Changed("stop-words") {
		clientCfg.StopWords, _ = cmd.Flags().GetBool("stop-words")
	}
	if cfg.Cache.Enabled {
		clientCfg.CacheDir = cfg.Cache.Dir
	}

	client := stylo.NewClient(clientCfg, log)
	defer client.Close()

	if corpusManifest != "" {
		if err := client.LoadManifest(corpusManifest); err != nil {
			return fmt.Errorf("failed to load manifest: %w", err)
		}
	} else {
		if err := client.AddDirectory(corpusDir); err != nil {
			return fmt.Errorf("failed to load corpus: %w", err)
		}
	}

	if !noPreprocess {
		if err := client.Preprocess(); err != nil {
			return fmt.Errorf("preprocessing failed: %w", err)
		}
	}

	minSize, maxSize := cfg.Corpus.MinSize, cfg.Corpus.MaxSize
	if cmd.Flags().Changed("min-size") {
		minSize, _ = cmd.Flags().GetInt("min-size")
	}
	if cmd.Flags().Changed("max-size") {
		maxSize, _ = cmd.Flags().GetInt("max-size")
	}
	if err := client.Tokenize(minSize, maxSize); err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	vecCfg, err := vectorizerConfig(cmd, cfg)
	if err != nil {
		return err
	}

	result, err := client.Vectorize(vecCfg)
	if err != nil {
		return fmt.Errorf("vectorization failed: %w", err)
	}

	rows, cols := result.Matrix.Shape()
	log.Info("vectorized corpus", "documents", rows, "features", cols, "space", result.Space)

	return writeResult(cfg, result)
}

// vectorizerConfig merges the config-file defaults and the command-line
// flags over the library defaults.
func vectorizerConfig(cmd *cobra.Command, cfg *config.Config) (vectorizer.Config, error) {
	vecCfg := vectorizer.DefaultConfig()
	if cfg.Vectorizer.MaxFeatures != 0 {
		vecCfg.MaxFeatures = cfg.Vectorizer.MaxFeatures
	}
	if cfg.Vectorizer.NgramType != "" {
		vecCfg.NgramType = vectorizer.NgramType(cfg.Vectorizer.NgramType)
	}
	if cfg.Vectorizer.NgramSize != 0 {
		vecCfg.NgramSize = cfg.Vectorizer.NgramSize
	}
	if cfg.Vectorizer.VectorSpace != "" {
		vecCfg.VectorSpace = vectorizer.VectorSpace(cfg.Vectorizer.VectorSpace)
	}
	vecCfg.Lowercase = cfg.Vectorizer.Lowercase
	vecCfg.MinDF = cfg.Vectorizer.MinDF
	vecCfg.MaxDF = cfg.Vectorizer.MaxDF

	if cmd.Flags().Changed("mfi") {
		vecCfg.MaxFeatures, _ = cmd.Flags().GetInt("mfi")
	}
	if cmd.Flags().Changed("ngram-type") {
		s, _ := cmd.Flags().GetString("ngram-type")
		vecCfg.NgramType = vectorizer.NgramType(s)
	}
	if cmd.Flags().Changed("ngram-size") {
		vecCfg.NgramSize, _ = cmd.Flags().GetInt("ngram-size")
	}
	if cmd.Flags().Changed("vector-space") {
		s, _ := cmd.Flags().GetString("vector-space")
		vecCfg.VectorSpace = vectorizer.VectorSpace(s)
	}
	if cmd.Flags().Changed("min-df") {
		vecCfg.MinDF, _ = cmd.Flags().GetFloat64("min-df")
	}
	if cmd.Flags().Changed("max-df") {
		vecCfg.MaxDF, _ = cmd.Flags().GetFloat64("max-df")
	}

	ignoreFile := cfg.Vectorizer.IgnoreFile
	if cmd.Flags().Changed("ignore-file") {
		ignoreFile, _ = cmd.Flags().GetString("ignore-file")
	}
	if ignoreFile != "" {
		ignore, err := stopwords.LoadFile(ignoreFile)
		if err != nil {
			return vecCfg, fmt.Errorf("failed to load ignore file: %w", err)
		}
		vecCfg.Ignore = ignore
	}

	return vecCfg, nil
}

func writeResult(cfg *config.Config, result *stylo.Result) error {
	format := outputFormat
	if format == "" {
		format = cfg.Export.Format
	}
	if format == "" {
		format = "parquet"
	}

	path := outputPath
	if path == "" {
		dir := cfg.Export.Dir
		if dir == "" {
			dir = corpusDir
		}
		path = filepath.Join(dir, "matrix."+format)
	}

	switch strings.ToLower(format) {
	case "parquet":
		if err := export.WriteParquet(path, result.Documents, result.Matrix, result.Space); err != nil {
			return fmt.Errorf("parquet export failed: %w", err)
		}
	case "json":
		if err := export.WriteJSON(path, result.Documents, result.Matrix, result.Space); err != nil {
			return fmt.Errorf("json export failed: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	fmt.Println("Wrote", path)
	return nil
}
