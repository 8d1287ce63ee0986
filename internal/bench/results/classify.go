package results

import (
	"path/filepath"
	"strings"

	"github.com/DjordjeVuckovic/autocomplete-bench/internal/apperr"
)

const (
	DatasetWikipedia              = "wikipedia"
	DatasetRandom                 = "random"
	DatasetRandomWithDistribution = "random_with_distribution"

	// DefaultVariant labels a file that names a dataset but no variant.
	DefaultVariant = "base"

	filePrefix = "results_"
	fileSuffix = ".csv"
)

// ExpectedDatasets are the datasets charted side by side, in panel order.
var ExpectedDatasets = []string{DatasetWikipedia, DatasetRandom, DatasetRandomWithDistribution}

// Label is the (dataset, variant) pair a result file belongs to.
type Label struct {
	Dataset string
	Variant string
}

func (l Label) String() string {
	return l.Dataset + "/" + l.Variant
}

// Rule maps a file stem (name without "results_" and ".csv") to a label.
// Match reports false when the rule does not apply.
type Rule struct {
	Name  string
	Match func(stem string) (Label, bool)
}

// DatasetRule matches stems that are exactly dataset or start with dataset
// followed by an underscore; the rest of the stem is the variant.
func DatasetRule(dataset string) Rule {
	return Rule{
		Name: dataset,
		Match: func(stem string) (Label, bool) {
			if stem == dataset {
				return Label{Dataset: dataset, Variant: DefaultVariant}, true
			}
			variant, ok := strings.CutPrefix(stem, dataset+"_")
			if !ok || variant == "" {
				return Label{}, false
			}
			return Label{Dataset: dataset, Variant: variant}, true
		},
	}
}

// TokenRule takes the first two underscore-delimited tokens as dataset and variant.
func TokenRule() Rule {
	return Rule{
		Name: "tokens",
		Match: func(stem string) (Label, bool) {
			parts := strings.Split(stem, "_")
			if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
				return Label{}, false
			}
			return Label{Dataset: parts[0], Variant: parts[1]}, true
		},
	}
}

// Classifier evaluates rules in order; the first match wins.
type Classifier struct {
	Rules []Rule
}

// DefaultClassifier checks the multi-word dataset names before the generic
// token split. random_with_distribution comes first since it extends random.
func DefaultClassifier() *Classifier {
	return &Classifier{
		Rules: []Rule{
			DatasetRule(DatasetRandomWithDistribution),
			DatasetRule(DatasetRandom),
			TokenRule(),
		},
	}
}

func (c *Classifier) Classify(filename string) (Label, error) {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(strings.TrimPrefix(base, filePrefix), fileSuffix)

	for _, r := range c.Rules {
		if label, ok := r.Match(stem); ok {
			return label, nil
		}
	}
	return Label{}, apperr.NewValidationf("unrecognized result file name %q", base)
}

// Classify uses DefaultClassifier.
func Classify(filename string) (Label, error) {
	return DefaultClassifier().Classify(filename)
}
