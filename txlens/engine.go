package txlens

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// Classifier is one pure rule over a leg set. Classify returns nil when the
// rule does not apply; a non-nil result with IsRelevant=false is a candidate
// the engine deliberately skips (fee-only uses this).
type Classifier interface {
	Name() string
	Priority() int
	Classify(ctx *ClassifierContext) *TransactionClassification
}

// ClassifierContext is the shared, read-only input handed to every rule.
// WalletAddress empty means observer mode: the fee payer stands in as the
// initiator.
type ClassifierContext struct {
	Legs          []TxLeg
	Tx            *RawTransaction
	WalletAddress string
}

// Engine dispatches the registered classifiers in descending priority order
// and returns the first relevant result. Build it once at startup; Classify
// is then safe for concurrent use.
type Engine struct {
	Log         *logrus.Logger
	classifiers []Classifier
}

// NewEngine builds an engine carrying the full default classifier set.
func NewEngine() *Engine {
	e := NewEngineWith(DefaultClassifiers()...)
	return e
}

// NewEngineWith builds an engine with exactly the given classifiers.
func NewEngineWith(classifiers ...Classifier) *Engine {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	log.SetLevel(logrus.WarnLevel)

	e := &Engine{Log: log}
	for _, c := range classifiers {
		e.RegisterClassifier(c)
	}
	return e
}

// RegisterClassifier appends a rule and re-sorts the dispatch order. Equal
// priorities keep their registration order. Configuration-time only: must not
// run concurrently with Classify.
func (e *Engine) RegisterClassifier(c Classifier) {
	e.classifiers = append(e.classifiers, c)
	sort.SliceStable(e.classifiers, func(i, j int) bool {
		return e.classifiers[i].Priority() > e.classifiers[j].Priority()
	})
}

// Classifiers returns the current dispatch order.
func (e *Engine) Classifiers() []Classifier {
	out := make([]Classifier, len(e.classifiers))
	copy(out, e.classifiers)
	return out
}

// Classify runs the rule chain over one transaction and never returns nil:
// when nothing both matches and is relevant, the canonical "other" value
// comes back.
func (e *Engine) Classify(legs []TxLeg, tx *RawTransaction, walletAddress string) *TransactionClassification {
	ctx := &ClassifierContext{
		Legs:          legs,
		Tx:            tx,
		WalletAddress: walletAddress,
	}

	for _, c := range e.classifiers {
		result := c.Classify(ctx)
		if result == nil {
			continue
		}
		if !result.IsRelevant {
			continue
		}
		if e.Log != nil {
			e.Log.WithFields(logrus.Fields{
				"classifier": c.Name(),
				"type":       result.PrimaryType,
				"confidence": result.Confidence,
			}).Debug("classified transaction")
		}
		return result
	}

	return Unclassified()
}

// Initiator resolves whose perspective the rules compute: the supplied wallet
// when present, otherwise the fee payer. ok is false when neither exists.
func (ctx *ClassifierContext) Initiator() (string, bool) {
	if ctx.WalletAddress != "" {
		return ctx.WalletAddress, true
	}
	if ctx.Tx == nil {
		return "", false
	}
	return ctx.Tx.FeePayer()
}
