package labelgtc

import (
	"context"

	"github.com/evolbioinfo/labelgtc/tree"
)

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLimit caps the number of alternative trees Resolve returns (the
// solution budget k). The default is 1.
func WithLimit(limit int) Option {
	return func(e *Engine) {
		if limit > 0 {
			e.limit = limit
		}
	}
}

// WithPolytomySolver supplies the adapter used for M-POLYRES and POLYRES
// regimes. Resolve fails with ErrSolverFailure when it is missing,
// whichever regime the gene tree reaches.
func WithPolytomySolver(s PolytomySolver) Option {
	return func(e *Engine) { e.polySolver = s }
}

// WithMinSGT supplies the adapter used to finalize every GLOBAL regime
// instance. Resolve fails with ErrSolverFailure when it is missing,
// whichever regime the gene tree reaches.
func WithMinSGT(s MinSGT) Option {
	return func(e *Engine) { e.minsgt = s }
}

// Engine orchestrates a single gene tree's validation, labelling,
// classification and resolution. It is built once per gene tree and
// run with Resolve.
type Engine struct {
	species   *tree.Tree
	gene      *tree.Tree
	cst       []*tree.Tree
	threshold float64

	limit      int
	polySolver PolytomySolver
	minsgt     MinSGT

	regime      Regime
	specialCase bool
	trees       []*tree.Tree
}

// NewEngine builds an Engine for the given species tree, gene tree and
// covering set of trees, to be binarized against threshold.
func NewEngine(species, gene *tree.Tree, cst []*tree.Tree, threshold float64, opts ...Option) *Engine {
	e := &Engine{
		species:   species,
		gene:      gene,
		cst:       cst,
		threshold: threshold,
		limit:     1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Resolve runs the full pipeline: validate and tag the covering set,
// binarize support, classify the regime, and dispatch to the matching
// resolver, returning up to the engine's limit distinct resolved trees.
func (e *Engine) Resolve(goCtx context.Context) ([]*tree.Tree, error) {
	if e.threshold < 0 || e.threshold > 1 {
		return nil, newError(ErrThresholdOutOfRange, "threshold %v is not in [0,1]", e.threshold)
	}
	if e.polySolver == nil {
		return nil, newError(ErrSolverFailure, "no polytomy solver configured")
	}
	if e.minsgt == nil {
		return nil, newError(ErrSolverFailure, "no minimum supertree solver configured")
	}

	ann := newAnnotations()
	if err := validateAndTagCST(ann, e.gene, e.cst); err != nil {
		return nil, err
	}
	ctpRaw := labelBinary(ann, e.gene, e.threshold, true)
	universe := tree.NewUniverse(e.gene)

	ctx := &Context{
		Species:        e.species,
		Threshold:      e.threshold,
		Budget:         NewBudget(e.limit),
		CTP:            minimalCTP(universe, ctpRaw),
		PolytomySolver: e.polySolver,
		MinSGT:         e.minsgt,
		Go:             goCtx,
		ann:            ann,
		universe:       universe,
	}

	cls := classify(ann, e.gene, e.cst)
	e.regime = cls.regime
	e.specialCase = cls.specialCase

	roots, err := resolveInstance(ctx, e.gene, e.cst)
	if err != nil {
		return nil, err
	}
	roots = dedupeByFingerprint(roots)
	if len(roots) > e.limit {
		roots = roots[:e.limit]
	}

	trees := make([]*tree.Tree, len(roots))
	for i, r := range roots {
		trees[i] = tree.New(r)
	}
	e.trees = trees
	return trees, nil
}

// Regime reports the regime selected by the most recent Resolve call.
func (e *Engine) Regime() Regime { return e.regime }

// SpecialCase reports whether the most recent Resolve call hit one of
// the finer-grained "special case" regimes: POLYRES proper, or the
// MinTRS detection within GLOBAL.
func (e *Engine) SpecialCase() bool { return e.specialCase }

// Trees returns the trees produced by the most recent Resolve call.
func (e *Engine) Trees() []*tree.Tree { return e.trees }
