package safejson

// TraverseOpt bundles execution options for TraverseParallel. It tunes
// execution strategy only; the aggregation contract is identical to the
// sequential Traverse.
type TraverseOpt struct {
	// MaxConcurrency caps the number of in-flight element evaluations.
	// Values <= 0 mean one goroutine per element.
	MaxConcurrency int
}
