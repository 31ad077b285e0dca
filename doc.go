// Package safejson provides:
//
//   - An algebraic error-handling core (Option, Result, Error) for fallible JSON access
//   - Error values that aggregate every failure in a batch into one deduplicated message set
//   - Traverse/Sequence: all-or-nothing conversion over sequences that reports every bad element
//   - A typed accessor layer over tree.Node (property lookup, scalar coercion, element extraction)
//
// Design policy:
//
//   - Only public APIs live in the root package; decoding detail is under internal/.
//   - The JSON tree type lives in tree/, codecs under codec/, and the CLI under cmd/safejson.
//   - No accessor ever panics or returns a native error for ordinary failure; the only
//     Result-to-panic boundary is MustUnwrap.
//
// Typical usage:
//
//	n, err := tree.FromJSON(data)
//	obj := safejson.AsObject(n)
//	count := safejson.BindResult(obj, func(o *tree.Object) safejson.Result[int64] {
//		return safejson.GetIntProperty(o, "count")
//	})
//	count.Match(use, report)
//
// A caller validating a structure with several invalid fields receives a single
// failed Result whose Error carries one message per invalid field.
package safejson
