// Package validation cross-checks government-record fields against the
// reference datasets in [refdata] and reports findings as warnings.
//
// # Warnings, never errors
//
// Nothing in this package blocks, corrects, or rejects the data it inspects.
// Every detected inconsistency becomes exactly one Warning appended to the
// caller's Context; the caller alone decides whether to display, log, or
// discard it. When a reference dataset is unavailable the dependent checks
// silently do nothing, so the host behaves as though validation were
// disabled.
//
// # Usage
//
//	data := refdata.NewService(sources, logger, metrics)
//	v := validation.New(data, logger, metrics)
//
//	vc := validation.NewContext()
//	v.PostalTown(ctx, "8001", "Basel", vc, "dwelling_address")
//	v.CantonCode("ZH", vc, "birth_canton")
//	for _, w := range vc.Warnings() {
//		fmt.Println(w)
//	}
//
// Field-name prefixes let the same check serve semantically different fields
// (dwelling address, contact address, birth municipality, ...); passing ""
// uses a generic default.
package validation
