// Package worktime turns a raw punch history into worked-time totals and an
// overtime balance.
//
// Everything here is a pure function of its inputs: the caller passes the
// event snapshot, the settings snapshot and the current instant, and the
// package never reads a clock or touches storage. The pipeline runs
// PairEvents -> BucketByDay -> Aggregate -> Overtime; Compute chains them.
package worktime
