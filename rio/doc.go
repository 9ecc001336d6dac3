// Package rio is the file and variable glue around the shim: plain text
// read/write helpers and JSON variable load/store.
//
// Variables are moved between a JSON file and a caller-supplied Storage
// (an *rshim.Object works) or an explicit Bindings table of assignment
// functions. Nothing is evaluated: a name either has a binding or the call
// fails with ErrUnboundVariable.
//
// JSON objects decode into *rshim.Object so key order survives and Names
// reports keys in file order.
package rio
