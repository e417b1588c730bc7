// Package identifier provides rinchi.Identifier implementations.
//
// Literal is for molecules that already carry their identifier text. Exec
// delegates to an external identifier generator (Open Babel by default).
// The grpcid subpackage serves and consumes identifiers over gRPC.
package identifier
