// Package model defines stable boundary types for API layers.
//
// The encoded RInChI bytes and their CID are unaffected by any projection.
// These structs are the only types intended for direct JSON/YAML
// serialization by consumers.
package model
