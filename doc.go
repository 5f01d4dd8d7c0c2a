// Package itksn provides:
//
// - A byte-oriented codec engine for context-sensitive serial-number grammars
// (Codec, Reader/Writer, Scope)
// - A decoded value model (Enum, Bytes, Int, Text, *Record) that round-trips
// byte-exactly through Encode
// - A stable error model via Issues (JSON Pointer path, code, byte offset)
//
// Design policy:
// - Keep only the engine core in the root package.
// - Place codec builders under dsl/, the pixel schema tables under pixels/,
// the serial-number envelope under serial/, output encodings under render/,
// and the CLI under cmd/itksn.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	sn, err := serial.DecodeString("20UPGFW2123456")
//	num, _ := itksn.Lookup(sn.Identifier, "number")
//	b, err := serial.Encode(sn)
package itksn
