// Package dsl provides codec builders for byte-oriented serial-number grammars.
//
// Overview
//   - Field codecs: Enum(width, name, code, ...) for labelled fixed-width codes, Bytes(n) for raw
//     pass-through, Greedy() for a trailing field of variable width, Const/OneOf for literals.
//   - Records: Struct().Field(...).OptionalIf(...).Computed(...).Peek(...).MustBuild().
//   - Discrimination: Switch(This(name) | Parent(name), Cases{...}).Default(c).
//   - Gaps: Gap(reason) marks a layout that exists but is undefined; it always fails.
//
// Entry points
//   - Struct(): create a record builder; chain fields then MustBuild()/Build.
//   - Switch(key, cases): select the next codec from a decoded field.
//   - Enum(width, pairs...): alternating name/code pairs, declaration order kept.
//
// File layout (roles)
//   - primitives.go: Enum/Bytes/Greedy/Const/OneOf.
//   - object_builder.go: structBuilder and StructCodec, computed-field helpers (Fail, Number, Is).
//   - union.go: Key/This/Parent, SwitchCodec, GapCodec.
//
// Semantics
//   - Unknown codes are tolerated by Enum (empty Name, raw Code kept) unless Strict() is set.
//     A Switch keyed on such a value fails with invalid_discriminant unless it has a default.
//   - A Switch on a known symbol without a case and without a default fails with
//     no_matching_variant.
//   - Computed fields and Peek views are never written on encode. Computed fields are
//     re-derived; views are checked against the bytes written by the field that owns them.
//
// Quickstart
//
//	carrier := dsl.Struct().
//		Field("module_type", dsl.Enum(1, "Quad_module_carrier", "0", "Linear_triplet_module_carrier", "2")).
//		Field("manufacturer", dsl.Bytes(1)).
//		Field("number", dsl.Greedy()).
//		MustBuild()
//	v, err := itksn.DecodeAll(carrier, []byte("291234"))
package dsl
