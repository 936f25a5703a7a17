// Package ir provides the in-memory representation of parsed vcfg
// documents.
//
// # Overview
//
// A Document is an ordered list of Sections. The first Section is
// always the unnamed root section, which holds keys appearing before
// any [section] header. Each Section holds an ordered list of Keys,
// and each Key is a recursive tagged structure: a scalar string, an
// object of named child keys, or an array of index-named child keys.
//
// The tree is append-only while the parser builds it and read-only
// afterwards. Ownership is strict: a Document owns its Sections, a
// Section owns its Keys, and a Key owns its children. There are no
// back-references or sharing, so dropping a Document drops the whole
// tree.
//
// # Key Types
//
// The Type field indicates a key's shape:
//
//   - NullType: the key was parsed without a value
//   - ScalarType: a string scalar in Scalar
//   - ObjectType: named children in Children
//   - ArrayType: index-named children ("0", "1", ...) in Children
//
// String access to a composite key yields the sentinel markers
// ObjectSentinel and ArraySentinel rather than a payload; the payload
// of a composite lives in its children.
//
// # Lookups
//
// All lookups are first-match on exact names. Duplicate section or key
// names are never rejected or merged; later duplicates are reachable
// only by walking Sections or Children directly.
package ir
