// Package scan provides the lexical layer of the vcfg parser: a
// cursor over an in-memory buffer with skipping primitives for
// whitespace and comments, and bounded reads for quoted and delimited
// runs.
//
// All primitives are bounded by the buffer end; none read past it.
// Skipping primitives return the number of bytes consumed and consume
// nothing when their construct is absent, which is what lets the
// parser's top loop detect an unrecognized byte as "all recognizers
// returned zero".
package scan
