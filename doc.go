// Package mdtex implements the block-rendering stage of a markdown+LaTeX
// to HTML pipeline.
//
// The upstream segmenter classifies a document into delimited blocks:
// inline and fenced code, escaped raw spans, math fences, nestable div
// containers, and macro invocations. This package converts each block to
// an HTML fragment, recursively re-entering the document converter where
// a block's content must itself be parsed (div bodies).
//
// Pipeline per document render:
//
//  1. Harvest page-level \newcommand definitions into the macro set
//  2. Segment the source into an ordered block stream
//  3. Dispatch each block to its conversion strategy in source order
//  4. Number display equations and record \label anchors as they appear
//  5. Materialize evaluable code blocks to disk for the external runner
//
// Blocks are rendered strictly in source order; equation numbering and
// script materialization depend on it. A Service is stateless across
// renders, so one Service may serve concurrent renders as long as each
// call gets its own RenderContext (which Render arranges).
//
// Script execution is out of scope: evaluable blocks end at "body durably
// written to a resolved path", and the Result's Scripts list hands the
// pending work to the host's runner.
package mdtex
