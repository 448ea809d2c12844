// Package tinyvg implements the TinyVG software rendering pipeline: the
// deterministic, resolution-independent rasterizer that turns a decoded
// stream of draw commands plus a color table into an RGBA pixel
// framebuffer.
//
// # Overview
//
// Rendering a TinyVG image is one call to Render, given a Framebuffer, a
// Header describing the logical coordinate system, a color table, and a
// DrawCommand. Internally Render flattens any curved geometry into
// polylines (internal/flatten), fills them with a scanline winding-rule
// test (internal/scanfill), rasterizes stroked lines as signed-distance
// capsules (internal/capsule), and resolves each covered pixel's color
// against the command's Style (flat, linear gradient, or radial gradient).
//
// # Coordinate system
//
//   - Origin (0,0) at top-left.
//   - X increases right, Y increases down.
//   - Logical coordinates are scaled to framebuffer pixels by
//     framebuffer.width/header.width and framebuffer.height/header.height;
//     these need not be 1 — rendering at a larger framebuffer than the
//     header's logical size and downsampling is how anti-aliasing is
//     achieved (see cmd/tvg-render).
//
// # Determinism
//
// Rendering is single-threaded, synchronous, and allocation-free on the
// hot path: the flattener's scratch buffers are fixed-capacity. The same
// command stream against the same framebuffer dimensions always produces
// the same pixels.
//
// # Scope
//
// This package is the rendering core only. Decoding the TinyVG binary
// container lives in the format package; the CLI front-end lives in
// cmd/tvg-render.
package tinyvg
