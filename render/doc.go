// Package render draws mazes and solver results as standalone SVG
// documents.
//
// What
//
//   - SVGRenderer: configurable cell size and palette, zero value usable.
//   - Render: maze walls as line segments, visited cells as shaded squares,
//     the solution as a polyline, start and goal as circles.
//   - WriteFile: Render plus directory creation and file output.
//
// Why
//
//	A solved maze is far easier to judge by eye than by path coordinates.
//	SVG needs no graphics dependency and diffs cleanly in review.
package render
