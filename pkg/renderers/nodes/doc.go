// Package nodes renders the features section as a gomponents node tree. Tile
// and Section are pure functions of their inputs, so hosts that already build
// pages with gomponents can embed the section directly instead of going
// through the byte-oriented Renderer.
package nodes
