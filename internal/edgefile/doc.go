// Package edgefile reads and writes weighted edge lists as TOML documents.
//
// Indexed form:
//
//	name = "graph1"
//	vertices = 6        # optional, keeps trailing isolated vertices
//
//	[[edge]]
//	from = 0
//	to = 1
//	weight = 4
//
// Labeled form (letters A-Z, any case):
//
//	[[labeled_edge]]
//	from = "A"
//	to = "B"
//	weight = 2
//
// A file uses one form or the other, never both.
package edgefile
