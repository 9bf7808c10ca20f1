// Package morph builds morphology graphs from SWC records: a directed
// parent->child forest for topology queries, and an undirected merged
// graph in which reconnection pairs are unioned into single nodes.
package morph
