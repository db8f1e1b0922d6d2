// Package walkgraph builds the dense random-walk view of a weighted
// undirected graph that the solver consumes: a strictly positive degree
// vector, a row-stochastic transition matrix P = D⁻¹·A, and the graph
// Laplacian L = D − A (the latter used only for validation).
//
// The adjacency matrix is ingested once, validated (square, symmetric
// within epsilon, non-negative, no isolated vertices), and the derived
// matrices are owned by the Graph and handed out read-only. By
// convention the highest-numbered vertex is the solver's sink.
//
// Path, Cycle and Complete build small unit-weight graphs, convenient
// for tests and examples.
package walkgraph
