// Package evotour is an in-memory, deterministic genetic-algorithm engine
// for the travelling-salesman problem — from instance modelling to a fully
// reproducible evolution run.
//
// 🚀 What is evotour?
//
//	A small, dependency-light library that brings together:
//		• Instance models: Euclidean point sets & explicit distance tables
//		• Tours: open permutations with cyclic length and canonical form
//		• Operators: tournament selection, order crossover (OX), swap mutation
//		• A generational driver: elitism, monotone best-so-far, per-generation
//		  progress callbacks with population statistics
//
// ✨ Why choose evotour?
//
//   - Deterministic by default – every run is reproducible from a single seed
//   - Rock-solid contracts – sentinel errors, no panics, no hidden state
//   - Library-first – no CLI, no I/O; you own the loop around it
//   - Extensible – bring any Metric (roads, grids, test rigs) to the engine
//
// Under the hood, everything is organized under two subpackages:
//
//	instance/ — Point, Euclidean & Matrix metrics, random instance generator
//	genetic/  — Tour, Population, Options, operators & the Evolve driver
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	four unit-square corners; the optimal cycle visits them in perimeter
//	order and has length 4.
//
// Dive into the package docs of instance/ and genetic/ for contracts,
// complexity notes and runnable examples.
//
//	go get github.com/Bromponie/evotour
package evotour
