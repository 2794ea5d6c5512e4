// Package lvlopt is your in-memory toolkit for formulating and solving
// linear and mixed-integer optimization problems — from a small modeling
// facade to a full Benders decomposition driver.
//
// 🚀 What is lvlopt?
//
//	A modern, pure-Go optimization library that brings together:
//		• Modeling: variables with bounds and integrality, named linear
//		  constraints, minimize/maximize objectives
//		• Solving: simplex-backed LP solves (via gonum) with dual values
//		  and extreme-ray certificates
//		• Integrality: a deterministic branch-and-bound layer on top of
//		  the LP relaxation
//		• Decomposition: an iterative Benders master/subproblem driver
//		  with optimality and feasibility cuts
//
// ✨ Why choose lvlopt?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – strict validation, sentinel errors, in-code docs
//   - Pure Go – no cgo, no external solver binaries
//   - Deterministic – identical inputs produce identical runs and answers
//
// Under the hood, everything is organized under two subpackages:
//
//	solver/  — LP/MIP model types, the Solver interface and the built-in
//	           simplex-backed implementation (duals, rays, branch-and-bound)
//	benders/ — the Benders decomposition driver: master problem, dual-form
//	           subproblem, cut bookkeeping and termination logic
//
// Quick sketch of the decomposition loop:
//
//	    master (MIP) ──proposes (t, x)──▶ subproblem (LP, dual form)
//	        ▲                                      │
//	        └──────── optimality/feasibility cut ◀─┘
//
//	the loop stops when the subproblem certifies the master's bound.
//
// Dive into solver/doc.go and benders/doc.go for contracts, complexity
// notes and worked examples.
//
//	go get github.com/katalvlaran/lvlopt
package lvlopt
