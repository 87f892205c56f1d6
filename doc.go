// SPDX-License-Identifier: MIT

// Package minkowski studies elements of Thompson's group F conjugated by
// the Minkowski question-mark function ?(x).
//
// 🚀 What is in the box?
//
//	A small numeric toolkit, pure Go apart from logging and config:
//		• Binary codec: finite binary expansions of numbers in [0,1]
//		• Question mark: ?(x) and ?⁻¹(x) by depth-bounded recursion
//		• Tree maps: piecewise-linear maps from prefix dictionaries
//		• Conjugation: x ↦ ?⁻¹(f(?(x))) for any tree map f
//		• Sampling: dyadic grids, slopes and CSV tables for plotting
//
// Everything is organized under these subpackages:
//
//	bincode/     Encode / Decode between float64 and bit strings
//	question/    Forward (?) and Inverse (?⁻¹) with an explicit depth
//	treemap/     Dictionary, Validate, Build and Map.Apply
//	conjugate/   Conjugate wraps a Mapper between ? and ?⁻¹
//	sample/      Grid, Map, Slopes and Table.WriteCSV
//	config/      YAML / TOML run configuration
//	cmd/qmconj   command line sampler producing a CSV table
//
// Quick example:
//
//	m := treemap.MustBuild(treemap.GeneratorA())
//	c := conjugate.New(m)
//	y, _ := c.Apply(0.5) // ≈ 2/3
//
//	go install github.com/katalvlaran/minkowski/cmd/qmconj@latest
package minkowski
