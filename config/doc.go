// SPDX-License-Identifier: MIT

// Package config holds the run configuration of the sampling tool: the two
// precision parameters and the tree maps to conjugate.
//
// Files may be YAML (.yaml, .yml) or TOML (.toml):
//
//	# qmconj.yaml
//	binary_depth: 10
//	question_depth: 20
//	validate: true
//	maps:
//	  - name: a
//	    rules: {"00": "0", "01": "10", "1": "11"}
//	  - name: b
//	    rules:
//	      - {source: "000", target: "00"}
//	      - {source: "001", target: "010"}
//	      - {source: "01", target: "011"}
//	      - {source: "1", target: "1"}
//
//	# qmconj.toml
//	binary_depth = 10
//	question_depth = 20
//	[[maps]]
//	name = "a"
//	rules = [{source = "00", target = "0"}, {source = "01", target = "10"}, {source = "1", target = "11"}]
//
// Fields left out keep their defaults (see Default).
package config
