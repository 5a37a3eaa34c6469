// Package config reads YAML descriptions of finite uniform spaces and of
// completions between them, and builds them.
//
// A document lists spaces by kind (discrete, indiscrete, basis, metric) over
// string-labelled points, then completions naming a source space, a target
// space and an embedding table:
//
//	fuel: 32
//	spaces:
//	  - name: halves
//	    kind: basis
//	    points: [p0, p1, p2, p3]
//	    reflexive: true          # add the diagonal to every entourage
//	    symmetric: true          # add the swap of every pair
//	    entourages:
//	      - [[p0, p1], [p2, p3]]
//	  - name: line
//	    kind: metric
//	    points: [a, b]
//	    distances: [[0, 1], [1, 0]]
//	completions:
//	  - name: self
//	    source: line
//	    target: line
//	    embed: {a: a, b: b}
//
// Targets are made complete with completion.CarrierLimits. Build errors wrap
// one of the sentinels below together with the offending entry name.
package config
