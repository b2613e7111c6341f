/*
Package dsl provides a Go DSL for programmatically constructing flowdoc graphs.

It allows developers to define flow graphs using a type-safe, fluent builder
pattern instead of relying on external YAML files. This is particularly useful
for embedding flowdoc into an orchestrator that already knows its own graph,
and for unit tests.

Example usage:

	package main

	import (
		"github.com/rtakeda/flowdoc/pkg/dsl"
	)

	func main() {
		b := dsl.New()

		b.Add("fetch").
			Entry().
			Go("validate")

		b.Add("validate").
			GoIf("retry").
			Terminal()

		b.Add("retry").
			Go("fetch")

		// The resulting builder satisfies ports.GraphSource.
		g, _ := b.Build()
		_ = g
	}
*/
package dsl
