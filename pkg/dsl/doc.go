/*
Package dsl provides a fluent builder for constructing Adventures programmatically.

It allows developers to define a story graph in Go code using a type-safe,
chainable API instead of hand-writing JSON or YAML documents. This is useful
for seeding demo content, generating fixtures in tests, and leveraging IDE
autocompletion while sketching a narrative.

Example usage:

	package main

	import (
		"github.com/fableworks/fable/pkg/dsl"
	)

	func main() {
		b := dsl.New("The Cave")

		b.Node("entrance").
			Title("The Entrance").
			Text("A dark cave mouth yawns before you.").
			Start().
			Choice("Step inside", "hall")

		b.Node("hall").
			Title("The Hall").
			Text("Your torch gutters out.").
			Ending()

		adv, err := b.Build()
		// ... persist adv through an AdventureStore or the HTTP client
		_ = adv
		_ = err
	}
*/
package dsl
