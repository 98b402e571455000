// Command propositions parses propositional logic formulas and prints their
// trees.
package main

import (
	"log"
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
