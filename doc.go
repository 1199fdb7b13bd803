/*
Package quire renders dynamic questionnaires whose question visibility
depends on prior answers.

A questionnaire is declared in a YAML or JSON document: an ordered list of
questions of five kinds (text, boolean, radio, checkbox, dropdown), each
optionally gated by a visibility condition composed of value_check/and/or/not
nodes over earlier answers. Loading validates the document, resolves option
presets, and builds an immutable typed tree. Evaluation and rendering are
pure, synchronous functions from (questionnaire, response snapshot) to text:
they perform no I/O, never mutate the snapshot, and cannot fail on
well-formed input.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/quire"
		"github.com/aretw0/quire/pkg/domain"
	)

	func main() {
		q, err := quire.Load("intake.yaml")
		if err != nil {
			log.Fatal(err)
		}

		responses := domain.Responses{"have_alias": true}
		fmt.Print(q.Render(responses))
	}

Interactive prompting, colorized output and response persistence live in the
internal collaborator packages and are exposed through the quire CLI; the
core engine stays a pure library.
*/
package quire
