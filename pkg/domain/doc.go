/*
Package domain contains the core domain models and business logic for the Quire engine.

It defines the fundamental entities of a questionnaire, such as Questions, Options,
and visibility Conditions. This package is kept pure and free of external dependencies
like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Questionnaire: An ordered collection of questions with a title.
  - Question: A single prompt (text, boolean, radio, checkbox, or dropdown).
  - Condition: A composable visibility rule (value check, and, or, not).
  - Responses: The set of collected answers, keyed by question ID.
*/
package domain
