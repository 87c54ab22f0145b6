// Package textbot turns a topic into a short list of annotated sentences.
// It fetches an encyclopedia article, strips markup and parenthetical date
// ranges, splits the text into sentences, keeps the first few and attaches
// keywords from a natural-language service to each of them.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., wikipedia/, watson/, gemini/).
package textbot
