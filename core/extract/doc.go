// Package extract locates and parses a JSON value inside the noisy text that
// text-generation providers return. Because models frequently wrap JSON in
// narrative prose, markdown code fences, or truncate output mid-structure,
// [ExtractJSON] applies a cascade of increasingly permissive strategies —
// direct parse, fenced code block, bracket-matched substring, and lenient
// repair — before falling back to a typed [*ParseError].
//
// [ExtractArrayItems] is an independent best-effort extractor that salvages
// the syntactically complete leading items of a truncated or malformed array.
package extract
