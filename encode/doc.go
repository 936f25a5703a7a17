// Package encode renders parsed vcfg documents for the tool surface:
// an indented tree listing (optionally colored), ordered JSON, or
// YAML. There is no vcfg-text writer; the language is parse-only.
package encode
