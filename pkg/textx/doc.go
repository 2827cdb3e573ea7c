// Package textx holds the text utilities of the toolbox catalog: morse
// translation, censoring, quoting, pattern highlighting, anonymization and
// spelling numbers out. Like package formula it performs no I/O and reports
// bad arguments with formula.ErrInvalidInput.
package textx
