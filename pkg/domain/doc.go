// Package domain contains the entities shared across the service: users and
// the calculations they submit. The types carry no infrastructure concerns so
// storage, the calculator and the HTTP layer can all depend on them.
package domain
