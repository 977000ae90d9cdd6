// Package polyzero provides a polylog.Logger implementation backed by zerolog.
// As the polylog interface mirrors that of zerolog, this package is a thin
// wrapper around it covering the subset of the zerolog API the gateway uses.
package polyzero
