// Package pentagon implements the framework coverage mapping and geometric
// synthesis engine. It reconciles per-framework requirement lists into
// filtered unified categories, aggregates requirement counts into per-domain
// intensities, and synthesizes a smooth closed outline per framework
// representing its coverage across the five domains.
//
// Every function in this package is pure and stateless: inputs are treated
// as immutable snapshots, nothing is cached, and no errors are raised.
// Malformed or missing data degrades to empty or degenerate results.
package pentagon
