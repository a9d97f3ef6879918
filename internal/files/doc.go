// Package files groups input discovery for fixinsert.
//
// Subpackages:
//   - filesystem: OS and in-memory file providers with streaming reads
//   - scanner: expands file and directory arguments into an ordered input list
package files
