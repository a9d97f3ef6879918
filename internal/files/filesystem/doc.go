// Package filesystem abstracts the file access fixinsert needs so that
// analysis and input discovery can be tested against an in-memory tree.
//
// Files are opened as streams. The analyzer never loads a whole dump into
// memory; it reads one line at a time from the returned io.ReadCloser.
package filesystem
