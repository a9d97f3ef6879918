// Package scanner expands the file arguments given to fixinsert into the
// ordered list of files to analyze.
//
// Plain file arguments are kept as given, in argument order. Directory
// arguments are walked recursively and contribute the files whose extension
// matches the configured list, in lexical path order.
//
// The scanner is filesystem-agnostic through filesystem.FileSystemProvider,
// enabling tests with in-memory trees.
package scanner
