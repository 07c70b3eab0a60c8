// Package encryption applies the symmetric ciphers to files.
// Files are processed concurrently and every output is written atomically.
package encryption
