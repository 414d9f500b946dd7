// Package hash provides the CRC32-Castagnoli checksums recorded for every
// artifact.
//
// One-shot:
//
//	sum := hash.CRC32C(data)
//
// While streaming an artifact to a store:
//
//	cw := hash.NewWriter(blob)
//	io.Copy(cw, src)
//	sum, size := cw.Sum32(), cw.Size()
package hash
