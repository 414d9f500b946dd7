// Package mmap maps artifact files read-only for LocalStore.
//
// On unix the file is mapped with MAP_SHARED and advised for sequential
// access, since artifacts are read front to back. Elsewhere the file is read
// into memory and the same Mapping API is served from the heap copy.
package mmap
