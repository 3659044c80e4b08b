// Package memory holds the typed object pool the index service uses
// to recycle extent records. Mutations churn through extents at a high
// rate; pooling keeps the steady state allocation-free.
package memory
