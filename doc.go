/*
Package gobloom implements a classic Bloom filter for approximate set
membership.

A filter is sized once from the number of items it is expected to hold and
the false positive rate the caller can tolerate:

	m = ceil(-n * ln(p) / ln(2)^2)   bits
	k = ceil(-ln(p) / ln(2))         probes per item

Contains never reports false for an item that was inserted. For an item that
was never inserted it reports true with a probability close to p, as long as
no more than n items were added. Adding more items than planned raises the
false positive rate but never introduces false negatives.

# Hashing

Each filter draws two random seeds when it is created. An item is hashed once
under each seed and the k bit positions are derived from the two digests by
double hashing (Kirsch and Mitzenmacher):

	position(i) = (h1 + i*h2) mod m

so two filters built with the same parameters produce different false
positives. The hash family is chosen with WithKernel: Murmur3 (default), XXH3
or SipHash. None of them is meant to resist an adversary who can observe the
filter.

# Elements

New accepts strings, byte slices and named types over them. Any other type
can be stored through NewWithEncoder by supplying a function that turns an
item into a stable byte encoding.

# Concurrency

A Filter has no internal locking. Guard it with a sync.RWMutex or similar if
it is shared between goroutines; Contains must be treated as a reader and
Insert as a writer.
*/
package gobloom
