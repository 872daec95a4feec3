package gobloom

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Key is the set of element types that are their own stable byte encoding.
type Key interface {
	~string | ~[]byte
}

// Filter is a Bloom filter sized for an expected number of items and a
// target false positive rate.
//
// A Filter is not safe for concurrent use. Callers sharing one across
// goroutines must guard both Insert and Contains with their own lock.
type Filter[T any] struct {
	bitmap *bitset.BitSet
	m      uint64 // Number of bits in the bitmap.
	k      uint32 // Number of bit positions touched per item.

	// Seeds for hasher A and hasher B. Drawn once in New and never changed.
	seeds  [2]Seed
	kernel Kernel

	encode func(T) []byte
}

// New creates a filter that expects to hold itemsCount items with a false
// positive rate of fpRate. itemsCount must be positive and fpRate must lie
// strictly between 0 and 1.
func New[T Key](itemsCount int, fpRate float64, opts ...Option) (*Filter[T], error) {
	return newFilter(itemsCount, fpRate, func(item T) []byte {
		return []byte(item)
	}, opts)
}

// NewWithEncoder creates a filter for an arbitrary element type. encode must
// return identical bytes for equal items on every call.
func NewWithEncoder[T any](itemsCount int, fpRate float64, encode func(T) []byte,
	opts ...Option) (*Filter[T], error) {
	if encode == nil {
		return nil, ErrNilEncoder
	}
	return newFilter(itemsCount, fpRate, encode, opts)
}

// MustNew is like New but panics if the parameters are out of range.
func MustNew[T Key](itemsCount int, fpRate float64, opts ...Option) *Filter[T] {
	f, err := New[T](itemsCount, fpRate, opts...)
	if err != nil {
		panic(fmt.Sprintf("Failed to create bloom filter: %v", err))
	}
	return f
}

func newFilter[T any](itemsCount int, fpRate float64, encode func(T) []byte,
	opts []Option) (*Filter[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.kernel.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKernel, int(o.kernel))
	}

	m, k, err := Sizing(itemsCount, fpRate)
	if err != nil {
		log.Tracef("Rejected bloom filter parameters (items=%d, fp=%v): %v",
			itemsCount, fpRate, err)
		return nil, err
	}

	f := &Filter[T]{
		bitmap: bitset.New(uint(m)),
		m:      m,
		k:      k,
		seeds:  [2]Seed{randomSeed(), randomSeed()},
		kernel: o.kernel,
		encode: encode,
	}
	log.Debugf("Created bloom filter: items=%d fp=%v m=%d bits (%d bytes) "+
		"k=%d kernel=%v", itemsCount, fpRate, m, (m+7)/8, k, o.kernel)
	return f, nil
}

// Insert adds an item to the filter. Inserting the same item again leaves
// the filter unchanged.
func (f *Filter[T]) Insert(item T) {
	h1, h2 := f.hashKernel(item)

	for i := uint32(0); i < f.k; i++ {
		f.bitmap.Set(uint(f.getIndex(h1, h2, uint64(i))))
	}
}

// Contains reports whether item may have been inserted. False positives are
// possible, false negatives are not.
func (f *Filter[T]) Contains(item T) bool {
	h1, h2 := f.hashKernel(item)

	for i := uint32(0); i < f.k; i++ {
		if !f.bitmap.Test(uint(f.getIndex(h1, h2, uint64(i)))) {
			return false
		}
	}
	return true
}

// Calculate the two base hashes from which all k bit positions are derived.
// Each seed gets its own one-shot digest, so the retained seeds are never
// touched by a query.
func (f *Filter[T]) hashKernel(item T) (uint64, uint64) {
	data := f.encode(item)
	return f.kernel.sum64(f.seeds[0], data), f.kernel.sum64(f.seeds[1], data)
}

// M returns the number of bits in the filter.
func (f *Filter[T]) M() uint64 {
	return f.m
}

// K returns the number of bit positions set per item.
func (f *Filter[T]) K() uint32 {
	return f.k
}

// Kernel returns the hash family used by the filter.
func (f *Filter[T]) Kernel() Kernel {
	return f.kernel
}

// FillRatio returns the fraction of bits currently set.
func (f *Filter[T]) FillRatio() float64 {
	return float64(f.bitmap.Count()) / float64(f.m)
}

// EstimatedFalsePositiveRate estimates the probability that Contains returns
// true for an item that was never inserted, given the bits set so far.
func (f *Filter[T]) EstimatedFalsePositiveRate() float64 {
	return estimatedFPRate(f.FillRatio(), f.k)
}
