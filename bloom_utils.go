package gobloom

import (
	"fmt"
	"math"
)

// Sizing returns the bitmap size m and the number of hash probes k for a
// filter expected to hold itemsCount items at a false positive rate of fpRate.
//
//	m = ceil(-n * ln(p) / ln(2)^2)
//	k = ceil(-ln(p) / ln(2))
//
// Both are at least 1.
func Sizing(itemsCount int, fpRate float64) (m uint64, k uint32, err error) {
	if itemsCount <= 0 {
		return 0, 0, fmt.Errorf("%w: got %d", ErrInvalidItemsCount, itemsCount)
	}
	k, err = OptimalK(fpRate)
	if err != nil {
		return 0, 0, err
	}
	m, err = bitmapSize(itemsCount, fpRate)
	if err != nil {
		return 0, 0, err
	}
	return m, k, nil
}

// OptimalK returns the number of hash probes that minimizes the false
// positive rate. It depends only on fpRate, not on the number of items.
func OptimalK(fpRate float64) (uint32, error) {
	if err := checkFPRate(fpRate); err != nil {
		return 0, err
	}
	k := math.Ceil(-math.Log(fpRate) / math.Ln2)
	if k < 1 {
		k = 1
	}
	return uint32(k), nil
}

// Calculate the number of bits needed to hold itemsCount items at fpRate.
func bitmapSize(itemsCount int, fpRate float64) (uint64, error) {
	ln2Sq := math.Ln2 * math.Ln2
	m := math.Ceil(-float64(itemsCount) * math.Log(fpRate) / ln2Sq)
	if m >= float64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d items at fp rate %v", ErrSizeOverflow,
			itemsCount, fpRate)
	}
	if m < 1 {
		m = 1
	}
	return uint64(m), nil
}

func checkFPRate(fpRate float64) error {
	// Written so that NaN fails too.
	if !(fpRate > 0 && fpRate < 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidFPRate, fpRate)
	}
	return nil
}

// Get the bit position for probe i. The combination wraps on overflow; only
// the reduction modulo m matters.
func (f *Filter[T]) getIndex(h1, h2, i uint64) uint64 {
	return (h1 + i*h2) % f.m
}

// (fill ratio)^k: the chance that all k probes of an absent item land on
// set bits.
func estimatedFPRate(fillRatio float64, k uint32) float64 {
	return math.Pow(fillRatio, float64(k))
}
