package search

import "iter"

// SliceSource adapts a slice of any element type into an item source.
func SliceSource[E any](items []E) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// ChannelSource adapts a channel into an item source. The sequence
// ends when the channel is closed; abandoning iteration stops pulling
// but does not close the channel.
func ChannelSource[E any](ch <-chan E) iter.Seq[any] {
	return func(yield func(any) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
