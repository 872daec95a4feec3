package gobloom

type options struct {
	kernel Kernel
}

func defaultOptions() options {
	return options{kernel: Murmur3}
}

// Option configures a Filter at construction.
type Option func(*options)

// WithKernel selects the hash family. The default is Murmur3.
func WithKernel(k Kernel) Option {
	return func(o *options) {
		o.kernel = k
	}
}
