// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzo1x

// defaultSkipTrigger and maxSkipTrigger bound CompressOptions.SkipTrigger.
const (
	defaultSkipTrigger = 5
	maxSkipTrigger     = 16
)

// CompressOptions configures the compressor. A nil *CompressOptions is
// accepted everywhere one is asked for and behaves like DefaultCompressOptions().
type CompressOptions struct {
	// SkipTrigger controls how aggressively the match search skips
	// ahead through incompressible input: after a run of misses, the
	// scan advances by max(1, misses>>SkipTrigger) bytes instead of 1.
	// Range 0..=16; higher values scan faster but can miss matches in
	// data that becomes compressible again after a long literal run.
	SkipTrigger int
}

// DefaultCompressOptions returns options with SkipTrigger at its default.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{SkipTrigger: defaultSkipTrigger}
}

func (o *CompressOptions) skipTrigger() uint {
	trigger := defaultSkipTrigger
	if o != nil {
		trigger = o.SkipTrigger
	}
	if trigger < 0 {
		trigger = 0
	}
	if trigger > maxSkipTrigger {
		trigger = maxSkipTrigger
	}
	return uint(trigger)
}
