//go:build unix

package main

import "golang.org/x/sys/unix"

// adviseSequential tells the kernel each worker walks its chunk front to back.
// It is only a hint; errors are ignored.
func adviseSequential(data []byte) {
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
}
