package main

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// region is a read-only view of a whole file. Station keys handed out by the
// parser point into it, so it must outlive every stationMap built from it.
type region struct {
	file *os.File
	data mmap.MMap
}

func openRegion(path string) (*region, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if !info.Mode().IsRegular() {
		_ = file.Close()
		return nil, fmt.Errorf("map %s: not a regular file", path)
	}

	// mmap(2) rejects zero-length mappings.
	if info.Size() == 0 {
		return &region{file: file}, nil
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("map %s: %w", path, err)
	}

	adviseSequential(data)

	return &region{file: file, data: data}, nil
}

func (r *region) Bytes() []byte {
	return r.data
}

func (r *region) Len() int {
	return len(r.data)
}

func (r *region) Close() error {
	var err error
	if r.data != nil {
		err = r.data.Unmap()
		r.data = nil
	}
	if r.file != nil {
		if cerr := r.file.Close(); err == nil {
			err = cerr
		}
		r.file = nil
	}
	return err
}
