//go:build !unix

package main

func adviseSequential([]byte) {}
