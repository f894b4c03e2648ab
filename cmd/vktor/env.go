package main

import (
	"os"
	"strconv"
)

// Defaults match the original vktor-validate.c / vktor-benchmark.c drivers.
const (
	defaultBufSize  = 4096
	defaultMaxDepth = 32
)

func envInt(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func defaultBufSizeFromEnv() int  { return envInt("BUFFSIZE", defaultBufSize) }
func defaultMaxDepthFromEnv() int { return envInt("MAXDEPTH", defaultMaxDepth) }
