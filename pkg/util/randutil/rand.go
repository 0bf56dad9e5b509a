// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package randutil hands out seeded pseudo-random generators so that
// randomized tests and demos can be replayed.
package randutil

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"
)

// SeedEnvVar overrides the seed returned by NewTestRand.
const SeedEnvVar = "COCKROACH_RANDOM_SEED"

// NewPseudoSeed returns a seed derived from the current time.
func NewPseudoSeed() int64 {
	return time.Now().UnixNano()
}

// NewPseudoRand returns a generator seeded from the current time along with
// the seed.
func NewPseudoRand() (*rand.Rand, int64) {
	seed := NewPseudoSeed()
	return rand.New(rand.NewSource(seed)), seed
}

// NewTestRand is like NewPseudoRand but honors SeedEnvVar and prints the seed
// so a failing run can be reproduced.
func NewTestRand() (*rand.Rand, int64) {
	seed := NewPseudoSeed()
	if s, ok := os.LookupEnv(SeedEnvVar); ok {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			panic(fmt.Sprintf("could not parse %s=%q: %v", SeedEnvVar, s, err))
		}
		seed = v
	}
	fmt.Printf("random seed: %d\n", seed)
	return rand.New(rand.NewSource(seed)), seed
}

// NewRandFromSeed returns a generator for the given seed, falling back to a
// time-based seed when seed is zero.
func NewRandFromSeed(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = NewPseudoSeed()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// RandIntSlice returns n integers drawn uniformly from [0, max).
func RandIntSlice(rng *rand.Rand, n, max int) []int {
	res := make([]int, n)
	for i := range res {
		res[i] = rng.Intn(max)
	}
	return res
}
