// SPDX-License-Identifier: MIT

// Package ssa - random variates for the simulators.
//
// Goals:
//   - Determinism: same seed ⇒ identical trajectories across runs and platforms.
//   - Encapsulation: one generator per simulation call; no package-level state,
//     so concurrent calls never perturb each other's draws.
//   - Single stream: exponential waiting times, Poisson firing counts and
//     roulette uniforms all come from the same source, in a fixed order.
//
// Concurrency:
//   - A generator is NOT goroutine-safe; it lives and dies inside one call.
package ssa

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// pcgStream selects the PCG increment derived from the seed.
const pcgStream uint64 = 0x5eed

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// word with a SplitMix64 finalizer, so nearby seeds give unrelated streams.
func deriveSeed(parent, stream uint64) uint64 {
	var x uint64
	x = parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// generator owns the PCG source of one simulation call.
type generator struct {
	src *rand.PCG
	rng *rand.Rand
}

// newGenerator returns a deterministic generator for seed. Every seed,
// including 0, selects its own stream.
func newGenerator(seed uint64) *generator {
	src := rand.NewPCG(seed, deriveSeed(seed, pcgStream))
	return &generator{src: src, rng: rand.New(src)}
}

// exp draws a waiting time ~ Exponential(rate).
func (g *generator) exp(rate float64) float64 {
	return distuv.Exponential{Rate: rate, Src: g.src}.Rand()
}

// poisson draws a firing count ~ Poisson(lambda). lambda must be > 0.
func (g *generator) poisson(lambda float64) int64 {
	return int64(distuv.Poisson{Lambda: lambda, Src: g.src}.Rand())
}

// uniform draws from [0, 1).
func (g *generator) uniform() float64 {
	return g.rng.Float64()
}
