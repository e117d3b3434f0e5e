// Package lvrand is a small, deterministic toolkit for pseudo-random numbers
// and their statistical validation.
//
// 🚀 What is lvrand?
//
//	A seeded generator plus everything needed to use and audit it:
//		• lcg      – linear congruential generator (Schrage's method, no overflow)
//		• prng     – Randint, Uniform, Choice, Choices, Shuffle, Sample, Gauss
//		• stattest – chi-square, Kolmogorov–Smirnov, variance and poker tests
//		• cmd/lvrand – command line: generate values, validate samples
//
// ✨ Why lvrand?
//
//   - Reproducible – identical seed ⇒ identical stream, on every platform
//   - Explicit – generators are values you own and pass around; no globals
//   - Honest – degenerate samples are reported as inconclusive, not passed
//
// Under the hood:
//
//	lcg/      — Params, presets (MinStd, MinStd2, Classic), Generator
//	prng/     — Source contract, Locked wrapper, math/rand adapter, sampling
//	stattest/ — tests, Result/Verdict types, Run (all four in parallel)
//
// Quick start:
//
//	g, _ := lcg.New(lcg.WithSeed(12345))
//	die, _ := prng.Randint(g, 1, 6)
//	sample, _ := prng.Draw(g, 10000)
//	rep, _ := stattest.Run(sample)
//	fmt.Println(die, rep.AllPassed())
//
// Not for cryptography: the state is 31 bits and fully predictable.
//
//	go get github.com/katalvlaran/lvrand
package lvrand
