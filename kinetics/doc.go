// Package kinetics holds the rate laws shared by the stochastic simulators:
// stochastic rate constants, reaction propensities, the per-species highest
// order of reaction (HOR) used by tau-leaping error control, and roulette
// selection of the next reaction.
//
// Everything here is a pure function of its inputs. Randomness is never drawn
// inside the package: Roulette takes the uniform variate as an argument so the
// caller's generator fully determines every choice.
package kinetics
