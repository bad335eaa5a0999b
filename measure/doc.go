// Package measure collects spin configurations from a wolff.Sampler and
// reduces them to thermal averages: mean energy and |magnetization|, their
// variances, specific heat, susceptibility and two-point correlations.
package measure
