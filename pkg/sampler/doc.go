// Package sampler draws candidate rotations and translations for the
// separator's generate step: a uniform pass for broad container
// coverage, and a normal pass focussed around a reference pose for
// local refinement.
package sampler
