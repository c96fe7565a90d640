// Package gpa computes the credit-weighted grade-point average and its
// two-decimal display rendering. The raw value is kept unrounded; rounding
// happens only at the display boundary.
package gpa
