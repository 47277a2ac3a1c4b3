// Package interp implements the interpolation engine: four classical
// interpolation and extrapolation methods behind one calling convention, a
// fallback coordinator, and human-readable derivation traces.
//
// # Methods
//
//   - Linear: piecewise-linear through consecutive samples; targets outside
//     the observed range extend the first or last segment.
//   - Polynomial: least-degree exact fit of degree min(n-1, 3), or a
//     least-squares fit when the series is longer. The explain path uses the
//     full Newton divided-difference table.
//   - Spline: not-a-knot cubic spline; the boundary cubics extend beyond the
//     observed range.
//   - Lagrange: the unique degree n-1 polynomial through every sample,
//     evaluated in barycentric form for series longer than ten points.
//
// # Fallback
//
// The Engine runs the requested method and, when it fails numerically, walks
// the chain Lagrange → Polynomial → Linear, Polynomial → Linear or
// Spline → Linear. A spline over fewer than three samples executes Linear
// directly. The returned Outcome records which method actually produced the
// values; when even Linear fails the Engine returns *errs.InterpolationFailure.
//
// # Concurrency
//
// Methods and the Engine hold only immutable configuration, so a single
// Engine may serve any number of goroutines.
package interp
