package core

import "math"

// QuadraticRoots solves a*t^2 + b*t + c = 0 and returns the unordered pair
// of roots. When a is nearly zero, or the discriminant is negative, both
// returned values are NaN. Roots are not sorted; callers must filter
// non-finite values and pick the smallest positive root themselves.
func QuadraticRoots(a, b, c Precision) (t0, t1 Precision) {
	countSolverInvocation()
	if NearlyZero(a) {
		return math.NaN(), math.NaN()
	}
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return math.NaN(), math.NaN()
	}
	sqrtD := math.Sqrt(discriminant)
	return (-b + sqrtD) / (2 * a), (-b - sqrtD) / (2 * a)
}

// CubicRoots solves a*t^3 + b*t^2 + c*t + d = 0 via the depressed-cubic
// reduction (shift -b/3a) and Cardano's method, classifying by the
// discriminant D = Q^3 + R^2. At least one real root is always returned;
// unavailable roots are NaN. Cubics always have at least one real root, so a
// result of all-NaN indicates a programming error in the caller's
// coefficients rather than a legitimate degenerate case.
func CubicRoots(a, b, c, d Precision) (x0, x1, x2 Precision) {
	countSolverInvocation()
	x0, x1, x2 = math.NaN(), math.NaN(), math.NaN()
	if NearlyZero(a) {
		return
	}
	b, c, d = b/a, c/a, d/a
	shift := -b / 3.0

	Q := (3*c - b*b) / 9.0
	R := (b*(9*c-2*b*b) - 27*d) / 54.0
	D := Q*Q*Q + R*R

	switch {
	case D < 0:
		// Three distinct real roots: trigonometric (acos/cos) solution, which
		// yields all three real values without complex cube roots.
		theta := math.Acos(clampUnit(R / math.Sqrt(-Q*Q*Q)))
		sqrtNegQ := math.Sqrt(-Q)
		x0 = 2*sqrtNegQ*math.Cos(theta/3) + shift
		x1 = 2*sqrtNegQ*math.Cos((theta+2*math.Pi)/3) + shift
		x2 = 2*sqrtNegQ*math.Cos((theta+4*math.Pi)/3) + shift
	case NearlyZero(D):
		// A double or triple root.
		S := math.Cbrt(R)
		x0 = 2*S + shift
		x1 = -S + shift
		x2 = -S + shift
	default:
		// One real root, two complex conjugates; the complex pair is
		// dropped (NaN).
		sqrtD := math.Sqrt(D)
		S := math.Cbrt(R + sqrtD)
		T := math.Cbrt(R - sqrtD)
		x0 = S + T + shift
	}
	return
}

func clampUnit(v Precision) Precision { return math.Max(-1, math.Min(1, v)) }

// QuarticRoots solves a*t^4 + b*t^3 + c*t^2 + d*t + e = 0 using Salzer's
// resolvent-cubic method: build the resolvent cubic from c1 = bd-4e and
// d1 = e(4c-b^2)-d^2, take any real root z of that cubic, and derive the
// four candidate roots from m, n, alpha, beta, gamma=sqrt(alpha+beta) and
// delta=sqrt(alpha-beta). Roots that are complex (their defining
// sqrt/gamma/delta went negative) are masked to NaN; the torus intersection
// is the primary caller, expecting up to 4 real hits.
func QuarticRoots(a, b, c, d, e Precision) (x0, x1, x2, x3 Precision) {
	countSolverInvocation()
	x0, x1, x2, x3 = math.NaN(), math.NaN(), math.NaN(), math.NaN()
	if NearlyZero(a) {
		return
	}
	b, c, d, e = b/a, c/a, d/a, e/a

	c1 := b*d - 4*e
	d1 := e*(4*c-b*b) - d*d
	z0, z1, z2 := CubicRoots(1, -c, c1, d1)
	z := firstFinite(z0, z1, z2)
	if math.IsNaN(z) {
		return
	}

	mSq := 0.25*b*b - c + z
	if mSq < 0 {
		return
	}
	m := math.Sqrt(mSq)

	var n Precision
	if m > RootEpsilon {
		n = (0.25 * (b*z - 2*d)) / m
	} else {
		nSq := 0.25*z*z - e
		if nSq < 0 {
			return
		}
		n = math.Sqrt(nSq)
	}

	alpha := 0.5*b*b - z - c
	beta := 4*n - b*m
	alphaPlusBeta := alpha + beta
	alphaMinusBeta := alpha - beta

	if alphaPlusBeta >= 0 {
		gamma := math.Sqrt(alphaPlusBeta)
		x0 = 0.5 * (-0.5*b + m + gamma)
		x2 = 0.5 * (-0.5*b + m - gamma)
	}
	if alphaMinusBeta >= 0 {
		delta := math.Sqrt(alphaMinusBeta)
		x1 = 0.5 * (-0.5*b - m + delta)
		x3 = 0.5 * (-0.5*b - m - delta)
	}
	return
}

func firstFinite(values ...Precision) Precision {
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v
		}
	}
	return math.NaN()
}

// SmallestPositiveRoot returns the smallest t among roots that is finite and
// strictly greater than tMin, or (0, false) if none qualify.
func SmallestPositiveRoot(tMin Precision, roots ...Precision) (Precision, bool) {
	best := math.Inf(1)
	found := false
	for _, t := range roots {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			continue
		}
		if t > tMin && t < best {
			best = t
			found = true
		}
	}
	if !found {
		return 0, false
	}
	return best, found
}
