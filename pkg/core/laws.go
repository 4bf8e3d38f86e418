package core

import "math"

// Reflect returns the reflection of incoming about normal, following the
// law of reflection (angle of incidence equals angle of reflection). Both
// vectors are expected to be unit length; normal should point against
// incoming.
func Reflect(incoming, normal Vec3) Vec3 {
	return incoming.Subtract(normal.Multiply(2 * incoming.Dot(normal)))
}

// Snell computes the refracted direction of incoming crossing a boundary
// from a medium of refractive index n1 into one of index n2, given the
// surface normal (pointing into the n1 side, against incoming). The second
// return value is false on total internal reflection, in which case the
// first return value is the zero vector rather than a meaningless direction.
func Snell(incoming, normal Vec3, n1, n2 Precision) (Vec3, bool) {
	cosI := -incoming.Dot(normal)
	ratio := n1 / n2
	sin2T := ratio * ratio * (1 - cosI*cosI)
	if sin2T > 1 {
		return Vec3{}, false
	}
	cosT := math.Sqrt(1 - sin2T)
	return incoming.Multiply(ratio).Add(normal.Multiply(ratio*cosI - cosT)), true
}

// Fresnel computes the reflectance for s- and p-polarized light at a
// boundary between media of index n1 and n2, given the cosines of the
// incident and transmitted angles. Rp uses the form
// (n2*cosI - n1*cosT) / (n2*cosI + n1*cosT). At normal incidence
// (cosI=cosT=1) this gives rp = -rs, so the two reflectances rs^2 and rp^2
// agree there.
func Fresnel(n1, n2, cosI, cosT Precision) (rs, rp Precision) {
	rs = (n1*cosI - n2*cosT) / (n1*cosI + n2*cosT)
	rp = (n2*cosI - n1*cosT) / (n2*cosI + n1*cosT)
	return rs, rp
}

// FresnelReflectance returns the unpolarized reflectance, the average of
// the two polarization components' squared amplitudes.
func FresnelReflectance(n1, n2, cosI, cosT Precision) Precision {
	rs, rp := Fresnel(n1, n2, cosI, cosT)
	return 0.5 * (rs*rs + rp*rp)
}

// Schlick approximates the Fresnel reflectance at normal incidence cosine
// cosI for a boundary between indices n1 and n2, cheaper than the exact
// Fresnel equations and accurate enough for shading.
func Schlick(n1, n2, cosI Precision) Precision {
	r0 := (n1 - n2) / (n1 + n2)
	r0 *= r0
	x := 1 - cosI
	return r0 + (1-r0)*x*x*x*x*x
}

// Cauchy evaluates the two-term Cauchy dispersion equation
// n(lambda) = A + B/lambda^2, approximating how refractive index varies
// with wavelength (lambda in micrometers).
func Cauchy(a, b, lambda Precision) Precision {
	return a + b/(lambda*lambda)
}

// Beers applies Beer-Lambert absorption along a path of the given length
// through a medium with absorbance coefficient c, returning the
// transmittance in [0,1].
func Beers(length, absorbance Precision) Precision {
	return math.Exp(-length * absorbance)
}

// PenetrationDepth returns the distance light travels before its intensity
// falls to 1/e of its initial value in a medium of the given absorbance.
func PenetrationDepth(absorbance Precision) Precision {
	if NearlyZero(absorbance) {
		return math.Inf(1)
	}
	return 1 / absorbance
}

// InverseSquare computes the classic inverse-square falloff 1/(d+1)^2,
// offset by one so a light source at distance zero doesn't produce an
// infinite intensity. Negative distances are a caller error and return 0.
func InverseSquare(distance Precision) Precision {
	if distance < 0 {
		return 0
	}
	d := distance + 1
	return 1 / (d * d)
}

// Lambertian returns n points distributed over the unit sphere using a
// golden-ratio (Fibonacci) spiral, giving a deterministic, well-stratified
// sample set for area-light sampling without needing a random source.
func Lambertian(n int) []Vec3 {
	if n <= 0 {
		return nil
	}
	const goldenAngle = math.Pi * (3 - 2.23606797749979) // pi*(3-sqrt(5))
	points := make([]Vec3, n)
	for i := 0; i < n; i++ {
		y := 1 - 2*(Precision(i)+0.5)/Precision(n)
		radius := math.Sqrt(math.Max(0, 1-y*y))
		theta := goldenAngle * Precision(i)
		points[i] = Vec3{X: math.Cos(theta) * radius, Y: y, Z: math.Sin(theta) * radius}
	}
	return points
}
