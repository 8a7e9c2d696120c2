package families

import (
	"math"

	"go.viam.com/carplan/motionplan/segments"
	"go.viam.com/carplan/spatialmath"
)

// The Reeds-Shepp words below follow the numbering of formulas 8.1 to 8.11 in Reeds & Shepp, "Optimal
// paths for a car that goes both forwards and backwards" (1990). Every generator receives the goal in the
// start's frame with unit turning radius and returns the path starting with a forward left turn; the other
// quadrants are reached through symmetry expansion.

// ReedsShepp returns the 12 base families of a vehicle that can drive forwards and backwards.
func ReedsShepp() []Family {
	return []Family{
		{Name: "L+S+L+", Generate: lpSpLp},
		{Name: "L+S+R+", Generate: lpSpRp},
		{Name: "L+R-L+", Generate: lpRmLp},
		{Name: "L+R-L-", Generate: lpRmLm},
		{Name: "L+R+L-", Generate: lpRpLm},
		{Name: "L+R+L-R-", Generate: lpRpuLmuRm},
		{Name: "L+R-L-R+", Generate: lpRmuLmuRp},
		{Name: "L+R-S-L-", Generate: lpRm90SmLm},
		{Name: "L+S+R+L-", Generate: lpSpRp90Lm},
		{Name: "L+R-S-R-", Generate: lpRm90SmRm},
		{Name: "L+S+L+R-", Generate: lpSpLp90Rm},
		{Name: "L+R-S-L-R+", Generate: lpRm90SmLm90Rp},
	}
}

// leftCircleGoal is the goal's left turning circle center relative to the start's.
func leftCircleGoal(x, y, phi float64) (float64, float64) {
	return spatialmath.CartesianToPolar(x-math.Sin(phi), y-1+math.Cos(phi))
}

// rightCircleGoal is the goal's right turning circle center relative to the start's left circle.
func rightCircleGoal(x, y, phi float64) (float64, float64) {
	return spatialmath.CartesianToPolar(x+math.Sin(phi), y-1-math.Cos(phi))
}

// asinClamped guards asin against arguments pushed just outside [-1, 1] by rounding.
func asinClamped(v float64) float64 {
	return math.Asin(math.Max(-1, math.Min(1, v)))
}

// 8.1: CSC, same turns.
func lpSpLp(x, y, phi float64) segments.Path {
	u, t := leftCircleGoal(x, y, phi)
	v := spatialmath.WrapToPi(phi - t)
	return segments.Path{
		segments.NewElement(t, segments.Left, segments.Forward),
		segments.NewElement(u, segments.Straight, segments.Forward),
		segments.NewElement(v, segments.Left, segments.Forward),
	}
}

// 8.2: CSC, opposite turns.
func lpSpRp(x, y, phi float64) segments.Path {
	rho, t1 := rightCircleGoal(x, y, phi)
	if rho*rho < 4 {
		return nil
	}
	u := math.Sqrt(rho*rho - 4)
	t := spatialmath.WrapToPi(t1 + math.Atan2(2, u))
	v := spatialmath.WrapToPi(t - phi)
	return segments.Path{
		segments.NewElement(t, segments.Left, segments.Forward),
		segments.NewElement(u, segments.Straight, segments.Forward),
		segments.NewElement(v, segments.Right, segments.Forward),
	}
}

// 8.3: C|C|C.
func lpRmLp(x, y, phi float64) segments.Path {
	rho, theta := leftCircleGoal(x, y, phi)
	if rho > 4 {
		return nil
	}
	a := math.Acos(rho / 4)
	t := spatialmath.WrapToPi(theta + math.Pi/2 + a)
	u := spatialmath.WrapToPi(math.Pi - 2*a)
	v := spatialmath.WrapToPi(phi - t - u)
	return segments.Path{
		segments.NewElement(t, segments.Left, segments.Forward),
		segments.NewElement(u, segments.Right, segments.Backward),
		segments.NewElement(v, segments.Left, segments.Forward),
	}
}

// 8.4: C|CC.
func lpRmLm(x, y, phi float64) segments.Path {
	rho, theta := leftCircleGoal(x, y, phi)
	if rho > 4 {
		return nil
	}
	a := math.Acos(rho / 4)
	t := spatialmath.WrapToPi(theta + math.Pi/2 + a)
	u := spatialmath.WrapToPi(math.Pi - 2*a)
	v := spatialmath.WrapToPi(t + u - phi)
	return segments.Path{
		segments.NewElement(t, segments.Left, segments.Forward),
		segments.NewElement(u, segments.Right, segments.Backward),
		segments.NewElement(v, segments.Left, segments.Backward),
	}
}

// 8.4: CC|C.
func lpRpLm(x, y, phi float64) segments.Path {
	rho, theta := leftCircleGoal(x, y, phi)
	if rho > 4 || rho == 0 {
		return nil
	}
	u := math.Acos(1 - rho*rho/8)
	a := asinClamped(2 * math.Sin(u) / rho)
	t := spatialmath.WrapToPi(theta + math.Pi/2 - a)
	v := spatialmath.WrapToPi(t - u - phi)
	return segments.Path{
		segments.NewElement(t, segments.Left, segments.Forward),
		segments.NewElement(u, segments.Right, segments.Forward),
		segments.NewElement(v, segments.Left, segments.Backward),
	}
}

// 8.7: CCu|CuC.
func lpRpuLmuRm(x, y, phi float64) segments.Path {
	rho, theta := rightCircleGoal(x, y, phi)
	if rho > 4 {
		return nil
	}
	var t, u float64
	if rho <= 2 {
		a := math.Acos((rho + 2) / 4)
		t = spatialmath.WrapToPi(theta + math.Pi/2 + a)
		u = spatialmath.WrapToPi(a)
	} else {
		a := math.Acos((rho - 2) / 4)
		t = spatialmath.WrapToPi(theta + math.Pi/2 - a)
		u = spatialmath.WrapToPi(math.Pi - a)
	}
	v := spatialmath.WrapToPi(phi - t + 2*u)
	return segments.Path{
		segments.NewElement(t, segments.Left, segments.Forward),
		segments.NewElement(u, segments.Right, segments.Forward),
		segments.NewElement(u, segments.Left, segments.Backward),
		segments.NewElement(v, segments.Right, segments.Backward),
	}
}

// 8.8: C|CuCu|C.
func lpRmuLmuRp(x, y, phi float64) segments.Path {
	rho, theta := rightCircleGoal(x, y, phi)
	u1 := (20 - rho*rho) / 16
	if rho > 6 || u1 < 0 || u1 > 1 {
		return nil
	}
	u := math.Acos(u1)
	a := asinClamped(2 * math.Sin(u) / rho)
	t := spatialmath.WrapToPi(theta + math.Pi/2 + a)
	v := spatialmath.WrapToPi(t - phi)
	return segments.Path{
		segments.NewElement(t, segments.Left, segments.Forward),
		segments.NewElement(u, segments.Right, segments.Backward),
		segments.NewElement(u, segments.Left, segments.Backward),
		segments.NewElement(v, segments.Right, segments.Forward),
	}
}

// 8.9: C|C[pi/2]SC.
func lpRm90SmLm(x, y, phi float64) segments.Path {
	rho, theta := leftCircleGoal(x, y, phi)
	if rho < 2 {
		return nil
	}
	u := math.Sqrt(rho*rho-4) - 2
	a := math.Atan2(2, u+2)
	t := spatialmath.WrapToPi(theta + math.Pi/2 + a)
	v := spatialmath.WrapToPi(t - phi + math.Pi/2)
	return segments.Path{
		segments.NewElement(t, segments.Left, segments.Forward),
		segments.NewElement(math.Pi/2, segments.Right, segments.Backward),
		segments.NewElement(u, segments.Straight, segments.Backward),
		segments.NewElement(v, segments.Left, segments.Backward),
	}
}

// 8.9: CSC[pi/2]|C.
func lpSpRp90Lm(x, y, phi float64) segments.Path {
	rho, theta := leftCircleGoal(x, y, phi)
	if rho < 2 {
		return nil
	}
	u := math.Sqrt(rho*rho-4) - 2
	a := math.Atan2(u+2, 2)
	t := spatialmath.WrapToPi(theta + math.Pi/2 - a)
	v := spatialmath.WrapToPi(t - phi - math.Pi/2)
	return segments.Path{
		segments.NewElement(t, segments.Left, segments.Forward),
		segments.NewElement(u, segments.Straight, segments.Forward),
		segments.NewElement(math.Pi/2, segments.Right, segments.Forward),
		segments.NewElement(v, segments.Left, segments.Backward),
	}
}

// 8.10: C|C[pi/2]SC, opposite final turn.
func lpRm90SmRm(x, y, phi float64) segments.Path {
	rho, theta := rightCircleGoal(x, y, phi)
	if rho < 2 {
		return nil
	}
	t := spatialmath.WrapToPi(theta + math.Pi/2)
	u := rho - 2
	v := spatialmath.WrapToPi(phi - t - math.Pi/2)
	return segments.Path{
		segments.NewElement(t, segments.Left, segments.Forward),
		segments.NewElement(math.Pi/2, segments.Right, segments.Backward),
		segments.NewElement(u, segments.Straight, segments.Backward),
		segments.NewElement(v, segments.Right, segments.Backward),
	}
}

// 8.10: CSC[pi/2]|C, opposite final turn.
func lpSpLp90Rm(x, y, phi float64) segments.Path {
	rho, theta := rightCircleGoal(x, y, phi)
	if rho < 2 {
		return nil
	}
	t := spatialmath.WrapToPi(theta)
	u := rho - 2
	v := spatialmath.WrapToPi(phi - t - math.Pi/2)
	return segments.Path{
		segments.NewElement(t, segments.Left, segments.Forward),
		segments.NewElement(u, segments.Straight, segments.Forward),
		segments.NewElement(math.Pi/2, segments.Left, segments.Forward),
		segments.NewElement(v, segments.Right, segments.Backward),
	}
}

// 8.11: C|C[pi/2]SC[pi/2]|C.
func lpRm90SmLm90Rp(x, y, phi float64) segments.Path {
	rho, theta := rightCircleGoal(x, y, phi)
	if rho < 4 {
		return nil
	}
	u := math.Sqrt(rho*rho-4) - 4
	a := math.Atan2(2, u+4)
	t := spatialmath.WrapToPi(theta + math.Pi/2 + a)
	v := spatialmath.WrapToPi(t - phi)
	return segments.Path{
		segments.NewElement(t, segments.Left, segments.Forward),
		segments.NewElement(math.Pi/2, segments.Right, segments.Backward),
		segments.NewElement(u, segments.Straight, segments.Backward),
		segments.NewElement(math.Pi/2, segments.Left, segments.Backward),
		segments.NewElement(v, segments.Right, segments.Forward),
	}
}
