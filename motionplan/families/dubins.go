package families

import (
	"math"

	"go.viam.com/carplan/motionplan/segments"
	"go.viam.com/carplan/spatialmath"
)

// Dubins returns the six words of a vehicle that only drives forwards. Turn angles are wrapped to
// [0, 2pi) so that no element ever needs reverse gear.
func Dubins() []Family {
	return []Family{
		{Name: "LSL", Generate: dubinsLSL},
		{Name: "RSR", Generate: dubinsRSR},
		{Name: "LSR", Generate: dubinsLSR},
		{Name: "RSL", Generate: dubinsRSL},
		{Name: "LRL", Generate: dubinsLRL},
		{Name: "RLR", Generate: dubinsRLR},
	}
}

func forward(param float64, steering segments.Steering) segments.Element {
	return segments.NewElement(param, steering, segments.Forward)
}

func dubinsLSL(x, y, phi float64) segments.Path {
	u, t := spatialmath.CartesianToPolar(x-math.Sin(phi), y-1+math.Cos(phi))
	t = spatialmath.WrapTo2Pi(t)
	return segments.Path{
		forward(t, segments.Left),
		forward(u, segments.Straight),
		forward(spatialmath.WrapTo2Pi(phi-t), segments.Left),
	}
}

func dubinsRSR(x, y, phi float64) segments.Path {
	u, t := spatialmath.CartesianToPolar(x+math.Sin(phi), -y-1+math.Cos(phi))
	t = spatialmath.WrapTo2Pi(t)
	return segments.Path{
		forward(t, segments.Right),
		forward(u, segments.Straight),
		forward(spatialmath.WrapTo2Pi(-phi-t), segments.Right),
	}
}

func dubinsLSR(x, y, phi float64) segments.Path {
	rho, t1 := spatialmath.CartesianToPolar(x+math.Sin(phi), y-1-math.Cos(phi))
	if rho*rho < 4 {
		return nil
	}
	u := math.Sqrt(rho*rho - 4)
	t := spatialmath.WrapTo2Pi(t1 + math.Atan2(2, u))
	return segments.Path{
		forward(t, segments.Left),
		forward(u, segments.Straight),
		forward(spatialmath.WrapTo2Pi(t-phi), segments.Right),
	}
}

func dubinsRSL(x, y, phi float64) segments.Path {
	rho, t1 := spatialmath.CartesianToPolar(x-math.Sin(phi), -y-1-math.Cos(phi))
	if rho*rho < 4 {
		return nil
	}
	u := math.Sqrt(rho*rho - 4)
	t := spatialmath.WrapTo2Pi(t1 + math.Atan2(2, u))
	return segments.Path{
		forward(t, segments.Right),
		forward(u, segments.Straight),
		forward(spatialmath.WrapTo2Pi(t+phi), segments.Left),
	}
}

// dubinsLRL uses the middle arc longer than pi; the short solution of the same triangle is never optimal.
func dubinsLRL(x, y, phi float64) segments.Path {
	rho, theta := spatialmath.CartesianToPolar(x-math.Sin(phi), y-1+math.Cos(phi))
	if rho > 4 {
		return nil
	}
	u := 2*math.Pi - 2*math.Asin(rho/4)
	t := spatialmath.WrapTo2Pi(theta + u/2)
	return segments.Path{
		forward(t, segments.Left),
		forward(u, segments.Right),
		forward(spatialmath.WrapTo2Pi(phi-t+u), segments.Left),
	}
}

func dubinsRLR(x, y, phi float64) segments.Path {
	rho, theta := spatialmath.CartesianToPolar(x+math.Sin(phi), -y-1+math.Cos(phi))
	if rho > 4 {
		return nil
	}
	u := 2*math.Pi - 2*math.Asin(rho/4)
	t := spatialmath.WrapTo2Pi(theta + u/2)
	return segments.Path{
		forward(t, segments.Right),
		forward(u, segments.Left),
		forward(spatialmath.WrapTo2Pi(-phi-t+u), segments.Right),
	}
}
