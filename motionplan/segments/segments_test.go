package segments

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestNewElementCanonical(t *testing.T) {
	e := NewElement(-1.5, Left, Forward)
	test.That(t, e.Param, test.ShouldEqual, 1.5)
	test.That(t, e.Gear, test.ShouldEqual, Backward)
	test.That(t, e.Steering, test.ShouldEqual, Left)

	e = NewElement(-2, Straight, Backward)
	test.That(t, e.Param, test.ShouldEqual, 2.)
	test.That(t, e.Gear, test.ShouldEqual, Forward)

	e = NewElement(0.5, Right, Backward)
	test.That(t, e, test.ShouldResemble, Element{Param: 0.5, Steering: Right, Gear: Backward})

	p := NewPivot(-math.Pi/2, Left, Forward)
	test.That(t, p.Pivot, test.ShouldBeTrue)
	test.That(t, p.Param, test.ShouldEqual, math.Pi/2)
	test.That(t, p.Gear, test.ShouldEqual, Backward)
}

func TestCanonicalizationKeepsMotion(t *testing.T) {
	for _, s := range []Steering{Left, Right, Straight} {
		for _, g := range []Gear{Forward, Backward} {
			for _, v := range []float64{-2.5, -0.1, 0, 0.3, 4} {
				e := NewElement(v, s, g)
				test.That(t, e.Param, test.ShouldBeGreaterThanOrEqualTo, 0.)
				// the signed heading change and travel are the same as the raw value describes
				test.That(t, e.DeltaTheta(), test.ShouldAlmostEqual, v*s.Sign()*g.Sign())
				test.That(t, e.Param*e.Gear.Sign(), test.ShouldAlmostEqual, v*g.Sign())
			}
		}
	}
}

func TestSigns(t *testing.T) {
	test.That(t, Left.Sign(), test.ShouldEqual, 1.)
	test.That(t, Right.Sign(), test.ShouldEqual, -1.)
	test.That(t, Straight.Sign(), test.ShouldEqual, 0.)
	test.That(t, Forward.Sign(), test.ShouldEqual, 1.)
	test.That(t, Backward.Sign(), test.ShouldEqual, -1.)
	test.That(t, Left.Negate(), test.ShouldEqual, Right)
	test.That(t, Straight.Negate(), test.ShouldEqual, Straight)
	test.That(t, Forward.Flip(), test.ShouldEqual, Backward)
}

func TestPathLengthAndWord(t *testing.T) {
	p := Path{
		NewElement(1, Left, Forward),
		NewElement(2, Straight, Forward),
		NewElement(0.5, Right, Backward),
	}
	test.That(t, p.Length(), test.ShouldAlmostEqual, 3.5)
	test.That(t, p.WorldLength(2), test.ShouldAlmostEqual, 7)
	test.That(t, p.Word(), test.ShouldEqual, "L+S+R-")
	test.That(t, p.HasReverse(), test.ShouldBeTrue)
	test.That(t, p.IsFinite(), test.ShouldBeTrue)
	test.That(t, Path{NewElement(math.NaN(), Left, Forward)}.IsFinite(), test.ShouldBeFalse)

	var empty Path
	test.That(t, empty.Length(), test.ShouldEqual, 0.)
	test.That(t, empty.Word(), test.ShouldEqual, "")
}

func TestCompactAndClone(t *testing.T) {
	p := Path{
		NewElement(0, Left, Forward),
		NewElement(2, Straight, Forward),
		NewElement(0, Right, Forward),
	}
	c := p.Compact()
	test.That(t, len(c), test.ShouldEqual, 1)
	test.That(t, c[0].Steering, test.ShouldEqual, Straight)
	test.That(t, len(p), test.ShouldEqual, 3)

	noisy := Path{
		NewElement(1, Left, Backward),
		NewElement(0.5, Right, Forward),
		NewElement(1e-15, Left, Backward),
	}
	test.That(t, noisy.Word(), test.ShouldEqual, "L-R+L-")
	c = noisy.Compact()
	test.That(t, c.Word(), test.ShouldEqual, "L-R+")
	test.That(t, Path{NewElement(1e-6, Straight, Forward)}.Compact().Word(), test.ShouldEqual, "S+")

	cl := p.Clone()
	cl[1].Param = 7
	test.That(t, p[1].Param, test.ShouldEqual, 2.)
	test.That(t, Path(nil).Clone(), test.ShouldBeNil)
}

func TestSymmetryRoundTrip(t *testing.T) {
	p := Path{
		NewElement(1, Left, Forward),
		NewElement(math.Pi/2, Right, Backward),
		NewElement(2, Straight, Backward),
		NewPivot(0.25, Left, Forward),
	}
	test.That(t, Reflect(Reflect(p)).Equal(p), test.ShouldBeTrue)
	test.That(t, Timeflip(Timeflip(p)).Equal(p), test.ShouldBeTrue)
	test.That(t, Reflect(Timeflip(p)).Equal(Timeflip(Reflect(p))), test.ShouldBeTrue)

	tf := Timeflip(p)
	for i := range p {
		test.That(t, tf[i].Gear, test.ShouldEqual, p[i].Gear.Flip())
		test.That(t, tf[i].Steering, test.ShouldEqual, p[i].Steering)
		test.That(t, tf[i].Param, test.ShouldEqual, p[i].Param)
	}
	rf := Reflect(p)
	for i := range p {
		test.That(t, rf[i].Steering, test.ShouldEqual, p[i].Steering.Negate())
		test.That(t, rf[i].Gear, test.ShouldEqual, p[i].Gear)
	}

	// transforms never alias their input
	tf[0].Param = 99
	test.That(t, p[0].Param, test.ShouldEqual, 1.)

	test.That(t, Timeflip(nil), test.ShouldBeNil)
	test.That(t, Reflect(nil), test.ShouldBeNil)
}

func TestSymmetryApply(t *testing.T) {
	p := Path{NewElement(1, Left, Forward), NewElement(1, Straight, Forward)}
	test.That(t, Identity.Apply(p).Equal(p), test.ShouldBeTrue)
	test.That(t, TimeflipSymmetry.Apply(p).Equal(Timeflip(p)), test.ShouldBeTrue)
	test.That(t, ReflectSymmetry.Apply(p).Equal(Reflect(p)), test.ShouldBeTrue)
	test.That(t, TimeflipReflectSymmetry.Apply(p).Equal(Reflect(Timeflip(p))), test.ShouldBeTrue)

	test.That(t, Identity.PreservesGear(), test.ShouldBeTrue)
	test.That(t, ReflectSymmetry.PreservesGear(), test.ShouldBeTrue)
	test.That(t, TimeflipSymmetry.PreservesGear(), test.ShouldBeFalse)
	test.That(t, TimeflipReflectSymmetry.PreservesGear(), test.ShouldBeFalse)

	x, y, phi := TimeflipReflectSymmetry.Goal(1, 2, 3)
	test.That(t, []float64{x, y, phi}, test.ShouldResemble, []float64{-1, -2, 3})
}
