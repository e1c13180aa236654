package expr

import "math"

// The fold* functions implement constant-folding for each elementary
// function: called only when every argument is already a Constant cell,
// they return plain float64 results, including NaN or an infinity for
// out-of-domain or overflowing inputs.  unary keeps such a cell unfolded
// so Evaluate reports the failure; Pow turns a NaN result into the NaN
// sentinel cell.

func pow(x, y float64) float64       { return math.Pow(x, y) }
func logFold(x float64) float64      { return math.Log(x) }
func absFold(x float64) float64      { return math.Abs(x) }
func expFold(x float64) float64      { return math.Exp(x) }
func sqrtFold(x float64) float64     { return math.Sqrt(x) }
func sinFold(x float64) float64      { return math.Sin(x) }
func cosFold(x float64) float64      { return math.Cos(x) }
func tanFold(x float64) float64      { return math.Tan(x) }
func asinFold(x float64) float64     { return math.Asin(x) }
func acosFold(x float64) float64     { return math.Acos(x) }
func atanFold(x float64) float64     { return math.Atan(x) }
func atan2Fold(y, x float64) float64 { return math.Atan2(y, x) }
func sinhFold(x float64) float64     { return math.Sinh(x) }
func coshFold(x float64) float64     { return math.Cosh(x) }
func tanhFold(x float64) float64     { return math.Tanh(x) }
func minFold(x, y float64) float64   { return math.Min(x, y) }
func maxFold(x, y float64) float64   { return math.Max(x, y) }
