/*
NAME
  rootsolve.go

DESCRIPTION
  rootsolve.go extracts quadratic factors (p, q pairs) from an LP
  polynomial via Bairstow's method, matching `bairstow`/`lpc2pqp` and
  the BAIRSTOW termination struct, plus the formant-extraction kernel
  that converts each p-q pair to a center frequency and bandwidth.

AUTHOR
  Michel T.M. Scheffers (original `bairstow`/`lpc2pqp`); Go port for
  goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dsp

import (
	"math"

	"github.com/ipds-kiel/goassp/errs"
)

// BairstowTermination mirrors the reference library's BAIRSTOW struct:
// an iteration cap plus absolute/relative error tolerances on p and q.
type BairstowTermination struct {
	MaxIter int
	AbsPEps float64
	RelPEps float64
	AbsQEps float64
	RelQEps float64
}

// DefaultTermination returns the conservative defaults the reference
// library documents (100 iterations, 1e-12 absolute / 1e-6 relative).
func DefaultTermination() BairstowTermination {
	return BairstowTermination{MaxIter: 100, AbsPEps: 1e-12, RelPEps: 1e-6, AbsQEps: 1e-12, RelQEps: 1e-6}
}

// RootSolver extracts quadratic factors x^2 + p*x + q from an LPC
// polynomial. The default implementation is Bairstow's method;
// root-solving is an out-of-scope collaborator, so callers may
// substitute their own.
type RootSolver interface {
	Solve(lpc []float64, pqp []float64, term BairstowTermination) (iterations int, err error)
}

// Bairstow is the default RootSolver.
type Bairstow struct{}

// Solve factors the LP polynomial x^M + lpc[1]x^(M-1) + ... + lpc[M]
// (lpc[0] is the leading coefficient, normally 1) into
// M/2 quadratic factors (x^2 + p_i*x + q_i), refining the caller-
// supplied starting estimates in pqp (pqp[2i]=p_i, pqp[2i+1]=q_i) in
// place, matching lpc2pqp's deflation-and-refine structure: each
// factor is found by Bairstow iteration on the current remainder, then
// deflated out before solving for the next.
func (Bairstow) Solve(lpc []float64, pqp []float64, term BairstowTermination) (int, error) {
	M := len(lpc) - 1
	if M < 2 || len(pqp) < M {
		return 0, errs.New(errs.KindBug, errs.CodeBadArgs, "Bairstow: need at least a 2nd-order polynomial and matching pqp buffer")
	}
	if term.MaxIter <= 0 {
		term = DefaultTermination()
	}

	c := make([]float64, M+1)
	for i := 0; i <= M; i++ {
		c[i] = lpc[M-i] // c[i] is the coefficient of x^i
	}
	n := M
	totalIter := 0

	for nf := 0; n >= 2; nf++ {
		p, q := pqp[2*nf], pqp[2*nf+1]
		if p == 0 && q == 0 {
			p, q = 1, 1
		}
		b := make([]float64, n+1)
		d := make([]float64, n+1)

		iter := 0
		for ; iter < term.MaxIter; iter++ {
			b[n], b[n-1] = c[n], c[n-1]-p*b[n]
			for i := n - 2; i >= 0; i-- {
				b[i] = c[i] - p*b[i+1] - q*b[i+2]
			}
			d[n] = 0
			if n >= 1 {
				d[n-1] = b[n]
			}
			for i := n - 2; i >= 0; i-- {
				d[i] = b[i+1] - p*d[i+1] - q*d[i+2]
			}
			det := d[1]*d[1] - d[0]*d[2]
			if det == 0 {
				break
			}
			dp := (b[1]*d[1] - b[0]*d[2]) / det
			dq := (b[0]*d[1] - b[1]*d[0]) / det
			p += dp
			q += dq
			if math.Abs(dp) <= term.AbsPEps+term.RelPEps*math.Abs(p) &&
				math.Abs(dq) <= term.AbsQEps+term.RelQEps*math.Abs(q) {
				iter++
				break
			}
		}
		totalIter += iter
		pqp[2*nf], pqp[2*nf+1] = p, q

		for i := 0; i <= n-2; i++ {
			c[i] = b[i+2]
		}
		n -= 2
	}
	return totalIter, nil
}

// PQToFormant converts a (p, q) quadratic-factor pair — the roots of
// x^2 + p*x + q — to a center frequency and bandwidth in Hz at the
// given sampling frequency, matching ffb2pqp/pqp2rfb's inverse use in
// formant extraction: the complex-conjugate root pair's angle gives
// frequency, its magnitude gives bandwidth.
func PQToFormant(p, q, sampFreq float64) (freq, bandwidth float64) {
	if q <= 0 {
		return 0, 0
	}
	r := math.Sqrt(q)
	theta := math.Acos(-p / (2 * r))
	freq = theta * sampFreq / (2 * math.Pi)
	if r > 0 {
		bandwidth = -math.Log(r) * sampFreq / math.Pi
	}
	return freq, bandwidth
}
