/*
NAME
  durbin.go

DESCRIPTION
  durbin.go implements the Durbin recursion for deriving LP filter
  coefficients and reflection coefficients from an autocorrelation
  function, ported from `asspDurbin` (lpc.c).

AUTHOR
  Michel T.M. Scheffers (original `asspDurbin`, lpc.c); Go port for
  goassp.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dsp

import "github.com/ipds-kiel/goassp/errs"

// Durbin computes LPC coefficients lpc[0..M] (lpc[0] == 1 always) and
// reflection coefficients rfc[0..M-1] from the autocorrelation acf[0..M],
// plus the final squared prediction error, via the Levinson-Durbin
// recursion. Both lpc and rfc are freshly allocated on every call.
//
// A silent (all-zero autocorrelation) frame yields the standard
// all-pass solution (lpc[0]=1, rest zero) rather than an error, matching
// asspDurbin's zero-signal special case.
func Durbin(acf []float64, M int) (lpc, rfc []float64, sqerr float64, err error) {
	if len(acf) < M+1 || M < 1 {
		return nil, nil, 0, errs.New(errs.KindBug, errs.CodeBadArgs, "Durbin: acf too short for order")
	}
	lpc = make([]float64, M+1)
	rfc = make([]float64, M)

	if acf[0] <= 0 {
		lpc[0] = 1
		return lpc, rfc, 0, nil
	}

	lpc[0] = 1
	lpc[1] = -acf[1] / acf[0]
	rfc[0] = lpc[1]
	sqerr = acf[0] + lpc[1]*acf[1]

	for m := 2; m <= M; m++ {
		if sqerr < 0 {
			for i := range lpc {
				lpc[i] = 0
			}
			lpc[0] = 1
			for i := range rfc {
				rfc[i] = 0
			}
			return lpc, rfc, 0, errs.New(errs.KindBug, errs.CodeRound, "Durbin: rounding error, squared error went negative")
		}
		sum := acf[m]
		i, j := 1, m-1
		for ; i < m; i, j = i+1, j-1 {
			sum += lpc[i] * acf[j]
		}
		sum = -sum / sqerr
		i, j = 1, m-1
		for ; i < j; i, j = i+1, j-1 {
			save := lpc[j]
			lpc[j] += sum * lpc[i]
			lpc[i] += sum * save
		}
		if i == j {
			lpc[i] += sum * lpc[i]
		}
		lpc[m] = sum
		rfc[m-1] = sum
		sqerr *= 1 - sum*sum
	}
	return lpc, rfc, sqerr, nil
}
