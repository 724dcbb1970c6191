package solver

// thomasDecompose performs the forward-elimination half of an LDL^T
// factorization of a symmetric tridiagonal matrix with n=len(diag)
// diagonal entries and off[i] coupling rows i and i+1 (so len(off) ==
// n-1). It returns the modified diagonal m and the upper multipliers cp
// used by both back-substitution (thomasSolve) and the variance
// recurrence (package-level computeVariances).
//
// Precondition: the matrix is positive definite (guaranteed whenever any
// likelihood term touches each node), so every m[i] is strictly positive
// and no division by zero occurs.
func thomasDecompose(off, diag []float64) (m, cp []float64) {
	n := len(diag)
	m = make([]float64, n)
	cp = make([]float64, n)

	m[0] = diag[0]
	if n > 1 {
		cp[0] = off[0] / m[0]
	}
	for i := 1; i < n; i++ {
		lower := off[i-1] // symmetric: row i's sub-diagonal equals row i-1's super-diagonal
		m[i] = diag[i] - lower*cp[i-1]
		if i < n-1 {
			cp[i] = off[i] / m[i]
		}
	}
	return m, cp
}

// thomasSolve solves H*x = rhs for the tridiagonal H described by
// (off, diag), given a precomputed decomposition (m, cp) from
// thomasDecompose.
func thomasSolve(off, m, cp, rhs []float64) []float64 {
	n := len(rhs)
	x := make([]float64, n)

	dp := make([]float64, n)
	dp[0] = rhs[0] / m[0]
	for i := 1; i < n; i++ {
		dp[i] = (rhs[i] - off[i-1]*dp[i-1]) / m[i]
	}

	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}
	return x
}

// computeVariances returns the diagonal of H^-1 via a backward
// recurrence: v[n-1] = 1/m[n-1], v[i] = 1/m[i] + cp[i]^2 * v[i+1].
func computeVariances(m, cp []float64) []float64 {
	n := len(m)
	v := make([]float64, n)
	v[n-1] = 1 / m[n-1]
	for i := n - 2; i >= 0; i-- {
		v[i] = 1/m[i] + cp[i]*cp[i]*v[i+1]
	}
	return v
}
