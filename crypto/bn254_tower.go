package crypto

// BN254 (alt_bn128) base field and its tower of extensions, as required
// by the Groth16 pairing check the prover oracle uses to verify the
// wrapper circuit's proof (internal/groth16.Verify, BN254PairingCheck
// below in bn254_pairing.go):
//
//	F_p     base field
//	F_p^2 = F_p[i]   / (i^2 + 1)       -- G2 point coordinates
//	F_p^6 = F_p^2[v] / (v^3 - (9+i))
//	F_p^12 = F_p^6[w] / (w^2 - v)       -- the pairing's target group G_T
//
//	p = 21888242871839275222246405745257275088696311157297823662689037894645226208583
//
// Every other arithmetic helper in this package (G1/G2 point operations,
// the Miller loop, final exponentiation) builds on these four levels.

import "math/big"

// --- F_p ---

var (
	// bn254P is the base field modulus.
	bn254P, _ = new(big.Int).SetString("21888242871839275222246405745257275088696311157297823662689037894645226208583", 10)
	// bn254N is the curve order (number of points on E(F_p)).
	bn254N, _ = new(big.Int).SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)
	// bn254B is the curve coefficient in y^2 = x^3 + b.
	bn254B = big.NewInt(3)
)

// fpAdd returns (a + b) mod p.
func fpAdd(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, bn254P)
}

// fpSub returns (a - b) mod p.
func fpSub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, bn254P)
}

// fpMul returns (a * b) mod p.
func fpMul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, bn254P)
}

// fpNeg returns (-a) mod p.
func fpNeg(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	return new(big.Int).Sub(bn254P, new(big.Int).Mod(a, bn254P))
}

// fpInv returns a^(-1) mod p using big.Int.ModInverse.
func fpInv(a *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, bn254P)
}

// fpSqr returns a^2 mod p.
func fpSqr(a *big.Int) *big.Int {
	r := new(big.Int).Mul(a, a)
	return r.Mod(r, bn254P)
}

// fpExp returns a^e mod p.
func fpExp(a, e *big.Int) *big.Int {
	return new(big.Int).Exp(a, e, bn254P)
}

// --- F_p^2 ---

// fp2 represents an element of F_p^2 as (a0 + a1*i).
type fp2 struct {
	a0, a1 *big.Int
}

func newFp2(a0, a1 *big.Int) *fp2 {
	return &fp2{a0: new(big.Int).Set(a0), a1: new(big.Int).Set(a1)}
}

func fp2Zero() *fp2 {
	return &fp2{a0: new(big.Int), a1: new(big.Int)}
}

func fp2One() *fp2 {
	return &fp2{a0: big.NewInt(1), a1: new(big.Int)}
}

func (e *fp2) isZero() bool {
	return e.a0.Sign() == 0 && e.a1.Sign() == 0
}

func (e *fp2) equal(f *fp2) bool {
	a0 := new(big.Int).Mod(e.a0, bn254P)
	a1 := new(big.Int).Mod(e.a1, bn254P)
	b0 := new(big.Int).Mod(f.a0, bn254P)
	b1 := new(big.Int).Mod(f.a1, bn254P)
	return a0.Cmp(b0) == 0 && a1.Cmp(b1) == 0
}

// fp2Add returns e + f in F_p^2.
func fp2Add(e, f *fp2) *fp2 {
	return &fp2{
		a0: fpAdd(e.a0, f.a0),
		a1: fpAdd(e.a1, f.a1),
	}
}

// fp2Sub returns e - f in F_p^2.
func fp2Sub(e, f *fp2) *fp2 {
	return &fp2{
		a0: fpSub(e.a0, f.a0),
		a1: fpSub(e.a1, f.a1),
	}
}

// fp2Mul returns e * f in F_p^2.
// (a0 + a1*i)(b0 + b1*i) = (a0*b0 - a1*b1) + (a0*b1 + a1*b0)*i
func fp2Mul(e, f *fp2) *fp2 {
	// Karatsuba optimization:
	// v0 = a0*b0, v1 = a1*b1
	// real = v0 - v1
	// imag = (a0+a1)*(b0+b1) - v0 - v1
	v0 := fpMul(e.a0, f.a0)
	v1 := fpMul(e.a1, f.a1)
	return &fp2{
		a0: fpSub(v0, v1),
		a1: fpSub(fpMul(fpAdd(e.a0, e.a1), fpAdd(f.a0, f.a1)), fpAdd(v0, v1)),
	}
}

// fp2Sqr returns e^2 in F_p^2.
func fp2Sqr(e *fp2) *fp2 {
	// (a + b*i)^2 = (a^2 - b^2) + 2*a*b*i
	// Optimized: (a+b)(a-b) for real part.
	ab := fpMul(e.a0, e.a1)
	return &fp2{
		a0: fpMul(fpAdd(e.a0, e.a1), fpSub(e.a0, e.a1)),
		a1: fpAdd(ab, ab),
	}
}

// fp2Neg returns -e in F_p^2.
func fp2Neg(e *fp2) *fp2 {
	return &fp2{
		a0: fpNeg(e.a0),
		a1: fpNeg(e.a1),
	}
}

// fp2Conj returns the conjugate of e: (a0 - a1*i).
func fp2Conj(e *fp2) *fp2 {
	return &fp2{
		a0: new(big.Int).Set(e.a0),
		a1: fpNeg(e.a1),
	}
}

// fp2Inv returns e^(-1) in F_p^2.
// (a + b*i)^(-1) = (a - b*i) / (a^2 + b^2)
func fp2Inv(e *fp2) *fp2 {
	// norm = a0^2 + a1^2 (since i^2 = -1)
	t := fpAdd(fpSqr(e.a0), fpSqr(e.a1))
	inv := fpInv(t)
	return &fp2{
		a0: fpMul(e.a0, inv),
		a1: fpMul(fpNeg(e.a1), inv),
	}
}

// fp2MulScalar returns e * s where s is in F_p.
func fp2MulScalar(e *fp2, s *big.Int) *fp2 {
	return &fp2{
		a0: fpMul(e.a0, s),
		a1: fpMul(e.a1, s),
	}
}

// fp2MulByNonResidue multiplies by the non-residue (9+i) used in the
// sextic twist for BN254, i.e. the F_p^6/F_p^12 tower extension.
// (a + b*i)(9 + i) = (9a - b) + (a + 9b)*i
func fp2MulByNonResidue(e *fp2) *fp2 {
	nine := big.NewInt(9)
	return &fp2{
		a0: fpSub(fpMul(e.a0, nine), e.a1),
		a1: fpAdd(fpMul(e.a1, nine), e.a0),
	}
}

// --- F_p^6 = F_p^2[v] / (v^3 - (9+i)) ---

// fp6 represents an element of F_p^6 as (c0 + c1*v + c2*v^2).
type fp6 struct {
	c0, c1, c2 *fp2
}

func fp6Zero() *fp6 {
	return &fp6{c0: fp2Zero(), c1: fp2Zero(), c2: fp2Zero()}
}

func fp6One() *fp6 {
	return &fp6{c0: fp2One(), c1: fp2Zero(), c2: fp2Zero()}
}

func (e *fp6) isZero() bool {
	return e.c0.isZero() && e.c1.isZero() && e.c2.isZero()
}

// fp6Add returns e + f.
func fp6Add(e, f *fp6) *fp6 {
	return &fp6{
		c0: fp2Add(e.c0, f.c0),
		c1: fp2Add(e.c1, f.c1),
		c2: fp2Add(e.c2, f.c2),
	}
}

// fp6Sub returns e - f.
func fp6Sub(e, f *fp6) *fp6 {
	return &fp6{
		c0: fp2Sub(e.c0, f.c0),
		c1: fp2Sub(e.c1, f.c1),
		c2: fp2Sub(e.c2, f.c2),
	}
}

// fp6Neg returns -e.
func fp6Neg(e *fp6) *fp6 {
	return &fp6{
		c0: fp2Neg(e.c0),
		c1: fp2Neg(e.c1),
		c2: fp2Neg(e.c2),
	}
}

// fp6Mul returns e * f using Karatsuba/Toom-Cook over F_p^2.
// v^3 = xi = (9+i), so overflow terms are folded back in via the
// non-residue multiplication.
func fp6Mul(e, f *fp6) *fp6 {
	t0 := fp2Mul(e.c0, f.c0)
	t1 := fp2Mul(e.c1, f.c1)
	t2 := fp2Mul(e.c2, f.c2)

	// c0 = t0 + xi * ((c1+c2)(f1+f2) - t1 - t2)
	c0 := fp2Add(t0, fp2MulByNonResidue(
		fp2Sub(fp2Sub(fp2Mul(fp2Add(e.c1, e.c2), fp2Add(f.c1, f.c2)), t1), t2)))

	// c1 = (c0+c1)(f0+f1) - t0 - t1 + xi*t2
	c1 := fp2Add(
		fp2Sub(fp2Sub(fp2Mul(fp2Add(e.c0, e.c1), fp2Add(f.c0, f.c1)), t0), t1),
		fp2MulByNonResidue(t2))

	// c2 = (c0+c2)(f0+f2) - t0 - t2 + t1
	c2 := fp2Add(
		fp2Sub(fp2Sub(fp2Mul(fp2Add(e.c0, e.c2), fp2Add(f.c0, f.c2)), t0), t2),
		t1)

	return &fp6{c0: c0, c1: c1, c2: c2}
}

// fp6Sqr returns e^2.
func fp6Sqr(e *fp6) *fp6 {
	s0 := fp2Sqr(e.c0)
	ab := fp2Mul(e.c0, e.c1)
	s1 := fp2Add(ab, ab)
	s2 := fp2Sqr(fp2Sub(fp2Add(e.c0, e.c2), e.c1))
	bc := fp2Mul(e.c1, e.c2)
	s3 := fp2Add(bc, bc)
	s4 := fp2Sqr(e.c2)

	// c0 = s0 + xi*s3
	c0 := fp2Add(s0, fp2MulByNonResidue(s3))
	// c1 = s1 + xi*s4
	c1 := fp2Add(s1, fp2MulByNonResidue(s4))
	// c2 = s1 + s2 + s3 - s0 - s4
	c2 := fp2Sub(fp2Sub(fp2Add(fp2Add(s1, s2), s3), s0), s4)

	return &fp6{c0: c0, c1: c1, c2: c2}
}

// fp6Inv returns e^(-1), using the cubic-extension inverse formula.
func fp6Inv(e *fp6) *fp6 {
	// A = c0^2 - xi*c1*c2
	// B = xi*c2^2 - c0*c1
	// C = c1^2 - c0*c2
	// inv = 1/(c0*A + xi*(c2*B + c1*C))
	a := fp2Sub(fp2Sqr(e.c0), fp2MulByNonResidue(fp2Mul(e.c1, e.c2)))
	b := fp2Sub(fp2MulByNonResidue(fp2Sqr(e.c2)), fp2Mul(e.c0, e.c1))
	c := fp2Sub(fp2Sqr(e.c1), fp2Mul(e.c0, e.c2))

	f := fp2Add(fp2Mul(e.c0, a),
		fp2MulByNonResidue(fp2Add(fp2Mul(e.c2, b), fp2Mul(e.c1, c))))
	fInv := fp2Inv(f)

	return &fp6{
		c0: fp2Mul(a, fInv),
		c1: fp2Mul(b, fInv),
		c2: fp2Mul(c, fInv),
	}
}

// fp6MulByFp2 multiplies an fp6 element by an fp2 scalar (in the c0 position).
func fp6MulByFp2(e *fp6, s *fp2) *fp6 {
	return &fp6{
		c0: fp2Mul(e.c0, s),
		c1: fp2Mul(e.c1, s),
		c2: fp2Mul(e.c2, s),
	}
}

// fp6MulByV multiplies an fp6 element by v.
// In F_p^6 = F_p^2[v]/(v^3-xi), multiplying by v shifts:
// (c0 + c1*v + c2*v^2) * v = c2*xi + c0*v + c1*v^2
func fp6MulByV(e *fp6) *fp6 {
	return &fp6{
		c0: fp2MulByNonResidue(e.c2),
		c1: newFp2(e.c0.a0, e.c0.a1),
		c2: newFp2(e.c1.a0, e.c1.a1),
	}
}

// --- F_p^12 = F_p^6[w] / (w^2 - v) ---
//
// This is the pairing's target group G_T, so elements here are the
// operands and result of the Miller loop / final exponentiation in
// bn254_pairing.go.

// fp12 represents an element of F_p^12 as (c0 + c1*w).
type fp12 struct {
	c0, c1 *fp6
}

func fp12Zero() *fp12 {
	return &fp12{c0: fp6Zero(), c1: fp6Zero()}
}

func fp12One() *fp12 {
	return &fp12{c0: fp6One(), c1: fp6Zero()}
}

func (e *fp12) isOne() bool {
	return !e.c0.c0.isZero() &&
		e.c0.c0.a0.Cmp(big.NewInt(1)) == 0 &&
		e.c0.c0.a1.Sign() == 0 &&
		e.c0.c1.isZero() && e.c0.c2.isZero() &&
		e.c1.isZero()
}

// fp12Mul returns e * f.
// (a + b*w)(c + d*w) = (ac + bd*v) + (ad + bc)*w
// where v^3 = xi, and w^2 = v, so bd*v means we shift bd into fp6 by multiplying
// by the element v (which shifts c0->c1->c2 with wrap via xi).
func fp12Mul(e, f *fp12) *fp12 {
	t1 := fp6Mul(e.c0, f.c0)
	t2 := fp6Mul(e.c1, f.c1)

	// c0 = t1 + t2*v (multiply t2 by v in F_p^6: shift coefficients)
	c0 := fp6Add(t1, fp6MulByV(t2))

	// c1 = (e.c0 + e.c1)(f.c0 + f.c1) - t1 - t2
	c1 := fp6Sub(fp6Sub(fp6Mul(fp6Add(e.c0, e.c1), fp6Add(f.c0, f.c1)), t1), t2)

	return &fp12{c0: c0, c1: c1}
}

// fp12Sqr returns e^2.
func fp12Sqr(e *fp12) *fp12 {
	ab := fp6Mul(e.c0, e.c1)

	// c0 = (a+b)(a+b*v) - ab - ab*v
	//    = a^2 + b^2*v
	t := fp6Add(e.c0, e.c1)
	u := fp6Add(e.c0, fp6MulByV(e.c1))
	c0 := fp6Sub(fp6Sub(fp6Mul(t, u), ab), fp6MulByV(ab))
	c1 := fp6Add(ab, ab)

	return &fp12{c0: c0, c1: c1}
}

// fp12Inv returns e^(-1).
func fp12Inv(e *fp12) *fp12 {
	// (a + b*w)^(-1) = (a - b*w) / (a^2 - b^2*v)
	t := fp6Sub(fp6Sqr(e.c0), fp6MulByV(fp6Sqr(e.c1)))
	tInv := fp6Inv(t)
	return &fp12{
		c0: fp6Mul(e.c0, tInv),
		c1: fp6Neg(fp6Mul(e.c1, tInv)),
	}
}

// fp12Conj returns the "conjugate" e.c0 - e.c1*w.
// For unitary elements (norm=1), this equals the inverse.
func fp12Conj(e *fp12) *fp12 {
	return &fp12{
		c0: &fp6{
			c0: newFp2(e.c0.c0.a0, e.c0.c0.a1),
			c1: newFp2(e.c0.c1.a0, e.c0.c1.a1),
			c2: newFp2(e.c0.c2.a0, e.c0.c2.a1),
		},
		c1: fp6Neg(e.c1),
	}
}

// fp12Exp raises e to the power k in F_p^12, used by the final
// exponentiation step of the pairing.
func fp12Exp(e *fp12, k *big.Int) *fp12 {
	if k.Sign() == 0 {
		return fp12One()
	}
	r := fp12One()
	base := &fp12{
		c0: &fp6{
			c0: newFp2(e.c0.c0.a0, e.c0.c0.a1),
			c1: newFp2(e.c0.c1.a0, e.c0.c1.a1),
			c2: newFp2(e.c0.c2.a0, e.c0.c2.a1),
		},
		c1: &fp6{
			c0: newFp2(e.c1.c0.a0, e.c1.c0.a1),
			c1: newFp2(e.c1.c1.a0, e.c1.c1.a1),
			c2: newFp2(e.c1.c2.a0, e.c1.c2.a1),
		},
	}
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = fp12Sqr(r)
		if k.Bit(i) == 1 {
			r = fp12Mul(r, base)
		}
	}
	return r
}

// --- Frobenius endomorphism, computed via tower structure ---
//
// The naive Frobenius (fp12Exp(f, p)) takes ~254 squarings and
// multiplications in F_p^12, far too slow for the final exponentiation
// step of a pairing check run once per proof. Instead this uses the
// algebraic structure of the tower: the Frobenius endomorphism x -> x^p
// acts on each coefficient by conjugation (in F_p^2) and multiplication
// by precomputed powers of the non-residue xi = 9+i.
//
// An F_p^12 element f = c00 + c01*v + c02*v^2 + (c10 + c11*v + c12*v^2)*w
// maps under pi (x -> x^p) as:
//
//	c00: conj(c00)
//	c01: conj(c01) * xi^((p-1)/3)
//	c02: conj(c02) * xi^(2(p-1)/3)
//	c10: conj(c10) * xi^((p-1)/6)
//	c11: conj(c11) * xi^((p-1)/2)     [= xi^((p-1)/6 + (p-1)/3)]
//	c12: conj(c12) * xi^(5(p-1)/6)    [= xi^((p-1)/6 + 2(p-1)/3)]
//
// For p^2, conjugation composed with itself is the identity on F_p^2, so
// no conjugation is applied and the constants are xi^((p^2-1)/d). For
// p^3, conjugation^3 = conjugation, same pattern with p^3 constants.

// --- Frobenius p^1 constants: xi^(k*(p-1)/6) for k = 1..5 ---

var (
	// frobC1_1 = xi^((p-1)/6) -- for c10 (w coefficient, no v)
	frobC1_1 = &fp2{
		a0: bigFromStr("8376118865763821496583973867626364092589906065868298776909617916018768340080"),
		a1: bigFromStr("16469823323077808223889137241176536799009286646108169935659301613961712198316"),
	}

	// frobC1_2 = xi^((p-1)/3) -- for c01 (v coefficient, no w)
	frobC1_2 = &fp2{
		a0: bigFromStr("21575463638280843010398324269430826099269044274347216827212613867836435027261"),
		a1: bigFromStr("10307601595873709700152284273816112264069230130616436755625194854815875713954"),
	}

	// frobC1_3 = xi^((p-1)/2) -- for c11 (v*w coefficient)
	frobC1_3 = &fp2{
		a0: bigFromStr("2821565182194536844548159561693502659359617185244120367078079554186484126554"),
		a1: bigFromStr("3505843767911556378687030309984248845540243509899259641013678093033130930403"),
	}

	// frobC1_4 = xi^(2(p-1)/3) -- for c02 (v^2 coefficient, no w)
	frobC1_4 = &fp2{
		a0: bigFromStr("2581911344467009335267311115468803099551665605076196740867805258568234346338"),
		a1: bigFromStr("19937756971775647987995932169929341994314640652964949448313374472400716661030"),
	}

	// frobC1_5 = xi^(5(p-1)/6) -- for c12 (v^2*w coefficient)
	frobC1_5 = &fp2{
		a0: bigFromStr("685108087231508774477564247770172212460312782337200605669322048753928464687"),
		a1: bigFromStr("8447204650696766136447902020341177575205426561248465145919723016860428151883"),
	}
)

// --- Frobenius p^2 constants: real (conjugation^2 = identity) ---

var (
	// frobC2_1 = xi^((p^2-1)/6) -- for c10
	frobC2_1 = &fp2{
		a0: bigFromStr("21888242871839275220042445260109153167277707414472061641714758635765020556617"),
		a1: new(big.Int),
	}

	// frobC2_2 = xi^((p^2-1)/3) -- for c01
	frobC2_2 = &fp2{
		a0: bigFromStr("21888242871839275220042445260109153167277707414472061641714758635765020556616"),
		a1: new(big.Int),
	}

	// frobC2_3 = xi^((p^2-1)/2) -- for c11
	frobC2_3 = &fp2{
		a0: bigFromStr("21888242871839275222246405745257275088696311157297823662689037894645226208582"),
		a1: new(big.Int),
	}

	// frobC2_4 = xi^(2(p^2-1)/3) -- for c02
	frobC2_4 = &fp2{
		a0: bigFromStr("2203960485148121921418603742825762020974279258880205651966"),
		a1: new(big.Int),
	}

	// frobC2_5 = xi^(5(p^2-1)/6) -- for c12
	frobC2_5 = &fp2{
		a0: bigFromStr("2203960485148121921418603742825762020974279258880205651967"),
		a1: new(big.Int),
	}
)

// --- Frobenius p^3 constants ---

var (
	// frobC3_1 = xi^((p^3-1)/6) -- for c10
	frobC3_1 = &fp2{
		a0: bigFromStr("11697423496358154304825782922584725312912383441159505038794027105778954184319"),
		a1: bigFromStr("303847389135065887422783454877609941456349188919719272345083954437860409601"),
	}

	// frobC3_2 = xi^((p^3-1)/3) -- for c01
	frobC3_2 = &fp2{
		a0: bigFromStr("3772000881919853776433695186713858239009073593817195771773381919316419345261"),
		a1: bigFromStr("2236595495967245188281701248203181795121068902605861227855261137820944008926"),
	}

	// frobC3_3 = xi^((p^3-1)/2) -- for c11
	frobC3_3 = &fp2{
		a0: bigFromStr("19066677689644738377698246183563772429336693972053703295610958340458742082029"),
		a1: bigFromStr("18382399103927718843559375435273026243156067647398564021675359801612095278180"),
	}

	// frobC3_4 = xi^(2(p^3-1)/3) -- for c02
	frobC3_4 = &fp2{
		a0: bigFromStr("5324479202449903542726783395506214481928257762400643279780343368557297135718"),
		a1: bigFromStr("16208900380737693084919495127334387981393726419856888799917914180988844123039"),
	}

	// frobC3_5 = xi^(5(p^3-1)/6) -- for c12
	frobC3_5 = &fp2{
		a0: bigFromStr("8941241848238582420466759817324047081148088512956452953208002715982955420483"),
		a1: bigFromStr("10338197737521362862238855242243140895517409139741313354160881284257516364953"),
	}
)

// bigFromStr parses a decimal string to *big.Int. Panics on invalid input.
func bigFromStr(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("crypto: invalid big.Int literal in BN254 Frobenius table: " + s)
	}
	return v
}

// fp12FrobeniusEfficient computes the Frobenius endomorphism f^p on F_p^12
// using the tower structure, avoiding the expensive generic exponentiation.
func fp12FrobeniusEfficient(f *fp12) *fp12 {
	return &fp12{
		c0: &fp6{
			c0: fp2Conj(f.c0.c0),
			c1: fp2Mul(fp2Conj(f.c0.c1), frobC1_2),
			c2: fp2Mul(fp2Conj(f.c0.c2), frobC1_4),
		},
		c1: &fp6{
			c0: fp2Mul(fp2Conj(f.c1.c0), frobC1_1),
			c1: fp2Mul(fp2Conj(f.c1.c1), frobC1_3),
			c2: fp2Mul(fp2Conj(f.c1.c2), frobC1_5),
		},
	}
}

// fp12FrobeniusSqEfficient computes f^(p^2) on F_p^12.
func fp12FrobeniusSqEfficient(f *fp12) *fp12 {
	return &fp12{
		c0: &fp6{
			c0: newFp2(f.c0.c0.a0, f.c0.c0.a1),
			c1: fp2Mul(f.c0.c1, frobC2_2),
			c2: fp2Mul(f.c0.c2, frobC2_4),
		},
		c1: &fp6{
			c0: fp2Mul(f.c1.c0, frobC2_1),
			c1: fp2Mul(f.c1.c1, frobC2_3),
			c2: fp2Mul(f.c1.c2, frobC2_5),
		},
	}
}

// fp12FrobeniusCubeEfficient computes f^(p^3) on F_p^12.
func fp12FrobeniusCubeEfficient(f *fp12) *fp12 {
	return &fp12{
		c0: &fp6{
			c0: fp2Conj(f.c0.c0),
			c1: fp2Mul(fp2Conj(f.c0.c1), frobC3_2),
			c2: fp2Mul(fp2Conj(f.c0.c2), frobC3_4),
		},
		c1: &fp6{
			c0: fp2Mul(fp2Conj(f.c1.c0), frobC3_1),
			c1: fp2Mul(fp2Conj(f.c1.c1), frobC3_3),
			c2: fp2Mul(fp2Conj(f.c1.c2), frobC3_5),
		},
	}
}
