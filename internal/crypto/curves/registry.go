package curves

import (
	"errors"
	"sort"

	"github.com/smallyu/go-gostcrypto/internal/crypto/fixed"
)

// ErrUnknownCurve is returned by lookups for names or OIDs not in the registry.
var ErrUnknownCurve = errors.New("curves: unknown curve")

// Canonical curve names.
const (
	GOST256Test   = "id-tc26-gost-3410-2012-256-paramSetTest"
	GOST256A      = "id-tc26-gost-3410-2012-256-paramSetA"
	CryptoProA    = "id-GostR3410-2001-CryptoPro-A-ParamSet"
	CryptoProB    = "id-GostR3410-2001-CryptoPro-B-ParamSet"
	CryptoProC    = "id-GostR3410-2001-CryptoPro-C-ParamSet"
	GOST512Test   = "id-tc26-gost-3410-2012-512-paramSetTest"
	GOST512A      = "id-tc26-gost-3410-2012-512-paramSetA"
	GOST512B      = "id-tc26-gost-3410-2012-512-paramSetB"
	Secp256k1Name = "secp256k1"
	Wei25519Name  = "wei25519"
)

var definitions = []Definition{
	{
		Name:     GOST256Test,
		OID:      "1.2.643.2.2.35.0",
		Size:     fixed.Size256,
		P:        "8000000000000000000000000000000000000000000000000000000000000431",
		A:        "7",
		B:        "5FBFF498AA938CE739B8E022FBAFEF40563F6E6A3472FC2A514C0CE9DAE23B7E",
		Q:        "8000000000000000000000000000000150FE8A1892976154C59CFC193ACCF5B3",
		Cofactor: 1,
		X:        "2",
		Y:        "08E2A8A0E65147D4BD6316030E16D19C85C97F0A9CA267122B96ABBCEA7E8FC8",
	},
	{
		Name:     GOST256A,
		OID:      "1.2.643.7.1.2.1.1.1",
		Size:     fixed.Size256,
		P:        "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFD97",
		A:        "C2173F1513981673AF4892C23035A27CE25E2013BF95AA33B22C656F277E7335",
		B:        "295F9BAE7428ED9CCC20E7C359A9D41A22FCCD9108E17BF7BA9337A6F8AE9513",
		Q:        "400000000000000000000000000000000FD8CDDFC87B6635C115AF556C360C67",
		Cofactor: 4,
		X:        "91E38443A5E82C0D880923425712B2BB658B9196932E02C78B2582FE742DAA28",
		Y:        "32879423AB1A0375895786C4BB46E9565FDE0B5344766740AF268ADB32322E5C",
	},
	{
		Name:     CryptoProA,
		OID:      "1.2.643.2.2.35.1",
		Size:     fixed.Size256,
		P:        "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFD97",
		A:        "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFD94",
		B:        "A6",
		Q:        "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF6C611070995AD10045841B09B761B893",
		Cofactor: 1,
		X:        "1",
		Y:        "8D91E471E0989CDA27DF505A453F2B7635294F2DDF23E3B122ACC99C9E9F1E14",
	},
	{
		Name:     CryptoProB,
		OID:      "1.2.643.2.2.35.2",
		Size:     fixed.Size256,
		P:        "8000000000000000000000000000000000000000000000000000000000000C99",
		A:        "8000000000000000000000000000000000000000000000000000000000000C96",
		B:        "3E1AF419A269A5F866A7D3C25C3DF80AE979259373FF2B182F49D4CE7E1BBC8B",
		Q:        "800000000000000000000000000000015F700CFFF1A624E5E497161BCC8A198F",
		Cofactor: 1,
		X:        "1",
		Y:        "3FA8124359F96680B83D1C3EB2C070E5C545C9858D03ECFB744BF8D717717EFC",
	},
	{
		Name:     CryptoProC,
		OID:      "1.2.643.2.2.35.3",
		Size:     fixed.Size256,
		P:        "9B9F605F5A858107AB1EC85E6B41C8AACF846E86789051D37998F7B9022D759B",
		A:        "9B9F605F5A858107AB1EC85E6B41C8AACF846E86789051D37998F7B9022D7598",
		B:        "805A",
		Q:        "9B9F605F5A858107AB1EC85E6B41C8AA582CA3511EDDFB74F02F3A6598980BB9",
		Cofactor: 1,
		X:        "0",
		Y:        "41ECE55743711A8C3CBF3783CD08C0EE4D4DC440D4641A8F366E550DFDB3BB67",
	},
	{
		Name: GOST512Test,
		OID:  "1.2.643.7.1.2.1.2.0",
		Size: fixed.Size512,
		P: "4531ACD1FE0023C7550D267B6B2FEE80922B14B2FFB90F04D4EB7C09B5D2D15D" +
			"F1D852741AF4704A0458047E80E4546D35B8336FAC224DD81664BBF528BE6373",
		A: "7",
		B: "1CFF0806A31116DA29D8CFA54E57EB748BC5F377E49400FDD788B649ECA1AC43" +
			"61834013B2AD7322480A89CA58E0CF74BC9E540C2ADD6897FAD0A3084F302ADC",
		Q: "4531ACD1FE0023C7550D267B6B2FEE80922B14B2FFB90F04D4EB7C09B5D2D15D" +
			"A82F2D7ECB1DBAC719905C5EECC423F1D86E25EDBE23C595D644AAF187E6E6DF",
		Cofactor: 1,
		X: "24D19CC64572EE30F396BF6EBBFD7A6C5213B3B3D7057CC825F91093A68CD762" +
			"FD60611262CD838DC6B60AA7EEE804E28BC849977FAC33B4B530F1B120248A9A",
		Y: "2BB312A43BD2CE6E0D020613C857ACDDCFBF061E91E5F2C3F32447C259F39B2C" +
			"83AB156D77F1496BF7EB3351E1EE4E43DC1A18B91B24640B6DBB92CB1ADD371E",
	},
	{
		Name: GOST512A,
		OID:  "1.2.643.7.1.2.1.2.1",
		Size: fixed.Size512,
		P: "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF" +
			"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFDC7",
		A: "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF" +
			"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFDC4",
		B: "E8C2505DEDFC86DDC1BD0B2B6667F1DA34B82574761CB0E879BD081CFD0B6265" +
			"EE3CB090F30D27614CB4574010DA90DD862EF9D4EBEE4761503190785A71C760",
		Q: "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF" +
			"27E69532F48D89116FF22B8D4E0560609B4B38ABFAD2B85DCACDB1411F10B275",
		Cofactor: 1,
		X:        "3",
		Y: "7503CFE87A836AE3A61B8816E25450E6CE5E1C93ACF1ABC1778064FDCBEFA921" +
			"DF1626BE4FD036E93D75E6A50E3A41E98028FE5FC235F5B889A589CB5215F2A4",
	},
	{
		Name: GOST512B,
		OID:  "1.2.643.7.1.2.1.2.2",
		Size: fixed.Size512,
		P: "8000000000000000000000000000000000000000000000000000000000000000" +
			"000000000000000000000000000000000000000000000000000000000000006F",
		A: "8000000000000000000000000000000000000000000000000000000000000000" +
			"000000000000000000000000000000000000000000000000000000000000006C",
		B: "687D1B459DC841457E3E06CF6F5E2517B97C7D614AF138BCBF85DC806C4B289F" +
			"3E965D2DB1416D217F8B276FAD1AB69C50F78BEE1FA3106EFB8CCBC7C5140116",
		Q: "8000000000000000000000000000000000000000000000000000000000000001" +
			"49A1EC142565A545ACFDB77BD9D40CFA8B996712101BEA0EC6346C54374F25BD",
		Cofactor: 1,
		X:        "2",
		Y: "1A8F7EDA389B094C2C071E3647A8940F3C123B697578C213BE6DD9E6C8EC7335" +
			"DCB228FD1EDF4A39152CBCAAF8C0398828041055F94CEEEC7E21340780FE41BD",
	},
	{
		Name:     Secp256k1Name,
		OID:      "1.3.132.0.10",
		Size:     fixed.Size256,
		P:        "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F",
		A:        "0",
		B:        "7",
		Q:        "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141",
		Cofactor: 1,
		X:        "79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798",
		Y:        "483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8",
	},
	{
		// Curve25519 mapped to short Weierstrass form; the base point is the
		// image of the edwards25519 generator under FromEdwards25519.
		Name:     Wei25519Name,
		Size:     fixed.Size256,
		P:        "7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFED",
		A:        "2AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA984914A144",
		B:        "7B425ED097B425ED097B425ED097B425ED097B425ED097B4260B5E9C7710C864",
		Q:        "1000000000000000000000000000000014DEF9DEA2F79CD65812631A5CF5D3ED",
		Cofactor: 8,
		X:        "2AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAD245A",
		Y:        "5F51E65E475F794B1FE122D388B72EB36DC2B28192839E4DD6163A5D81312C14",
	},
}

// Alternative names from the TC26 registry for the CryptoPro curves.
var aliases = map[string]struct{ name, oid string }{
	"id-tc26-gost-3410-2012-256-paramSetB": {CryptoProA, "1.2.643.7.1.2.1.1.2"},
	"id-tc26-gost-3410-2012-256-paramSetC": {CryptoProB, "1.2.643.7.1.2.1.1.3"},
	"id-tc26-gost-3410-2012-256-paramSetD": {CryptoProC, "1.2.643.7.1.2.1.1.4"},
}

var (
	byName = make(map[string]*Params)
	byOID  = make(map[string]*Params)
	names  []string
)

func init() {
	for _, def := range definitions {
		c, err := NewParams(def)
		if err != nil {
			panic(err)
		}
		byName[c.Name] = c
		if c.OID != "" {
			byOID[c.OID] = c
		}
		names = append(names, c.Name)
	}
	for alias, target := range aliases {
		c := byName[target.name]
		byName[alias] = c
		byOID[target.oid] = c
	}
	sort.Strings(names)
}

// ByName returns the curve registered under name or one of its aliases.
func ByName(name string) (*Params, error) {
	c, ok := byName[name]
	if !ok {
		return nil, ErrUnknownCurve
	}
	return c, nil
}

// ByOID returns the curve registered under a dotted object identifier.
func ByOID(oid string) (*Params, error) {
	c, ok := byOID[oid]
	if !ok {
		return nil, ErrUnknownCurve
	}
	return c, nil
}

// Names returns the canonical names of all registered curves, sorted.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}
