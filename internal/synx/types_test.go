package synx

import "testing"

func TestIsMonotype(t *testing.T) {
	cases := []struct {
		name string
		typ  Type
		want bool
	}{
		{"unit", TUnit{}, true},
		{"uvar", TUVar{Name: "a"}, true},
		{"evar", TEVar{Name: "a1"}, true},
		{"fun of monotypes", TFun{Domain: TUnit{}, Codomain: TUVar{Name: "a"}}, true},
		{"forall", TForall{Name: "a", Body: TUVar{Name: "a"}}, false},
		{"fun containing forall", TFun{Domain: TForall{Name: "a", Body: TUVar{Name: "a"}}, Codomain: TUnit{}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsMonotype(tc.typ); got != tc.want {
				t.Errorf("IsMonotype(%s) = %v, want %v", tc.typ.String(), got, tc.want)
			}
		})
	}
}

func TestFreeExistentials(t *testing.T) {
	typ := TFun{
		Domain:   TEVar{Name: "a1"},
		Codomain: TForall{Name: "b", Body: TFun{Domain: TUVar{Name: "b"}, Codomain: TEVar{Name: "a2"}}},
	}
	free := FreeExistentials(typ)
	if len(free) != 2 || !free["a1"] || !free["a2"] {
		t.Errorf("FreeExistentials = %v, want {a1, a2}", free)
	}
}

func TestTypeString(t *testing.T) {
	if got := TypeString(nil); got != "<unset>" {
		t.Errorf("TypeString(nil) = %q, want <unset>", got)
	}
	if got := TypeString(TUnit{}); got != "Unit" {
		t.Errorf("TypeString(Unit) = %q, want Unit", got)
	}
}

func TestTypeEquals(t *testing.T) {
	a := TFun{Domain: TUVar{Name: "a"}, Codomain: TUVar{Name: "a"}}
	b := TFun{Domain: TUVar{Name: "a"}, Codomain: TUVar{Name: "a"}}
	c := TFun{Domain: TUVar{Name: "a"}, Codomain: TUVar{Name: "b"}}
	if !a.Equals(b) {
		t.Errorf("expected %s to equal %s", a, b)
	}
	if a.Equals(c) {
		t.Errorf("expected %s to not equal %s", a, c)
	}
}

func TestFunStringParenthesizesDomain(t *testing.T) {
	typ := TFun{Domain: TFun{Domain: TUnit{}, Codomain: TUnit{}}, Codomain: TUnit{}}
	if got, want := typ.String(), "(Unit -> Unit) -> Unit"; got != want {
		t.Errorf("TFun.String() = %q, want %q", got, want)
	}
}

func TestNewNameNormalizesNFC(t *testing.T) {
	// "a" followed by a combining acute accent (NFD) should normalize to the
	// single precomposed U+00E1 (NFC), matching a Name built directly from it.
	decomposed := NewName("a\u0301")
	composed := NewName("\u00e1")
	if decomposed != composed {
		t.Errorf("NewName did not normalize to NFC: %q != %q", decomposed, composed)
	}
}
