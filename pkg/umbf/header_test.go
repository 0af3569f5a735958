package umbf

import "testing"

func TestHeaderPackUnpackRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []Header{
		{},
		{VendorSign: 0x123456, VendorVersion: 0x010203, TypeSign: TypeScene, SpecVersion: 0x000001, Compressed: true},
		{VendorSign: 0xFFFFFF, VendorVersion: 0xFFFFFF, TypeSign: TypeLibrary, SpecVersion: 0xFFFFFF, Compressed: false},
		{VendorSign: 0x0, TypeSign: TypeImage, Compressed: true},
	}

	for i, h := range cases {
		packed := h.Pack()
		got := UnpackHeader(packed)
		if got != h {
			t.Fatalf("case %d: roundtrip mismatch: got %+v want %+v", i, got, h)
		}
	}
}

func TestHeaderPackMasksTo24Bits(t *testing.T) {
	t.Parallel()

	h := Header{VendorSign: 0xFF123456, VendorVersion: 0xAB010203}
	packed := h.Pack()
	got := UnpackHeader(packed)

	if got.VendorSign != 0x123456 {
		t.Fatalf("vendor_sign not masked: got 0x%06X", got.VendorSign)
	}
	if got.VendorVersion != 0x010203 {
		t.Fatalf("vendor_version not masked: got 0x%06X", got.VendorVersion)
	}
}

func TestHeaderPackIsTwelveBytes(t *testing.T) {
	t.Parallel()

	h := Header{VendorSign: 1, VendorVersion: 2, TypeSign: 3, SpecVersion: 4}
	packed := h.Pack()
	if len(packed) != 12 {
		t.Fatalf("packed header length = %d, want 12", len(packed))
	}
}
