package palette

import "testing"

func TestLookupIsCaseInsensitive(t *testing.T) {
	ref, err := Lookup("GameBoy")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if ref.Name != "gameboy" || len(ref.Colors) != 4 {
		t.Fatalf("got %+v", ref)
	}
	if ref.Colors[0] != (RGB{R: 0x0f, G: 0x38, B: 0x0f}) {
		t.Errorf("first gameboy color = %v", ref.Colors[0])
	}
}

func TestLookupNone(t *testing.T) {
	ref, err := Lookup("None")
	if err != nil || ref != nil {
		t.Fatalf("got %v, %v; want nil, nil", ref, err)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("vaporwave"); err == nil {
		t.Fatal("expected an error for an unknown palette")
	}
}

func TestCatalogContents(t *testing.T) {
	for _, name := range Names() {
		ref, _ := Lookup(name)
		if len(ref.Colors) < 2 {
			t.Errorf("%s has %d colors", name, len(ref.Colors))
		}
	}

	mono, _ := Lookup("monochrome")
	if mono.Colors[0] != (RGB{}) || mono.Colors[1] != (RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("monochrome = %v", mono.Colors)
	}

	gray, _ := Lookup("gray4")
	want := []RGB{{0, 0, 0}, {85, 85, 85}, {170, 170, 170}, {255, 255, 255}}
	for i, c := range want {
		if gray.Colors[i] != c {
			t.Errorf("gray4[%d] = %v, want %v", i, gray.Colors[i], c)
		}
	}

	ansi, _ := Lookup("ansi16")
	if ansi.Colors[9] != (RGB{R: 255}) {
		t.Errorf("ansi16[9] = %v, want bright red", ansi.Colors[9])
	}
	xterm, _ := Lookup("xterm256")
	if len(xterm.Colors) != 256 {
		t.Errorf("xterm256 has %d colors", len(xterm.Colors))
	}

	web, _ := Lookup("web16")
	if web.Colors[2] != (RGB{R: 128, G: 128, B: 128}) {
		t.Errorf("web16 gray = %v", web.Colors[2])
	}
}
