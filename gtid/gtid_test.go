package gtid

import "testing"

func TestGtidStringUntagged(t *testing.T) {
	u, _ := ParseUUID("3e11fa47-71ca-11e1-9e33-c80aa9429562")
	g := New(NewTsid(u, Tag{}), 42)
	want := u.String() + ":42"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGtidStringTagged(t *testing.T) {
	u, _ := ParseUUID("3e11fa47-71ca-11e1-9e33-c80aa9429562")
	tag := NewTag("tag1\x00")
	g := New(NewTsid(u, tag), 42)
	want := u.String() + ":tag1:42"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseGtidRoundTrip(t *testing.T) {
	texts := []string{
		"3e11fa47-71ca-11e1-9e33-c80aa9429562:42",
		"3e11fa47-71ca-11e1-9e33-c80aa9429562:tag1:42",
		"3e11fa47-71ca-11e1-9e33-c80aa9429562:1",
	}
	for _, text := range texts {
		g, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q): %v", text, err)
		}
		if got := g.String(); got != text {
			t.Errorf("Parse(%q).String() = %q", text, got)
		}
	}
}

func TestParseGtidRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"not-a-uuid:42",
		"3e11fa47-71ca-11e1-9e33-c80aa9429562",       // missing gno
		"3e11fa47-71ca-11e1-9e33-c80aa9429562:0",     // gno out of range (< 1)
		"3e11fa47-71ca-11e1-9e33-c80aa9429562:-1",    // negative gno
		"3e11fa47-71ca-11e1-9e33-c80aa9429562:abc",   // non-numeric gno
		"3e11fa47-71ca-11e1-9e33-c80aa9429562:a:b:c", // too many segments
	}
	for _, text := range cases {
		if _, err := Parse(text); err == nil {
			t.Errorf("Parse(%q): want error, got nil", text)
		}
	}
}

func TestParseGtidRejectsGnoAboveMax(t *testing.T) {
	u := "3e11fa47-71ca-11e1-9e33-c80aa9429562"
	if _, err := Parse(u + ":9223372036854775807"); err == nil { // 2^63-1
		t.Error("Parse: want error for gno == 2^63-1, got nil")
	}
	if _, err := Parse(u + ":9223372036854775806"); err != nil { // MaxGno == 2^63-2
		t.Errorf("Parse: want no error for gno == MaxGno, got %v", err)
	}
}

func TestGtidEncodeDecodeTagged(t *testing.T) {
	u, _ := ParseUUID("3e11fa47-71ca-11e1-9e33-c80aa9429562")
	g := New(NewTsid(u, NewTag("source1\x00")), 12345)
	buf := g.EncodeTagged(nil)
	got, n, ok := DecodeTagged(buf)
	if !ok {
		t.Fatal("DecodeTagged: not ok")
	}
	if n != len(buf) {
		t.Errorf("DecodeTagged consumed %d, want %d", n, len(buf))
	}
	if !got.Equal(g) {
		t.Errorf("DecodeTagged = %v, want %v", got, g)
	}
}

func TestGtidEncodeDecodeUntagged(t *testing.T) {
	u, _ := ParseUUID("3e11fa47-71ca-11e1-9e33-c80aa9429562")
	g := New(NewTsid(u, Tag{}), 99)
	buf := g.EncodeUntagged(nil)
	if len(buf) != UUIDByteLength+8 {
		t.Errorf("EncodeUntagged length = %d, want %d", len(buf), UUIDByteLength+8)
	}
	got, n, ok := DecodeUntagged(buf)
	if !ok {
		t.Fatal("DecodeUntagged: not ok")
	}
	if n != len(buf) {
		t.Errorf("DecodeUntagged consumed %d, want %d", n, len(buf))
	}
	if !got.Equal(g) {
		t.Errorf("DecodeUntagged = %v, want %v", got, g)
	}
}

func TestDecodeTaggedRejectsTruncated(t *testing.T) {
	u, _ := ParseUUID("3e11fa47-71ca-11e1-9e33-c80aa9429562")
	g := New(NewTsid(u, NewTag("x\x00")), 1)
	buf := g.EncodeTagged(nil)
	for n := 0; n < len(buf); n++ {
		if _, _, ok := DecodeTagged(buf[:n]); ok {
			t.Errorf("DecodeTagged(buf[:%d]): want not ok", n)
		}
	}
}
