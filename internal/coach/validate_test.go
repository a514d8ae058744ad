package coach

import (
	"testing"
)

func TestCheckBody_Ranges(t *testing.T) {
	s := newTestService(nil)
	cases := []struct {
		req  BodyRequest
		want string
	}{
		{BodyRequest{Age: 9, Height: 170, Weight: 70}, "Idade deve estar entre 10 e 120 anos."},
		{BodyRequest{Age: 121, Height: 170, Weight: 70}, "Idade deve estar entre 10 e 120 anos."},
		{BodyRequest{Age: 30, Height: 99, Weight: 70}, "Altura deve estar entre 100 e 250 cm."},
		{BodyRequest{Age: 30, Height: 251, Weight: 70}, "Altura deve estar entre 100 e 250 cm."},
		{BodyRequest{Age: 30, Height: 170, Weight: 29}, "Peso deve estar entre 30 e 300 kg."},
		{BodyRequest{Age: 30, Height: 170, Weight: 301}, "Peso deve estar entre 30 e 300 kg."},
		// first failing field wins
		{BodyRequest{Age: 0, Height: 0, Weight: 0}, "Idade deve estar entre 10 e 120 anos."},
	}
	for _, c := range cases {
		err := s.check(c.req)
		if err == nil || !IsValidation(err) || err.Error() != c.want {
			t.Fatalf("%+v: err=%v want %q", c.req, err, c.want)
		}
	}
}

func TestCheckBody_InclusiveBounds(t *testing.T) {
	s := newTestService(nil)
	for _, req := range []BodyRequest{
		{Age: 10, Height: 100, Weight: 30},
		{Age: 120, Height: 250, Weight: 300},
	} {
		if err := s.check(req); err != nil { t.Fatalf("%+v: %v", req, err) }
	}
}

func TestCheckWorkout_BlankLocation(t *testing.T) {
	s := newTestService(nil)
	for _, loc := range []string{"", "   ", "\t\n"} {
		err := s.check(WorkoutRequest{TrainingLocation: loc})
		if err == nil || err.Error() != "Informe o local de treino." {
			t.Fatalf("%q: err=%v", loc, err)
		}
	}
	if err := s.check(WorkoutRequest{TrainingLocation: "academia"}); err != nil { t.Fatalf("err=%v", err) }
}

func TestNewValidator_NotBlankTag(t *testing.T) {
	v := newValidator()
	if err := v.Var("  ", "notblank"); err == nil { t.Fatalf("blank string passed notblank") }
	if err := v.Var("casa", "notblank"); err != nil { t.Fatalf("err=%v", err) }
}

func TestCheckImage(t *testing.T) {
	cases := []struct {
		name string
		u    Upload
		ok   bool
	}{
		{"declared jpeg", Upload{ContentType: "image/jpeg"}, true},
		{"declared png upper", Upload{ContentType: "IMAGE/PNG"}, true},
		{"declared pdf", Upload{ContentType: "application/pdf", Data: jpegHeader}, false},
		{"declared text", Upload{ContentType: "text/plain"}, false},
		{"sniffed jpeg", Upload{Data: jpegHeader}, true},
		{"sniffed text", Upload{Data: []byte("hello, this is not a picture")}, false},
		{"empty", Upload{}, true},
	}
	for _, c := range cases {
		err := checkImage(c.u)
		if (err == nil) != c.ok {
			t.Fatalf("%s: err=%v", c.name, err)
		}
		if err != nil && err.Error() != msgNotImage {
			t.Fatalf("%s: msg=%q", c.name, err.Error())
		}
	}
}

func TestUploadMIME(t *testing.T) {
	if m := (Upload{ContentType: "image/png; name=x"}).MIME(); m != "image/png" { t.Fatalf("mime=%s", m) }
	if m := (Upload{Data: jpegHeader}).MIME(); m != "image/jpeg" { t.Fatalf("mime=%s", m) }
	if m := (Upload{}).MIME(); m != "image/jpeg" { t.Fatalf("mime=%s", m) }
}

func TestValidationErrorStatus(t *testing.T) {
	err := ErrValidation("x")
	he, ok := err.(interface{ StatusCode() int })
	if !ok || he.StatusCode() != 422 { t.Fatalf("expected 422 status code") }
}
