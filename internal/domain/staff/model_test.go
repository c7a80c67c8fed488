package staff

import (
	"reflect"
	"testing"

	"golang.org/x/text/language"
)

const staffJSON = `[
  {"team": "Falcons", "role": "لاعب", "name": " Ali "},
  {"team": "Falcons", "role": "إداري الفريق", "name": "Khalid", "phone": "0500000000"},
  {"team": "Hawks", "role": "لاعب", "name": "Saeed"},
  {"team": "Hawks", "role": "إداري", "name": ""},
  {"team": "Hawks", "role": "مدرب", "name": "Faisal"}
]`

func TestDecode(t *testing.T) {
	t.Parallel()

	s, err := Decode([]byte(staffJSON))
	if err != nil {
		t.Fatalf("decode staff: %v", err)
	}
	if len(s) != 5 || s[0].Name != "Ali" || s[1].Phone != "0500000000" {
		t.Fatalf("unexpected staff: %+v", s)
	}

	empty, err := Decode([]byte("  "))
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty staff, got %+v err=%v", empty, err)
	}
	if _, err := Decode([]byte(`{"team": "x"}`)); err == nil {
		t.Fatalf("expected error for non-array document")
	}
}

func TestStaff_RoleFilters(t *testing.T) {
	t.Parallel()

	s, err := Decode([]byte(staffJSON))
	if err != nil {
		t.Fatalf("decode staff: %v", err)
	}

	players := s.Players()
	if len(players) != 2 || players[0].Name != "Ali" || players[1].Name != "Saeed" {
		t.Fatalf("unexpected players: %+v", players)
	}
	admins := s.Admins()
	if len(admins) != 1 || admins[0].Name != "Khalid" {
		t.Fatalf("expected unnamed admin to be skipped, got %+v", admins)
	}
}

func TestStaff_Lookup(t *testing.T) {
	t.Parallel()

	s, err := Decode([]byte(staffJSON))
	if err != nil {
		t.Fatalf("decode staff: %v", err)
	}
	if m, ok := s.Lookup("Khalid"); !ok || m.Team != "Falcons" {
		t.Fatalf("unexpected lookup: %+v ok=%v", m, ok)
	}
	if _, ok := s.Lookup(""); ok {
		t.Fatalf("expected empty name to miss")
	}
	if _, ok := s.Lookup("Nobody"); ok {
		t.Fatalf("expected unknown name to miss")
	}
}

func TestStaff_Options(t *testing.T) {
	t.Parallel()

	s := Staff{
		{Team: "Hawks", Name: "Saeed"},
		{Team: "Falcons", Name: "Ali"},
		{Name: "Omar"},
	}
	got := s.Options(language.Und)
	want := []Option{
		{Value: "Ali", Team: "Falcons", Label: "Ali — Falcons"},
		{Value: "Omar", Label: "Omar"},
		{Value: "Saeed", Team: "Hawks", Label: "Saeed — Hawks"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected options: got=%+v want=%+v", got, want)
	}
}

func TestStaff_EncodeDecode(t *testing.T) {
	t.Parallel()

	in := Staff{{Team: "Falcons", Role: RoleAdmin, Name: "Khalid"}}
	data, err := in.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("unexpected staff: %+v", out)
	}
}
