package validation_test

import (
	"errors"
	"testing"

	"github.com/montgomery-finn/gobarber-web/pkg/toast"
	"github.com/montgomery-finn/gobarber-web/pkg/validation"
)

type signUp struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
	Address  struct {
		City string `json:"city" validate:"required"`
	} `json:"address"`
}

type selfChecked struct{ ok bool }

func (s selfChecked) Validate() error {
	if !s.ok {
		return errors.New("not ok")
	}
	return nil
}

func TestErrors(t *testing.T) {
	err := validation.Struct(signUp{Email: "nope", Password: "123"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	got := validation.Errors(err)
	want := map[string]string{
		"name":         "name is required",
		"email":        "email must be a valid email",
		"password":     "password must be at least 6 characters",
		"address.city": "city is required",
	}
	if len(got) != len(want) {
		t.Fatalf("Errors() = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Errors()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestErrorsValid(t *testing.T) {
	in := signUp{Name: "Ana", Email: "ana@example.com", Password: "secret"}
	in.Address.City = "Porto Alegre"
	if err := validation.Struct(in); err != nil {
		t.Fatalf("Struct() = %v", err)
	}
	if validation.Errors(nil) != nil {
		t.Error("Errors(nil) should be nil")
	}
}

func TestErrorsNonValidation(t *testing.T) {
	got := validation.Errors(errors.New("boom"))
	if got[""] != "boom" {
		t.Errorf("Errors() = %v", got)
	}
}

func TestSelfValidating(t *testing.T) {
	if err := validation.Struct(selfChecked{ok: true}); err != nil {
		t.Errorf("Struct() = %v", err)
	}
	if err := validation.Struct(selfChecked{}); err == nil {
		t.Error("expected Validate() error")
	}
}

func TestToastInput(t *testing.T) {
	err := validation.Struct(toast.Input{Description: "x"})
	got := validation.Errors(err)
	if got["title"] != "title is required" {
		t.Errorf("Errors() = %v", got)
	}
	if err := validation.Struct(toast.Input{Title: "ok"}); err != nil {
		t.Errorf("Struct() = %v", err)
	}
}
